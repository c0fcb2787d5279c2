// Package api implements the rooster HTTP surface using chi.
package api

import "net/http"

// WebhookSecretHeader carries the shared secret on webhook deliveries.
const WebhookSecretHeader = "X-Webhook-Token"

// WebhookAuth returns middleware that enforces the shared-secret header.
// Requests without the exact configured value are rejected before any
// payload is read.
func WebhookAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(WebhookSecretHeader) != secret {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
