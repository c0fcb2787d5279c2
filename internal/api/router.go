package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with the webhook and calendar routes.
// Only the webhook is secret-protected; the calendar feed is meant to be
// subscribed to by calendar clients that cannot send custom headers.
func NewRouter(h *Handler, webhookSecret string) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(WebhookAuth(webhookSecret))
		r.Post("/webhook", h.Webhook)
	})

	r.Get("/calendar", h.Calendar)

	return r
}
