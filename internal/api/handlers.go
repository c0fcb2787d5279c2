package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/starford/rooster/internal/feed"
	"github.com/starford/rooster/internal/ingest"
	"github.com/starford/rooster/internal/store"
)

// Handler holds API route handlers.
type Handler struct {
	ingest *ingest.Service
	store  store.ShiftStore
	synth  *feed.Synthesizer
	boffID string
	now    func() time.Time
}

// NewHandler creates a new Handler.
func NewHandler(ing *ingest.Service, st store.ShiftStore, synth *feed.Synthesizer, boffID string) *Handler {
	return &Handler{
		ingest: ing,
		store:  st,
		synth:  synth,
		boffID: boffID,
		now:    time.Now,
	}
}

// Webhook handles POST /webhook. The response is written before any
// extraction work runs; a message that fails the gate is acknowledged the
// same way as one that schedules work, so senders learn nothing about
// which messages we act on.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var env webhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid payload"))
		return
	}

	msg := ingest.Message{Body: env.Payload.Body}
	if env.Payload.Media != nil {
		msg.Media = &ingest.Media{
			URL:      env.Payload.Media.URL,
			Mimetype: env.Payload.Media.Mimetype,
		}
	}
	h.ingest.HandleMessage(msg)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Calendar handles GET /calendar. The feed is recomputed from the store on
// every request; there is no caching.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.store.ListShifts(r.Context(), h.boffID)
	if err != nil {
		slog.Error("calendar read failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("calendar unavailable"))
		return
	}

	events := h.synth.Events(shifts)
	body := feed.RenderICS(events, h.now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+feed.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
