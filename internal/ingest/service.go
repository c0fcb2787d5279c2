// Package ingest runs the schedule extraction pipeline: gate an inbound
// message, fetch its image, analyze the document, reconstruct the table,
// derive shifts, and persist the configured worker's row.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starford/rooster/internal/analyze"
	"github.com/starford/rooster/internal/apperr"
	"github.com/starford/rooster/internal/models"
	"github.com/starford/rooster/internal/schedule"
	"github.com/starford/rooster/internal/store"
	"github.com/starford/rooster/internal/waha"
)

// scheduleMimetype is the only media type schedule photos arrive as.
const scheduleMimetype = "image/jpeg"

// Message is a webhook-delivered chat message.
type Message struct {
	Body  string
	Media *Media
}

// Media references a downloadable attachment.
type Media struct {
	URL      string
	Mimetype string
}

// Service wires the pipeline's collaborators together.
type Service struct {
	boffID   string
	fetcher  waha.Fetcher
	analyzer analyze.Analyzer
	store    store.ShiftStore
	runner   *Runner
	logger   *slog.Logger
}

// NewService creates the ingestion service for one configured worker.
func NewService(boffID string, fetcher waha.Fetcher, analyzer analyze.Analyzer, st store.ShiftStore, runner *Runner, logger *slog.Logger) *Service {
	return &Service{
		boffID:   boffID,
		fetcher:  fetcher,
		analyzer: analyzer,
		store:    st,
		runner:   runner,
		logger:   logger,
	}
}

// HandleMessage gates an inbound message and, when it announces a
// schedule, detaches the extraction pipeline onto the runner. The caller
// has already answered the webhook by the time any of that work runs.
// The return reports whether a task was scheduled; everything else is a
// silent ignore.
func (s *Service) HandleMessage(msg Message) bool {
	meta, err := gate(msg)
	if err != nil {
		s.logger.Debug("message ignored", slog.String("reason", err.Error()))
		return false
	}

	mediaURL := msg.Media.URL
	name := "extract " + meta.Date.Format(models.DateLayout) + string(meta.Planning)
	return s.runner.Submit(context.Background(), name, func(ctx context.Context) error {
		return s.process(ctx, meta, mediaURL)
	})
}

// gate decides whether a message is a schedule announcement worth
// processing. Both failure modes are expected traffic, not errors.
func gate(msg Message) (schedule.Metadata, error) {
	meta, ok := schedule.ParseAnnouncement(msg.Body)
	if !ok {
		return schedule.Metadata{}, apperr.ErrNotSchedule
	}
	if msg.Media == nil || msg.Media.Mimetype != scheduleMimetype {
		return schedule.Metadata{}, apperr.ErrNoMedia
	}
	return meta, nil
}

// process runs the extraction pipeline to completion. Every failure is
// terminal for this invocation; nothing is retried or queued.
func (s *Service) process(ctx context.Context, meta schedule.Metadata, mediaURL string) error {
	image, err := s.fetcher.FetchMedia(ctx, mediaURL)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}

	blocks, err := s.analyzer.AnalyzeDocument(ctx, image)
	if err != nil {
		return fmt.Errorf("analyze document: %w", err)
	}

	grid := analyze.ReconstructGrid(blocks)
	shifts := schedule.DeriveShifts(meta, grid)

	// Only the configured worker's row leaves this function; the rest of
	// the table is discarded unpersisted.
	var mine *models.Shift
	for i := range shifts {
		if shifts[i].BoffID == s.boffID {
			mine = &shifts[i]
			break
		}
	}
	if mine == nil {
		return apperr.ErrWorkerNotFound
	}

	if err := s.store.UpsertShift(ctx, *mine); err != nil {
		return fmt.Errorf("upload shift: %w", err)
	}

	s.logger.Info("shift stored",
		slog.String("date", mine.Date.Format(models.DateLayout)),
		slog.String("planning", string(mine.Planning)),
		slog.String("start", mine.Start.String()),
		slog.String("end", mine.End.String()))
	return nil
}
