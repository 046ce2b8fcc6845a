package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bookdb/internal/catalog"

	"github.com/google/uuid"
)

type Config struct {
	// MaxEntries caps how many entries one run adds. Zero means no cap.
	MaxEntries int
	// FailOnDuplicate fails the run on a title that already exists instead of skipping it.
	FailOnDuplicate bool
}

// Source supplies the entries to import.
type Source interface {
	Entries(ctx context.Context) ([]catalog.Entry, error)
}

type Service struct {
	store catalog.Store
	cfg   Config
}

func NewService(store catalog.Store, cfg Config) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
	}
}

// Run imports every entry of src into the catalog. The returned Run is always
// populated, also when err is non-nil.
func (s *Service) Run(ctx context.Context, src Source) (run *Run, err error) {
	run = &Run{
		ID:        uuid.New().String(),
		Source:    fmt.Sprint(src),
		Status:    StatusRunning,
		StartedAt: time.Now(),
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}

		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		log.Printf("ingest run_id=%s source=%s status=%s fetched=%d added=%d skipped=%d duration_ms=%d",
			run.ID, run.Source, run.Status, run.Fetched, run.Added, run.Skipped, now.Sub(run.StartedAt).Milliseconds())
	}()

	entries, err := src.Entries(ctx)
	if err != nil {
		return run, fmt.Errorf("fetch entries: %w", err)
	}
	run.Fetched = len(entries)

	for _, e := range entries {
		if s.cfg.MaxEntries > 0 && run.Added >= s.cfg.MaxEntries {
			break
		}
		if err := ctx.Err(); err != nil {
			return run, err
		}

		err := s.store.Add(e.Title, e.Authors)
		switch {
		case err == nil:
			run.Added++
		case errors.Is(err, catalog.ErrAlreadyExists) && !s.cfg.FailOnDuplicate:
			log.Printf("ingest run_id=%s skipped title=%q: already in catalog", run.ID, e.Title)
			run.Skipped++
		default:
			return run, fmt.Errorf("add %q: %w", e.Title, err)
		}
	}

	return run, nil
}
