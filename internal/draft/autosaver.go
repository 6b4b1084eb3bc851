package draft

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval matches the platform's editor autosave cadence.
const DefaultInterval = 5 * time.Second

// Autosaver periodically persists the current form state while an editing
// session runs. source is polled on each tick; it must be safe to call from
// the autosaver's goroutine.
type Autosaver struct {
	storage  Storage
	source   func() Draft
	interval time.Duration
	logger   *slog.Logger
}

func NewAutosaver(storage Storage, source func() Draft, interval time.Duration, logger *slog.Logger) *Autosaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autosaver{
		storage:  storage,
		source:   source,
		interval: interval,
		logger:   logger.With("component", "autosave"),
	}
}

// Run saves on every tick until ctx is cancelled, then takes a final save so
// the newest edits survive the shutdown. A failed save is logged and retried
// on the next tick; it never stops the editing session.
func (a *Autosaver) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.save(context.WithoutCancel(ctx))
			return ctx.Err()
		case <-ticker.C:
			a.save(ctx)
		}
	}
}

func (a *Autosaver) save(ctx context.Context) {
	if _, err := Save(ctx, a.storage, a.source()); err != nil {
		a.logger.Warn("autosave failed", "error", err)
	}
}
