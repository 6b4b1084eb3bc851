// Package progress tracks completed challenge days. The record lives in the
// local state store under a fixed key and is written back in full on every
// transition.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"devhub/internal/derive"
	"devhub/internal/domain"
)

// StorageKey is the local-state key holding the serialized record.
const StorageKey = "cloud-challenge-progress"

// currentVersion guards the persisted shape; an unknown version loads as a
// fresh record rather than guessing at a migration.
const currentVersion = 1

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type persistedProgress struct {
	Version int `json:"version"`
	domain.Progress
}

// Tracker is single-writer over one Progress record. Load must be called
// before any transition.
type Tracker struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time

	loaded bool
	data   domain.Progress
}

func NewTracker(storage Storage, logger *slog.Logger) *Tracker {
	return &Tracker{
		storage: storage,
		logger:  logger.With("component", "progress"),
		now:     time.Now,
	}
}

// Load reads the persisted record, or starts fresh if none (or an unknown
// version) exists.
func (t *Tracker) Load(ctx context.Context) error {
	raw, ok, err := t.storage.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	if !ok {
		t.data = emptyProgress()
		t.loaded = true
		return nil
	}

	var persisted persistedProgress
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return fmt.Errorf("decode progress: %w", err)
	}
	if persisted.Version != currentVersion {
		t.logger.Warn("unknown progress version, starting fresh", "version", persisted.Version)
		t.data = emptyProgress()
		t.loaded = true
		return nil
	}

	t.data = persisted.Progress
	if t.data.LastRead == nil {
		t.data.LastRead = make(map[int]int64)
	}
	t.loaded = true
	return nil
}

// Data returns a copy of the current record.
func (t *Tracker) Data() domain.Progress {
	data := t.data
	data.CompletedDays = append([]int(nil), t.data.CompletedDays...)
	data.LastRead = make(map[int]int64, len(t.data.LastRead))
	for k, v := range t.data.LastRead {
		data.LastRead[k] = v
	}
	return data
}

// MarkDayCompleted records day as done, stamps its read time and recomputes
// the streak from that day backward. The full record is persisted before
// returning.
func (t *Tracker) MarkDayCompleted(ctx context.Context, day int) error {
	if err := t.ensureLoaded(); err != nil {
		return err
	}
	if day < 1 {
		return fmt.Errorf("invalid day %d", day)
	}

	if !t.data.IsCompleted(day) {
		t.data.CompletedDays = append(t.data.CompletedDays, day)
		sort.Ints(t.data.CompletedDays)
	}
	t.data.LastRead[day] = t.now().UnixMilli()
	t.data.Streak = derive.Streak(t.data.CompletedDays, day)

	return t.persist(ctx)
}

// UnmarkDayCompleted removes day and recomputes the streak from the highest
// remaining day. An empty set leaves the streak at zero.
func (t *Tracker) UnmarkDayCompleted(ctx context.Context, day int) error {
	if err := t.ensureLoaded(); err != nil {
		return err
	}

	remaining := t.data.CompletedDays[:0]
	for _, d := range t.data.CompletedDays {
		if d != day {
			remaining = append(remaining, d)
		}
	}
	t.data.CompletedDays = remaining
	delete(t.data.LastRead, day)

	if len(t.data.CompletedDays) == 0 {
		t.data.Streak = 0
	} else {
		highest := t.data.CompletedDays[len(t.data.CompletedDays)-1]
		t.data.Streak = derive.Streak(t.data.CompletedDays, highest)
	}

	return t.persist(ctx)
}

// AddTimeSpent accumulates reading time.
func (t *Tracker) AddTimeSpent(ctx context.Context, d time.Duration) error {
	if err := t.ensureLoaded(); err != nil {
		return err
	}

	t.data.TotalTimeSpent += d.Milliseconds()
	return t.persist(ctx)
}

func (t *Tracker) ensureLoaded() error {
	if !t.loaded {
		return fmt.Errorf("progress not loaded")
	}
	return nil
}

func (t *Tracker) persist(ctx context.Context) error {
	raw, err := json.Marshal(persistedProgress{Version: currentVersion, Progress: t.data})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := t.storage.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

func emptyProgress() domain.Progress {
	return domain.Progress{
		CompletedDays: []int{},
		LastRead:      make(map[int]int64),
	}
}
