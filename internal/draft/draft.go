// Package draft persists in-progress article edits so an interrupted editing
// session can resume without losing work.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"devhub/internal/domain"
)

// StorageKey is the local-state key holding the serialized draft.
const StorageKey = "edit-article-draft"

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Draft struct {
	ID      string    `json:"id"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Excerpt string    `json:"excerpt,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// New starts a draft for the article identified by slug.
func New(slug string) Draft {
	return Draft{ID: uuid.NewString(), Slug: slug}
}

// Update converts the draft into a submission payload.
func (d Draft) Update() domain.ArticleUpdate {
	return domain.ArticleUpdate{
		Title:   d.Title,
		Content: d.Content,
		Excerpt: d.Excerpt,
	}
}

// Save stamps and persists the draft.
func Save(ctx context.Context, storage Storage, d Draft) (Draft, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.SavedAt = time.Now()

	raw, err := json.Marshal(d)
	if err != nil {
		return d, fmt.Errorf("encode draft: %w", err)
	}
	if err := storage.Set(ctx, StorageKey, raw); err != nil {
		return d, fmt.Errorf("persist draft: %w", err)
	}
	return d, nil
}

// Load returns the stored draft, if any.
func Load(ctx context.Context, storage Storage) (Draft, bool, error) {
	raw, ok, err := storage.Get(ctx, StorageKey)
	if err != nil {
		return Draft{}, false, fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		return Draft{}, false, nil
	}

	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return Draft{}, false, fmt.Errorf("decode draft: %w", err)
	}
	return d, true, nil
}

// Clear removes the stored draft, typically after a successful publish.
func Clear(ctx context.Context, storage Storage) error {
	return storage.Delete(ctx, StorageKey)
}
