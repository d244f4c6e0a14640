// Package list owns the authoritative in-memory shopping list and its
// persistence round-trip. All mutations go through here; the HTTP layer and
// the sort projection only ever see copies.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"shoplist/internal/models"
	"shoplist/internal/storage"
)

var (
	// ErrEmptyText rejects items whose text is empty after trimming.
	ErrEmptyText = errors.New("item text must not be empty")
	// ErrCorruptData is returned by Load when the stored blob does not
	// decode as an item list. The list resets to empty and stays usable.
	ErrCorruptData = errors.New("stored items are corrupt")
)

// Stats are the derived counters shown above the list.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// List holds the item collection, its derived stats and the next identity
// to hand out. One instance lives for the whole session.
type List struct {
	mu        sync.Mutex
	items     []models.Item
	stats     Stats
	nextID    int64
	store     storage.KV
	logger    *slog.Logger
	listeners []func(Stats)
	now       func() time.Time
}

// New constructs an empty list backed by the given store. Call Load to
// hydrate it from storage.
func New(store storage.KV, logger *slog.Logger) *List {
	if logger == nil {
		logger = slog.Default()
	}
	return &List{
		store:  store,
		logger: logger,
		nextID: 1,
		now:    time.Now,
	}
}

// Subscribe registers fn to run after every mutation or reload, with the
// recomputed stats. Listeners must not call back into the list.
func (l *List) Subscribe(fn func(Stats)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Load hydrates the collection from storage. An absent key yields an empty
// list. An undecodable blob yields an empty list and ErrCorruptData so the
// caller can surface a warning; the session continues either way.
func (l *List) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	raw, err := l.store.Read(ctx, storage.ItemsKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// First run.
	case err != nil:
		l.nextID = 1
		l.refresh()
		return fmt.Errorf("load items: %w", err)
	default:
		var items []models.Item
		if jsonErr := json.Unmarshal(raw, &items); jsonErr != nil {
			l.logger.Error("discarding stored items", slog.String("error", jsonErr.Error()))
			l.refresh()
			return ErrCorruptData
		}
		l.items = items
	}

	l.nextID = maxID(l.items) + 1
	l.refresh()
	return nil
}

// Add appends a new item with a fresh identity and persists the collection.
// The text is trimmed first; empty text fails with ErrEmptyText and leaves
// everything untouched. On a persistence failure the item is still added
// in memory and the write error is returned for the caller to surface.
func (l *List) Add(ctx context.Context, text, category string) (models.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Item{}, ErrEmptyText
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item := models.Item{
		ID:        l.nextID,
		Text:      text,
		Category:  category,
		Completed: false,
		CreatedAt: l.now().UTC(),
	}
	l.nextID++
	l.items = append(l.items, item)

	err := l.save(ctx)
	l.refresh()
	return item, err
}

// Toggle flips the completed flag of the item with the given id and
// persists the collection. An absent id is a silent no-op.
func (l *List) Toggle(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			err := l.save(ctx)
			l.refresh()
			return err
		}
	}
	return nil
}

// Delete removes the item with the given id and persists the collection.
// An absent id is a silent no-op.
func (l *List) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			err := l.save(ctx)
			l.refresh()
			return err
		}
	}
	return nil
}

// Save serializes the full collection and writes it to storage. The
// in-memory collection stays authoritative whether or not the write lands.
func (l *List) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ctx)
}

// Items returns a snapshot of the collection in insertion order.
func (l *List) Items() []models.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Stats returns the current derived counters.
func (l *List) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// save must be called with the lock held.
func (l *List) save(ctx context.Context) error {
	raw, err := json.Marshal(l.items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	if err := l.store.Write(ctx, storage.ItemsKey, raw); err != nil {
		l.logger.Error("persisting items failed", slog.String("error", err.Error()))
		return fmt.Errorf("persist items: %w", err)
	}
	return nil
}

// refresh recomputes stats and notifies listeners. Must be called with the
// lock held.
func (l *List) refresh() {
	stats := Stats{Total: len(l.items)}
	for _, item := range l.items {
		if item.Completed {
			stats.Completed++
		}
	}
	l.stats = stats
	for _, fn := range l.listeners {
		fn(stats)
	}
}

func maxID(items []models.Item) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max
}
