package list

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"shoplist/internal/models"
)

// Projector derives display orderings from an item collection. Projections
// never mutate their input; each call returns a fresh slice.
type Projector struct {
	mu  sync.Mutex
	col *collate.Collator
}

// NewProjector builds a projector whose alpha and category modes collate in
// the given BCP 47 locale. An unparseable locale falls back to the root
// collation order.
func NewProjector(locale string) *Projector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Projector{col: collate.New(tag)}
}

// Project returns the collection ordered for the given mode. Ties always
// break on ascending id, so output is deterministic for a fixed input.
func (p *Projector) Project(items []models.Item, mode models.SortMode) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)

	// The collator carries an internal buffer, so comparisons are
	// serialized across concurrent projections.
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case models.SortAlpha:
		sort.SliceStable(out, func(i, j int) bool {
			if c := p.col.CompareString(out[i].Text, out[j].Text); c != 0 {
				return c < 0
			}
			return out[i].ID < out[j].ID
		})
	case models.SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			if c := p.col.CompareString(out[i].Category, out[j].Category); c != 0 {
				return c < 0
			}
			return out[i].ID < out[j].ID
		})
	case models.SortCompleted:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Completed != out[j].Completed {
				return !out[i].Completed
			}
			return out[i].ID < out[j].ID
		})
	default: // models.SortAdded
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
	}
	return out
}
