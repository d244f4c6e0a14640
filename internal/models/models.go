package models

import "time"

// Item is a single shopping-list entry.
type Item struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortMode selects the ordering of the rendered list.
type SortMode string

const (
	SortAdded     SortMode = "added"
	SortAlpha     SortMode = "alpha"
	SortCategory  SortMode = "category"
	SortCompleted SortMode = "completed"
)

// ParseSortMode maps a raw query value to a known mode, falling back to
// SortAdded for anything unrecognised.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortAlpha, SortCategory, SortCompleted:
		return SortMode(raw)
	default:
		return SortAdded
	}
}

// Categories enumerates the labels offered by the item creation form. The
// list model accepts any category string; this set only feeds the UI.
var Categories = []string{
	"Produce",
	"Dairy",
	"Meat & Fish",
	"Bakery",
	"Frozen",
	"Household",
	"Other",
}

// ValidThemes enumerates the display modes the frontend may persist.
var ValidThemes = map[string]struct{}{
	"light": {},
	"dark":  {},
}
