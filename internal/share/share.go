// Package share renders the shopping list into forms suitable for the
// clipboard, the native share sheet and the share preview modal.
package share

import (
	"strings"

	"shoplist/internal/models"
)

// CategoryGroup is one category block of the shared list.
type CategoryGroup struct {
	Category string        `json:"category"`
	Items    []models.Item `json:"items"`
}

// Groups partitions items by category. Categories appear in first-seen
// order and items keep their insertion order within a group; the share view
// deliberately ignores the display sort. An empty collection yields nil.
func Groups(items []models.Item) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// FormatText renders the list as plain text: each category name on its own
// line, its items as bulleted lines with a trailing check mark when
// completed, and a blank line between category blocks but not after the
// last one. An empty collection yields the empty string.
func FormatText(items []models.Item) string {
	var b strings.Builder
	for i, group := range Groups(items) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(group.Category)
		b.WriteString("\n")
		for _, item := range group.Items {
			b.WriteString("• ")
			b.WriteString(item.Text)
			if item.Completed {
				b.WriteString(" ✓")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
