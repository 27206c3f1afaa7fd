package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and its cursor. Entering a filter
// remembers the cursor; clearing it restores that position.
func (p *Page) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	wasFiltered := strings.TrimSpace(p.Filter) != ""

	p.Filter = query
	p.FilterCursor = clamp(cursor, 0, len([]rune(query)))

	switch {
	case trimmed != "" && !wasFiltered:
		p.LastCursor = p.Cursor
	case trimmed == "" && wasFiltered:
		p.applyFilter()
		if p.LastCursor >= 0 && p.LastCursor < len(p.Items) {
			p.Cursor = p.LastCursor
		}
		p.LastCursor = -1
		return
	}

	p.applyFilter()
	if trimmed != "" {
		p.Cursor = max(BestMatchIndex(p.Items, trimmed), 0)
	}
}

func (p *Page) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor, p.Offset = 0, 0
		return
	}
	p.Cursor = clamp(p.Cursor, 0, len(p.Items)-1)
	if p.Offset >= len(p.Items) {
		p.Offset = 0
	}
}

// InsertFilterText inserts text at the filter cursor.
func (p *Page) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := clamp(p.FilterCursor, 0, len(runes))
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (p *Page) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	pos := clamp(p.FilterCursor, 0, len(runes))
	if pos == 0 {
		return false
	}
	p.SetFilter(string(runes[:pos-1])+string(runes[pos:]), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter cursor,
// including any whitespace between it and the cursor.
func (p *Page) DeleteFilterWordBackward() bool {
	runes := []rune(p.Filter)
	pos := clamp(p.FilterCursor, 0, len(runes))
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	p.SetFilter(string(runes[:i])+string(runes[pos:]), i)
	return true
}

// ClearFilter drops the filter entirely.
func (p *Page) ClearFilter() bool {
	if p.Filter == "" {
		return false
	}
	p.SetFilter("", 0)
	return true
}

// FilterItems returns the items matching query: fuzzy matches on the label
// first, falling back to substring matches on the ID and description.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, labels); len(ranks) > 0 {
		keep := make(map[int]bool, len(ranks))
		for _, rank := range ranks {
			keep[rank.OriginalIndex] = true
		}
		out := make([]Item, 0, len(keep))
		for i, item := range items {
			if keep[i] {
				out = append(out, item)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ID), lower) || strings.Contains(strings.ToLower(item.Description), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the item the cursor should land on for query: an exact
// label or ID match, then a label prefix, then the closest fuzzy match. It
// returns -1 only for an empty slice.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
