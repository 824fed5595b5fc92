package state

import (
	"strings"
	"unicode"
)

// SetFilter replaces the filter query, recomputes the visible items and
// moves the cursor back to the first match.
func (l *Level) SetFilter(query string) {
	l.Filter = query
	l.FilterCursor = len([]rune(query))
	l.Cursor = 0
	l.ViewportOffset = 0
	l.applyFilter()
}

// ClearFilter empties the query and restores the full item list.
func (l *Level) ClearFilter() {
	l.SetFilter("")
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// InsertFilterText appends text to the filter.
func (l *Level) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// DeleteFilterRuneBackward removes the last rune of the filter.
func (l *Level) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// DeleteFilterWordBackward removes the last word of the filter along with any
// trailing whitespace.
func (l *Level) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	l.SetFilter(string(runes[:i]))
	return true
}

// FilterItems returns the items whose label contains query, ignoring case and
// preserving order. The query is matched as typed, whitespace included; an
// empty query matches everything.
func FilterItems(items []Item, query string) []Item {
	if query == "" {
		return CloneItems(items)
	}
	lower := strings.ToLower(query)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
