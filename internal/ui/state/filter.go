package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter narrows the rows to those matching query. Clearing the filter
// restores the cursor held before filtering started.
func (l *Level) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	var selected = -1
	if row, ok := l.Selected(); ok {
		selected = row.Index
	}
	l.Filter = query
	if trimmed != "" && prevTrimmed == "" {
		l.LastCursor = selected
	}
	l.applyFilter()
	switch {
	case trimmed != "":
		l.Cursor = 0
	case prevTrimmed != "":
		if l.LastCursor >= 0 {
			l.SelectIndex(l.LastCursor)
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterRows(l.Full, l.Filter)
	l.ViewportOffset = 0
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
}

// FilterRows returns the rows matching query in their original order. Fuzzy
// matches win; a plain substring search is the fallback.
func FilterRows(rows []Row, query string) []Row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneRows(rows)
	}
	haystack := make([]string, len(rows))
	for i, row := range rows {
		haystack[i] = row.Title + " " + row.Body
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, haystack); len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Row, 0, len(matches))
		for i, row := range rows {
			if _, ok := matches[i]; ok {
				filtered = append(filtered, row)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Row, 0, len(rows))
	for i, row := range rows {
		if strings.Contains(strings.ToLower(haystack[i]), lower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
