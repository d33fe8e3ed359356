package ui

import (
	"html"
	"strings"

	"github.com/notifctl/rofication-gui/internal/format/markup"
	"github.com/notifctl/rofication-gui/internal/picker"
	uistate "github.com/notifctl/rofication-gui/internal/ui/state"
)

// rowsFromEntries turns formatted picker entries back into plain two-line
// rows. The index of every row is its position in entries.
func rowsFromEntries(entries []string, opts picker.Options) []uistate.Row {
	urgent := indexSet(opts.Urgent)
	low := indexSet(opts.Low)
	rows := make([]uistate.Row, 0, len(entries))
	for i, entry := range entries {
		title, body, _ := strings.Cut(entry, "\n")
		_, isUrgent := urgent[i]
		_, isLow := low[i]
		rows = append(rows, uistate.Row{
			Index:  i,
			Title:  plainText(title),
			Body:   plainText(body),
			Urgent: isUrgent,
			Low:    isLow,
		})
	}
	return rows
}

func plainText(markupText string) string {
	return html.UnescapeString(markup.Plain(markupText))
}

func indexSet(indices []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		set[idx] = struct{}{}
	}
	return set
}
