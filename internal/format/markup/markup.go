// Package markup renders notifications as Pango markup rows for the picker.
package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/notifctl/rofication-gui/internal/notification"
)

var tagPattern = regexp.MustCompile(`<[^>]*?>`)

// StripTags removes anything that looks like a markup tag and escapes the
// remaining text so it can be embedded in Pango markup.
func StripTags(value string) string {
	return html.EscapeString(clean(value))
}

// Plain returns the text with tags removed and whitespace collapsed, without
// escaping. Used where the output is not rendered as markup.
func Plain(value string) string {
	return flatten(value)
}

// Entry formats a notification as a two line markup row. Every field is
// flattened to a single line so the row never grows past two lines.
func Entry(n notification.Notification) string {
	summary := html.EscapeString(flatten(n.Summary))
	app := html.EscapeString(flatten(n.Application))
	body := html.EscapeString(flatten(n.Body))
	return fmt.Sprintf("<b>%s</b> <small>(%s)</small>\n<small>%s</small>", summary, app, body)
}

// Entries formats every notification of a list, preserving order.
func Entries(list []notification.Notification) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = Entry(n)
	}
	return out
}

func clean(value string) string {
	stripped := tagPattern.ReplaceAllString(value, "")
	// rows are NUL delimited on the picker's stdin
	return strings.ReplaceAll(stripped, "\x00", "")
}

// flatten collapses whitespace before stripping tags, so tags spanning a
// newline match, and again afterwards to join the runs a removed tag separated.
func flatten(value string) string {
	return collapse(clean(collapse(value)))
}

func collapse(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
