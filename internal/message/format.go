// Package message renders notification bodies for a chat channel that
// accepts an HTML subset (bold, links). Rendering is pure: the same input
// always produces byte-identical output, so retried deliveries never drift.
package message

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML neutralizes source-provided free text for the channel markup.
func EscapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// UserLabel renders a person reference. With a known chat handle it becomes
// a profile link, otherwise just the escaped display name.
func UserLabel(displayName, telegramUsername string) string {
	if displayName == "" {
		displayName = telegramUsername
	}
	if displayName == "" {
		return "—"
	}

	if telegramUsername != "" {
		return `<a href="https://t.me/` + EscapeHTML(telegramUsername) + `">` + EscapeHTML(displayName) + `</a>`
	}

	return EscapeHTML(displayName)
}
