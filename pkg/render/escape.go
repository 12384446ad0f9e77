package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes text for safe inclusion in HTML content and attributes.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
