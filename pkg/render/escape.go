package render

import "strings"

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML escapes text content.
func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// escapeAttr escapes attribute values. Whitespace control characters are
// encoded too so values survive attribute parsing unchanged.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// EscapeHTML escapes text for inclusion in HTML content.
func EscapeHTML(s string) string { return escapeHTML(s) }
