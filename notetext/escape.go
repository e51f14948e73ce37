package notetext

import "html"

// Escape converts raw text into a form safe to embed as rendered content.
// It maps '<', '>', '&', '\'' and '"' to their HTML entities.
//
// WARNING: Escape is not idempotent. Escaping already escaped text turns "&lt;"
// into "&amp;lt;", so every raw text segment must be escaped exactly once.
func Escape(text string) string {
	return html.EscapeString(text)
}
