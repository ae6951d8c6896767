// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import "strings"

// EscapeHTML escapes the characters that are significant in HTML text and
// attribute values: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#039;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// escapeAll escapes every string in a list.
func escapeAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = EscapeHTML(item)
	}
	return out
}
