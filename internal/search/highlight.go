package search

import (
	"strings"
	"unicode/utf8"
)

// Highlighter wraps query matches in emphasis markers.
type Highlighter struct {
	Prefix string
	Suffix string
}

// DefaultHighlighter emphasises matches Markdown-style.
var DefaultHighlighter = Highlighter{Prefix: "**", Suffix: "**"}

// Highlight wraps every case-insensitive, non-overlapping occurrence of
// query in text, scanning left to right. Text is returned unchanged when
// the query is empty or whitespace-only.
func (h Highlighter) Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return text
	}

	query = foldCase(query)
	n := utf8.RuneCountInString(query)
	runes := []rune(text)

	var sb strings.Builder
	matched := false
	for i := 0; i < len(runes); {
		if i+n <= len(runes) && foldCase(string(runes[i:i+n])) == query {
			sb.WriteString(h.Prefix)
			sb.WriteString(string(runes[i : i+n]))
			sb.WriteString(h.Suffix)
			i += n
			matched = true
			continue
		}
		sb.WriteRune(runes[i])
		i++
	}

	if !matched {
		return text
	}
	return sb.String()
}

// Highlight uses DefaultHighlighter.
func Highlight(text, query string) string {
	return DefaultHighlighter.Highlight(text, query)
}
