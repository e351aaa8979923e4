// ABOUTME: Converts stored article HTML into Markdown for agent-friendly reading
// ABOUTME: Leaves plain text untouched and falls back to the raw HTML if conversion fails

package content

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// markupPattern matches opening tags of the block and inline elements feeds commonly carry.
var markupPattern = regexp.MustCompile(`(?i)<\s*(p|div|span|a|br|hr|img|figure|h[1-6]|ul|ol|li|dl|table|tr|td|th|strong|em|b|i|u|code|pre|blockquote|iframe|video|section|article)\b[^>]*>`)

// LooksLikeHTML reports whether s contains recognizable HTML markup.
func LooksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return true
	}
	return markupPattern.MatchString(s)
}

// ToMarkdown converts article HTML to Markdown.
// Text without markup is returned unchanged.
func ToMarkdown(html string) string {
	if strings.TrimSpace(html) == "" || !LooksLikeHTML(html) {
		return html
	}

	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(md)
}
