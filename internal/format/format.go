// ABOUTME: Markdown report rendering for accounts, feeds, article lists, and article detail
// ABOUTME: Pure functions over model values; the output layout is what MCP clients read

package format

import (
	"fmt"
	"strings"

	"github.com/harper/netnewswire-mcp/internal/content"
	"github.com/harper/netnewswire-mcp/internal/models"
	"github.com/harper/netnewswire-mcp/internal/timeutil"
)

// Column widths for article tables
const (
	DefaultTruncateLength = 80
	TitleColumnLength     = 60
	FeedColumnLength      = 40
)

// Placeholder stands in for missing values.
const Placeholder = "-"

// EscapeTableCell renders an optional value for a markdown table cell.
func EscapeTableCell(s *string) string {
	if s == nil {
		return Placeholder
	}
	return escape(*s)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Truncate shortens s to max runes and appends "...".
// Missing or empty values render as the placeholder.
func Truncate(s *string, max int) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	runes := []rune(*s)
	if len(runes) <= max {
		return *s
	}
	return string(runes[:max]) + "..."
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ArticleTable renders articles under title as a markdown table.
// The title is emitted verbatim, so callers include their own trailing newline.
func ArticleTable(articles []models.ArticleWithStatus, title string) string {
	lines := []string{title}

	if len(articles) == 0 {
		lines = append(lines, "No articles found.")
	} else {
		lines = append(lines,
			"| Article ID | Title | Feed | Date | Starred | URL |",
			"|------------|-------|------|------|---------|-----|",
		)
		for i := range articles {
			a := &articles[i]
			feedID := a.FeedID
			url := Placeholder
			if u := a.PrimaryURL(); u != nil {
				url = *u
			}
			lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s | %s |",
				escape(a.ArticleID),
				escape(Truncate(a.Title, TitleColumnLength)),
				escape(Truncate(&feedID, FeedColumnLength)),
				timeutil.FormatShortDate(a.DisplayDate()),
				yesNo(a.Starred),
				url,
			))
		}
	}

	lines = append(lines, fmt.Sprintf("\nTotal: %d articles", len(articles)))
	return strings.Join(lines, "\n")
}

// ArticleDetail renders one article with metadata, summary, and content.
// HTML content is included as-is.
func ArticleDetail(article *models.ArticleWithStatus, authors []models.Author) string {
	return articleDetail(article, authors, false)
}

// ArticleDetailMarkdown is ArticleDetail with HTML content converted to Markdown.
func ArticleDetailMarkdown(article *models.ArticleWithStatus, authors []models.Author) string {
	return articleDetail(article, authors, true)
}

func articleDetail(article *models.ArticleWithStatus, authors []models.Author, markdown bool) string {
	lines := []string{"# Article\n"}
	lines = append(lines, fmt.Sprintf("- **ID**: `%s`", article.ArticleID))
	if article.Title != nil {
		lines = append(lines, "- **Title**: "+*article.Title)
	}
	lines = append(lines, "- **Feed**: "+article.FeedID)
	lines = append(lines, "- **Published**: "+timeutil.FormatDate(article.DatePublished))
	arrived := article.DateArrived
	lines = append(lines, "- **Arrived**: "+timeutil.FormatDate(&arrived))
	if article.URL != nil {
		lines = append(lines, "- **URL**: "+*article.URL)
	}
	if ext := article.ExternalURL; ext != nil && (article.URL == nil || *ext != *article.URL) {
		lines = append(lines, "- **External URL**: "+*ext)
	}
	lines = append(lines, "- **Starred**: "+yesNo(article.Starred))
	lines = append(lines, "- **Read**: "+yesNo(article.Read))

	if names := authorNames(authors); names != "" {
		lines = append(lines, "- **Authors**: "+names)
	}

	if article.Summary != nil && *article.Summary != "" {
		lines = append(lines, "\n## Summary\n", *article.Summary)
	}

	switch {
	case article.ContentHTML != nil && *article.ContentHTML != "":
		if markdown {
			lines = append(lines, "\n## Content (Markdown)\n", content.ToMarkdown(*article.ContentHTML))
		} else {
			lines = append(lines, "\n## Content (HTML)\n", *article.ContentHTML)
		}
	case article.ContentText != nil && *article.ContentText != "":
		lines = append(lines, "\n## Content\n", *article.ContentText)
	}

	return strings.Join(lines, "\n")
}

func authorNames(authors []models.Author) string {
	var names []string
	for _, a := range authors {
		if a.Name != nil {
			names = append(names, *a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// FeedTable renders subscribed feeds as a markdown table.
func FeedTable(feeds []models.FeedInfo) string {
	lines := []string{"# Subscribed Feeds\n"}

	if len(feeds) == 0 {
		lines = append(lines, "No feeds found.")
	} else {
		lines = append(lines, "| Feed | Folder | URL |", "|------|--------|-----|")
		for _, f := range feeds {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", escape(f.Title), EscapeTableCell(f.Folder), f.XMLURL))
		}
	}

	lines = append(lines, fmt.Sprintf("\nTotal: %d feeds", len(feeds)))
	return strings.Join(lines, "\n")
}

// Counts renders whole-account article totals.
func Counts(account string, counts models.ArticleCounts) string {
	lines := []string{
		fmt.Sprintf("# Article Counts: %s\n", account),
		"| Metric | Count |",
		"|--------|-------|",
		fmt.Sprintf("| Total articles | %d |", counts.Total),
		fmt.Sprintf("| Starred | %d |", counts.Starred),
		fmt.Sprintf("| Unread | %d |", counts.Unread),
	}
	return strings.Join(lines, "\n")
}

// AccountList renders discovered accounts as a markdown list.
func AccountList(accounts []models.Account) string {
	lines := []string{"# NetNewsWire Accounts\n"}
	for _, a := range accounts {
		lines = append(lines,
			fmt.Sprintf("- **%s**", a.Name),
			fmt.Sprintf("  Path: `%s`", a.Path),
			"  OPML: "+yesNo(a.HasOPML()),
			"",
		)
	}
	return strings.Join(lines, "\n")
}
