// ABOUTME: Tests for tool dispatch against seeded NetNewsWire accounts
// ABOUTME: Exercises every tool, argument validation, error results, and metrics

package mcp

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/netnewswire-mcp/internal/accounts"
	"github.com/harper/netnewswire-mcp/internal/models"
	"github.com/harper/netnewswire-mcp/internal/storage"
)

func call(t *testing.T, d *Dispatcher, name string, args Args) Result {
	t.Helper()
	return d.Call(context.Background(), name, args)
}

func TestCall_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, "nonexistent_tool", nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Unknown tool: nonexistent_tool", result.Text)
}

func TestCall_ListAccounts(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListAccounts, nil)
	require.False(t, result.IsError, result.Text)
	assert.True(t, strings.HasPrefix(result.Text, "# NetNewsWire Accounts\n"))
	assert.Contains(t, result.Text, "- **2_iCloud**\n")
	assert.Contains(t, result.Text, "- **OnMyMac**\n")
	assert.Contains(t, result.Text, "  OPML: Yes")
	assert.Contains(t, result.Text, "  OPML: No")
}

func TestCall_ListFeeds(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListFeeds, Args{"account": "onmymac"})
	require.False(t, result.IsError, result.Text)
	assert.Contains(t, result.Text, "| Daring Fireball | Tech | https://daringfireball.net/feeds/main |")
	assert.Contains(t, result.Text, "| Kottke | Tech | https://feeds.kottke.org/main |")
	assert.True(t, strings.HasSuffix(result.Text, "\nTotal: 2 feeds"))
}

func TestCall_ListFeeds_NoOPML(t *testing.T) {
	d := newTestDispatcher(t)

	// Default account is the first sorted: 2_iCloud
	result := call(t, d, ToolListFeeds, nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: No Subscriptions.opml found for account: 2_iCloud", result.Text)
}

func TestCall_AccountNotFound(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticleCount, Args{"account": "Feedbin"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Account 'Feedbin' not found. Available: 2_iCloud, OnMyMac", result.Text)
}

func TestCall_ListStarredArticles(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListStarredArticles, Args{"account": "OnMyMac"})
	require.False(t, result.IsError, result.Text)

	assert.True(t, strings.HasPrefix(result.Text, "# Starred Articles\n\n| Article ID |"))
	dfRow := strings.Index(result.Text, "| df-1 |")
	kRow := strings.Index(result.Text, "| k-1 |")
	require.NotEqual(t, -1, dfRow)
	require.NotEqual(t, -1, kRow)
	assert.Less(t, dfRow, kRow, "newest published first")
	assert.Contains(t, result.Text, `Pipes \| and tables`)
	assert.Contains(t, result.Text, "| https://example.com/linked |")
	assert.NotContains(t, result.Text, "k-2")
	assert.True(t, strings.HasSuffix(result.Text, "\nTotal: 2 articles"))
}

func TestCall_ListStarredArticles_Limit(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListStarredArticles, Args{"account": "OnMyMac", "limit": 1.0})
	require.False(t, result.IsError, result.Text)
	assert.Contains(t, result.Text, "| df-1 |")
	assert.True(t, strings.HasSuffix(result.Text, "\nTotal: 1 articles"))
}

func TestCall_ListStarredArticles_FeedFilter(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListStarredArticles, Args{"account": "OnMyMac", "feed_id": "https://feeds.kottke.org/main"})
	require.False(t, result.IsError, result.Text)
	assert.Contains(t, result.Text, "| k-1 |")
	assert.NotContains(t, result.Text, "| df-1 |")
}

func TestCall_ListRecentArticles(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListRecentArticles, Args{"account": "OnMyMac"})
	require.False(t, result.IsError, result.Text)
	assert.True(t, strings.HasPrefix(result.Text, "# Recent Articles\n"))
	assert.True(t, strings.HasSuffix(result.Text, "\nTotal: 3 articles"))

	starred := call(t, d, ToolListRecentArticles, Args{"account": "OnMyMac", "starred_only": true})
	require.False(t, starred.IsError, starred.Text)
	assert.True(t, strings.HasPrefix(starred.Text, "# Recent Starred Articles\n"))
	assert.True(t, strings.HasSuffix(starred.Text, "\nTotal: 2 articles"))
}

func TestCall_ListRecentArticles_EmptyAccount(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolListRecentArticles, nil)
	require.False(t, result.IsError, result.Text)
	assert.Equal(t, "# Recent Articles\n\nNo articles found.\n\nTotal: 0 articles", result.Text)
}

func TestCall_InvalidArguments(t *testing.T) {
	d := newTestDispatcher(t)

	tests := []struct {
		name string
		tool string
		args Args
		want string
	}{
		{
			name: "zero limit",
			tool: ToolListRecentArticles,
			args: Args{"limit": 0.0},
			want: "Error: Invalid parameter 'limit': must be a positive integer",
		},
		{
			name: "fractional limit",
			tool: ToolSearchArticles,
			args: Args{"query": "swift", "limit": 1.5},
			want: "Error: Invalid parameter 'limit': expected an integer",
		},
		{
			name: "starred_only not boolean",
			tool: ToolListRecentArticles,
			args: Args{"starred_only": "true"},
			want: "Error: Invalid parameter 'starred_only': expected a boolean",
		},
		{
			name: "account not string",
			tool: ToolGetArticleCount,
			args: Args{"account": 1.0},
			want: "Error: Invalid parameter 'account': expected a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, d, tt.tool, tt.args)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.want, result.Text)
		})
	}
}

func TestCall_MissingRequiredParameters(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticle, Args{"account": "OnMyMac"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Missing required parameter: article_id", result.Text)

	result = call(t, d, ToolSearchArticles, Args{"account": "OnMyMac"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Missing required parameter: query", result.Text)
}

func TestCall_GetArticle(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticle, Args{"account": "OnMyMac", "article_id": "df-1"})
	require.False(t, result.IsError, result.Text)
	assert.True(t, strings.HasPrefix(result.Text, "# Article\n\n- **ID**: `df-1`"))
	assert.Contains(t, result.Text, "- **Title**: Swift concurrency notes")
	assert.Contains(t, result.Text, "- **Starred**: Yes")
	assert.Contains(t, result.Text, "- **Read**: No")
	assert.Contains(t, result.Text, "- **Authors**: John Gruber")
	assert.Contains(t, result.Text, "\n## Summary\n\nThoughts on actors.")
	assert.Contains(t, result.Text, "\n## Content (HTML)\n\n<p>Actors are <strong>reference types</strong>.</p>")
}

func TestCall_GetArticle_Markdown(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticle, Args{"account": "OnMyMac", "article_id": "df-1", "markdown": true})
	require.False(t, result.IsError, result.Text)
	assert.Contains(t, result.Text, "## Content (Markdown)")
	assert.Contains(t, result.Text, "**reference types**")
	assert.NotContains(t, result.Text, "<p>")
}

func TestCall_GetArticle_NotFound(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticle, Args{"account": "OnMyMac", "article_id": "nope"})
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Article not found: nope", result.Text)
}

func TestCall_SearchArticles(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolSearchArticles, Args{"account": "OnMyMac", "query": "concurrency"})
	require.False(t, result.IsError, result.Text)
	assert.True(t, strings.HasPrefix(result.Text, "# Search Results: \"concurrency\"\n"))

	dfRow := strings.Index(result.Text, "| df-1 |")
	oldRow := strings.Index(result.Text, "| k-2 |")
	require.NotEqual(t, -1, dfRow)
	require.NotEqual(t, -1, oldRow)
	assert.Less(t, dfRow, oldRow)
	assert.True(t, strings.HasSuffix(result.Text, "\nTotal: 2 articles"))
}

func TestCall_SearchArticles_BadQuery(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolSearchArticles, Args{"account": "OnMyMac", "query": `"unterminated`})
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Text, "Error: search articles for OnMyMac:"), result.Text)
}

func TestCall_GetArticleCount(t *testing.T) {
	d := newTestDispatcher(t)

	result := call(t, d, ToolGetArticleCount, Args{"account": "OnMyMac"})
	require.False(t, result.IsError, result.Text)
	assert.Equal(t, strings.Join([]string{
		"# Article Counts: OnMyMac\n",
		"| Metric | Count |",
		"|--------|-------|",
		"| Total articles | 3 |",
		"| Starred | 2 |",
		"| Unread | 1 |",
	}, "\n"), result.Text)
}

// panicStore fails every query with a panic.
type panicStore struct {
	storage.Store
}

func (panicStore) ArticleCounts(context.Context, models.Account) (models.ArticleCounts, error) {
	panic("boom")
}

func TestCall_RecoversPanics(t *testing.T) {
	registry := accounts.NewRegistryFromAccounts("/accounts", []models.Account{{Name: "OnMyMac"}})
	d := NewDispatcher(registry, panicStore{})

	result := call(t, d, ToolGetArticleCount, nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: internal error: boom", result.Text)
}

func TestCall_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	d := newTestDispatcher(t, WithMetrics(m))

	call(t, d, ToolListAccounts, nil)
	call(t, d, ToolListAccounts, nil)
	call(t, d, ToolGetArticle, Args{"account": "OnMyMac"})
	call(t, d, "made_up", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues(ToolListAccounts, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(ToolGetArticle, OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(unknownToolLabel, OutcomeError)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.duration))
}

func TestCall_Concurrent(t *testing.T) {
	d := newTestDispatcher(t)

	var wg sync.WaitGroup
	results := make(chan Result, 30)
	for i := 0; i < 10; i++ {
		for _, tool := range []string{ToolGetArticleCount, ToolListRecentArticles, ToolListStarredArticles} {
			wg.Add(1)
			go func(tool string) {
				defer wg.Done()
				results <- d.Call(context.Background(), tool, Args{"account": "OnMyMac"})
			}(tool)
		}
	}
	wg.Wait()
	close(results)

	for r := range results {
		assert.False(t, r.IsError, r.Text)
	}
}

func TestToolNames(t *testing.T) {
	d := newTestDispatcher(t)

	assert.Equal(t, []string{
		ToolGetArticle,
		ToolGetArticleCount,
		ToolListAccounts,
		ToolListFeeds,
		ToolListRecentArticles,
		ToolListStarredArticles,
		ToolSearchArticles,
	}, d.ToolNames())
}
