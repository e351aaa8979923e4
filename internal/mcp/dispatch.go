// ABOUTME: Routes tool calls by name to account, storage, and formatting operations
// ABOUTME: Every failure, including panics, becomes an error-flagged text result

package mcp

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/netnewswire-mcp/internal/accounts"
	"github.com/harper/netnewswire-mcp/internal/format"
	"github.com/harper/netnewswire-mcp/internal/models"
	"github.com/harper/netnewswire-mcp/internal/storage"
)

// Tool names
const (
	ToolListAccounts        = "list_accounts"
	ToolListFeeds           = "list_feeds"
	ToolListStarredArticles = "list_starred_articles"
	ToolListRecentArticles  = "list_recent_articles"
	ToolGetArticle          = "get_article"
	ToolSearchArticles      = "search_articles"
	ToolGetArticleCount     = "get_article_count"
)

// Result is the text outcome of a tool call.
type Result struct {
	Text    string
	IsError bool
}

type handlerFunc func(ctx context.Context, args Args) (string, error)

// Dispatcher executes tool calls. It is safe for concurrent use.
type Dispatcher struct {
	registry *accounts.Registry
	store    storage.Store
	logger   *log.Logger
	metrics  *Metrics
	handlers map[string]handlerFunc
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher creates a dispatcher over the given accounts and store.
func NewDispatcher(registry *accounts.Registry, store storage.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		store:    store,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[string]handlerFunc{
		ToolListAccounts:        d.listAccounts,
		ToolListFeeds:           d.listFeeds,
		ToolListStarredArticles: d.listStarredArticles,
		ToolListRecentArticles:  d.listRecentArticles,
		ToolGetArticle:          d.getArticle,
		ToolSearchArticles:      d.searchArticles,
		ToolGetArticleCount:     d.getArticleCount,
	}
	return d
}

// Registry returns the account registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *accounts.Registry {
	return d.registry
}

// ToolNames returns the registered tool names in sorted order.
func (d *Dispatcher) ToolNames() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named tool. It never returns a Go error: failures are
// reported as results with IsError set.
func (d *Dispatcher) Call(ctx context.Context, name string, args Args) (result Result) {
	start := time.Now()
	logger := d.logger.With("call_id", uuid.NewString(), "tool", name)

	handler, known := d.handlers[name]
	label := name
	if !known {
		label = unknownToolLabel
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tool panicked", "panic", r)
			result = errorResult(fmt.Errorf("internal error: %v", r))
		}

		elapsed := time.Since(start)
		d.metrics.RecordCall(label, result.IsError, elapsed)
		if result.IsError {
			logger.Warn("tool call failed", "duration", elapsed, "error", result.Text)
		} else {
			logger.Debug("tool call", "duration", elapsed)
		}
	}()

	if !known {
		return Result{Text: "Unknown tool: " + name, IsError: true}
	}

	text, err := handler(ctx, args)
	if err != nil {
		return errorResult(err)
	}
	return Result{Text: text}
}

func errorResult(err error) Result {
	return Result{Text: "Error: " + err.Error(), IsError: true}
}

// resolveAccount picks the account named by the optional "account" argument.
func (d *Dispatcher) resolveAccount(args Args) (models.Account, error) {
	name, _, err := args.String("account")
	if err != nil {
		return models.Account{}, err
	}
	return d.registry.Resolve(name)
}

func (d *Dispatcher) listAccounts(_ context.Context, _ Args) (string, error) {
	return format.AccountList(d.registry.List()), nil
}

func (d *Dispatcher) listFeeds(_ context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	feeds, err := d.registry.ListFeeds(account)
	if err != nil {
		return "", err
	}
	return format.FeedTable(feeds), nil
}

func (d *Dispatcher) listStarredArticles(ctx context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	feedID, err := args.OptionalString("feed_id")
	if err != nil {
		return "", err
	}
	limit, err := args.Limit("limit", storage.DefaultStarredLimit)
	if err != nil {
		return "", err
	}

	articles, err := d.store.StarredArticles(ctx, account, storage.StarredFilter{FeedID: feedID, Limit: limit})
	if err != nil {
		return "", err
	}
	return format.ArticleTable(articles, "# Starred Articles\n"), nil
}

func (d *Dispatcher) listRecentArticles(ctx context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	feedID, err := args.OptionalString("feed_id")
	if err != nil {
		return "", err
	}
	limit, err := args.Limit("limit", storage.DefaultRecentLimit)
	if err != nil {
		return "", err
	}
	starredOnly, _, err := args.Bool("starred_only")
	if err != nil {
		return "", err
	}

	articles, err := d.store.RecentArticles(ctx, account, storage.RecentFilter{
		FeedID:      feedID,
		StarredOnly: starredOnly,
		Limit:       limit,
	})
	if err != nil {
		return "", err
	}

	title := "# Recent Articles\n"
	if starredOnly {
		title = "# Recent Starred Articles\n"
	}
	return format.ArticleTable(articles, title), nil
}

func (d *Dispatcher) getArticle(ctx context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	articleID, err := args.RequireString("article_id")
	if err != nil {
		return "", err
	}
	markdown, _, err := args.Bool("markdown")
	if err != nil {
		return "", err
	}

	article, authors, err := d.store.GetArticle(ctx, account, articleID)
	if err != nil {
		return "", err
	}

	if markdown {
		return format.ArticleDetailMarkdown(article, authors), nil
	}
	return format.ArticleDetail(article, authors), nil
}

func (d *Dispatcher) searchArticles(ctx context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	query, err := args.RequireString("query")
	if err != nil {
		return "", err
	}
	limit, err := args.Limit("limit", storage.DefaultSearchLimit)
	if err != nil {
		return "", err
	}

	articles, err := d.store.SearchArticles(ctx, account, query, limit)
	if err != nil {
		return "", err
	}
	return format.ArticleTable(articles, "# Search Results: \""+query+"\"\n"), nil
}

func (d *Dispatcher) getArticleCount(ctx context.Context, args Args) (string, error) {
	account, err := d.resolveAccount(args)
	if err != nil {
		return "", err
	}

	counts, err := d.store.ArticleCounts(ctx, account)
	if err != nil {
		return "", err
	}
	return format.Counts(account.Name, counts), nil
}
