// ABOUTME: Storage interface and query types for NetNewsWire account databases
// ABOUTME: Defines the read-only contract for article, status, and author queries

package storage

import (
	"context"
	"fmt"

	"github.com/harper/netnewswire-mcp/internal/models"
)

// Default result limits
const (
	DefaultStarredLimit = 100
	DefaultRecentLimit  = 50
	DefaultSearchLimit  = 50
)

// StarredFilter specifies criteria for listing starred articles.
type StarredFilter struct {
	FeedID *string
	Limit  int // 0 means DefaultStarredLimit
}

// RecentFilter specifies criteria for listing recently arrived articles.
type RecentFilter struct {
	FeedID      *string
	StarredOnly bool
	Limit       int // 0 means DefaultRecentLimit
}

// ArticleNotFoundError means no article matched the requested ID.
type ArticleNotFoundError struct {
	ArticleID string
}

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("Article not found: %s", e.ArticleID)
}

// Store defines the read-only query interface over account databases.
type Store interface {
	// Close releases every open connection pool.
	Close() error

	// StarredArticles returns starred articles, newest published first.
	StarredArticles(ctx context.Context, account models.Account, filter StarredFilter) ([]models.ArticleWithStatus, error)

	// RecentArticles returns articles by arrival date, newest first.
	RecentArticles(ctx context.Context, account models.Account, filter RecentFilter) ([]models.ArticleWithStatus, error)

	// SearchArticles runs a full-text match against the search index.
	// The query is passed to the index verbatim.
	SearchArticles(ctx context.Context, account models.Account, query string, limit int) ([]models.ArticleWithStatus, error)

	// GetArticle returns one article with its authors.
	GetArticle(ctx context.Context, account models.Account, articleID string) (*models.ArticleWithStatus, []models.Author, error)

	// ArticleCounts returns total, starred, and unread counts for the account.
	ArticleCounts(ctx context.Context, account models.Account) (models.ArticleCounts, error)
}

func limitOrDefault(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}
