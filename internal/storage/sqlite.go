// ABOUTME: Read-only SQLite storage over NetNewsWire DB.sqlite3 files using modernc.org/sqlite
// ABOUTME: Caches one sqlx pool per database path and never opens a file for writing

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/harper/netnewswire-mcp/internal/models"
)

// articleSelect is the articles/statuses join every article query starts from.
const articleSelect = `
	SELECT a.articleID, a.feedID, a.uniqueID, a.title, a.contentHTML, a.contentText,
		a.url, a.externalURL, a.summary, a.imageURL, a.bannerImageURL,
		a.datePublished, a.dateModified, a.searchRowID,
		s.read, s.starred, s.dateArrived
	FROM articles a
	JOIN statuses s ON a.articleID = s.articleID
`

const authorsByArticle = `
	SELECT au.authorID, au.name, au.url, au.avatarURL, au.emailAddress
	FROM authors au
	JOIN authorsLookup al ON au.authorID = al.authorID
	WHERE al.articleID = ?
`

// SQLiteStore implements the Store interface over NetNewsWire databases.
type SQLiteStore struct {
	mu    sync.Mutex
	pools map[string]*sqlx.DB
}

// NewSQLiteStore creates a store. Pools are opened lazily per database path.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{pools: make(map[string]*sqlx.DB)}
}

// ReadOnlyDSN builds a modernc.org/sqlite DSN that opens path read-only
// and rejects writes at the connection level.
func ReadOnlyDSN(path string) string {
	u := url.URL{Path: filepath.ToSlash(path)}
	return "file:" + u.EscapedPath() + "?mode=ro&_pragma=query_only(1)"
}

// db returns the cached pool for the account's database, opening it on first use.
func (s *SQLiteStore) db(ctx context.Context, account models.Account) (*sqlx.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if db, ok := s.pools[account.DBPath]; ok {
		return db, nil
	}

	db, err := sqlx.Open("sqlite", ReadOnlyDSN(account.DBPath))
	if err != nil {
		return nil, fmt.Errorf("open database for %s: %w", account.Name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database for %s: %w", account.Name, err)
	}

	s.pools[account.DBPath] = db
	return db, nil
}

// Close closes every cached pool.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for path, db := range s.pools {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", path, err))
		}
		delete(s.pools, path)
	}
	return errors.Join(errs...)
}

// StarredArticles returns starred articles ordered by published date,
// falling back to arrival date.
func (s *SQLiteStore) StarredArticles(ctx context.Context, account models.Account, filter StarredFilter) ([]models.ArticleWithStatus, error) {
	conditions := []string{"s.starred = 1"}
	var args []interface{}

	if filter.FeedID != nil {
		conditions = append(conditions, "a.feedID = ?")
		args = append(args, *filter.FeedID)
	}

	query := articleSelect + " WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY COALESCE(a.datePublished, s.dateArrived) DESC LIMIT ?"
	args = append(args, limitOrDefault(filter.Limit, DefaultStarredLimit))

	articles, err := s.selectArticles(ctx, account, query, args...)
	if err != nil {
		return nil, fmt.Errorf("starred articles for %s: %w", account.Name, err)
	}
	return articles, nil
}

// RecentArticles returns articles ordered by arrival date.
func (s *SQLiteStore) RecentArticles(ctx context.Context, account models.Account, filter RecentFilter) ([]models.ArticleWithStatus, error) {
	var conditions []string
	var args []interface{}

	if filter.StarredOnly {
		conditions = append(conditions, "s.starred = 1")
	}
	if filter.FeedID != nil {
		conditions = append(conditions, "a.feedID = ?")
		args = append(args, *filter.FeedID)
	}

	query := articleSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.dateArrived DESC LIMIT ?"
	args = append(args, limitOrDefault(filter.Limit, DefaultRecentLimit))

	articles, err := s.selectArticles(ctx, account, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent articles for %s: %w", account.Name, err)
	}
	return articles, nil
}

// SearchArticles performs a full-text match against the search index.
func (s *SQLiteStore) SearchArticles(ctx context.Context, account models.Account, query string, limit int) ([]models.ArticleWithStatus, error) {
	sqlQuery := `
		SELECT a.articleID, a.feedID, a.uniqueID, a.title, a.contentHTML, a.contentText,
			a.url, a.externalURL, a.summary, a.imageURL, a.bannerImageURL,
			a.datePublished, a.dateModified, a.searchRowID,
			s.read, s.starred, s.dateArrived
		FROM articles a
		JOIN search ON a.searchRowID = search.rowid
		JOIN statuses s ON a.articleID = s.articleID
		WHERE search MATCH ?
		ORDER BY COALESCE(a.datePublished, s.dateArrived) DESC
		LIMIT ?
	`

	articles, err := s.selectArticles(ctx, account, sqlQuery, query, limitOrDefault(limit, DefaultSearchLimit))
	if err != nil {
		return nil, fmt.Errorf("search articles for %s: %w", account.Name, err)
	}
	return articles, nil
}

// GetArticle returns the article and its authors from a single read transaction.
func (s *SQLiteStore) GetArticle(ctx context.Context, account models.Account, articleID string) (*models.ArticleWithStatus, []models.Author, error) {
	db, err := s.db(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("get article for %s: %w", account.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	var article models.ArticleWithStatus
	if err := tx.GetContext(ctx, &article, articleSelect+" WHERE a.articleID = ?", articleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, &ArticleNotFoundError{ArticleID: articleID}
		}
		return nil, nil, fmt.Errorf("get article for %s: %w", account.Name, err)
	}

	var authors []models.Author
	if err := tx.SelectContext(ctx, &authors, authorsByArticle, articleID); err != nil {
		return nil, nil, fmt.Errorf("get authors for %s: %w", account.Name, err)
	}

	return &article, authors, nil
}

// ArticleCounts runs the total, starred, and unread counts concurrently.
func (s *SQLiteStore) ArticleCounts(ctx context.Context, account models.Account) (models.ArticleCounts, error) {
	var counts models.ArticleCounts

	db, err := s.db(ctx, account)
	if err != nil {
		return counts, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.GetContext(gctx, &counts.Total, `SELECT COUNT(*) FROM articles`)
	})
	g.Go(func() error {
		return db.GetContext(gctx, &counts.Starred, `SELECT COUNT(*) FROM statuses WHERE starred = 1`)
	})
	g.Go(func() error {
		return db.GetContext(gctx, &counts.Unread, `SELECT COUNT(*) FROM statuses WHERE read = 0`)
	})

	if err := g.Wait(); err != nil {
		return models.ArticleCounts{}, fmt.Errorf("article counts for %s: %w", account.Name, err)
	}
	return counts, nil
}

func (s *SQLiteStore) selectArticles(ctx context.Context, account models.Account, query string, args ...interface{}) ([]models.ArticleWithStatus, error) {
	db, err := s.db(ctx, account)
	if err != nil {
		return nil, err
	}

	articles := []models.ArticleWithStatus{}
	if err := db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

// Ensure SQLiteStore implements Store interface
var _ Store = (*SQLiteStore)(nil)
