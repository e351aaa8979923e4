// ABOUTME: Test fixtures that build NetNewsWire-shaped SQLite databases
// ABOUTME: Used by storage, mcp, and command tests to seed articles, statuses, and authors

package storagetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/harper/netnewswire-mcp/internal/models"
)

// Schema mirrors the NetNewsWire articles database. The search index uses
// FTS5 here; NetNewsWire itself ships FTS4, which accepts the same MATCH queries.
const Schema = `
	CREATE TABLE IF NOT EXISTS articles (
		articleID TEXT NOT NULL PRIMARY KEY,
		feedID TEXT NOT NULL,
		uniqueID TEXT NOT NULL,
		title TEXT,
		contentHTML TEXT,
		contentText TEXT,
		url TEXT,
		externalURL TEXT,
		summary TEXT,
		imageURL TEXT,
		bannerImageURL TEXT,
		datePublished DATE,
		dateModified DATE,
		searchRowID INTEGER
	);

	CREATE TABLE IF NOT EXISTS statuses (
		articleID TEXT NOT NULL PRIMARY KEY,
		read BOOL NOT NULL DEFAULT 0,
		starred BOOL NOT NULL DEFAULT 0,
		dateArrived DATE NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS authors (
		authorID TEXT NOT NULL PRIMARY KEY,
		name TEXT,
		url TEXT,
		avatarURL TEXT,
		emailAddress TEXT
	);

	CREATE TABLE IF NOT EXISTS authorsLookup (
		authorID TEXT NOT NULL,
		articleID TEXT NOT NULL,
		PRIMARY KEY(authorID, articleID)
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS search USING fts5(title, body);
`

// Fixture is a writable database seeded by tests.
type Fixture struct {
	t    testing.TB
	Path string
	db   *sqlx.DB
}

// NewFixture creates the schema at path. The connection closes on test cleanup.
func NewFixture(t testing.TB, path string) *Fixture {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open fixture db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("failed to create fixture schema: %v", err)
	}

	return &Fixture{t: t, Path: path, db: db}
}

// NewAccount creates <baseDir>/<name>/DB.sqlite3 and returns its fixture.
func NewAccount(t testing.TB, baseDir, name string) *Fixture {
	t.Helper()
	return NewFixture(t, filepath.Join(baseDir, name, "DB.sqlite3"))
}

// AddArticle inserts the article, its status, and a search row built from
// the title and text (or HTML) content.
func (f *Fixture) AddArticle(a models.ArticleWithStatus) {
	f.t.Helper()

	body := ""
	switch {
	case a.ContentText != nil:
		body = *a.ContentText
	case a.ContentHTML != nil:
		body = *a.ContentHTML
	}
	title := ""
	if a.Title != nil {
		title = *a.Title
	}

	res, err := f.db.Exec(`INSERT INTO search (title, body) VALUES (?, ?)`, title, body)
	if err != nil {
		f.t.Fatalf("failed to insert search row: %v", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		f.t.Fatalf("failed to read search rowid: %v", err)
	}

	_, err = f.db.Exec(`
		INSERT INTO articles (articleID, feedID, uniqueID, title, contentHTML, contentText,
			url, externalURL, summary, imageURL, bannerImageURL,
			datePublished, dateModified, searchRowID)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ArticleID, a.FeedID, a.UniqueID, a.Title, a.ContentHTML, a.ContentText,
		a.URL, a.ExternalURL, a.Summary, a.ImageURL, a.BannerImageURL,
		a.DatePublished, a.DateModified, rowID,
	)
	if err != nil {
		f.t.Fatalf("failed to insert article %s: %v", a.ArticleID, err)
	}

	_, err = f.db.Exec(`INSERT INTO statuses (articleID, read, starred, dateArrived) VALUES (?, ?, ?, ?)`,
		a.ArticleID, a.Read, a.Starred, a.DateArrived)
	if err != nil {
		f.t.Fatalf("failed to insert status %s: %v", a.ArticleID, err)
	}
}

// AddAuthor inserts the author (if new) and links it to the article.
func (f *Fixture) AddAuthor(articleID string, author models.Author) {
	f.t.Helper()

	_, err := f.db.Exec(`
		INSERT OR IGNORE INTO authors (authorID, name, url, avatarURL, emailAddress)
		VALUES (?, ?, ?, ?, ?)`,
		author.AuthorID, author.Name, author.URL, author.AvatarURL, author.EmailAddress,
	)
	if err != nil {
		f.t.Fatalf("failed to insert author %s: %v", author.AuthorID, err)
	}

	if _, err := f.db.Exec(`INSERT INTO authorsLookup (authorID, articleID) VALUES (?, ?)`, author.AuthorID, articleID); err != nil {
		f.t.Fatalf("failed to link author %s: %v", author.AuthorID, err)
	}
}

// Article returns a minimal unread, unstarred article for tests to adjust.
func Article(id, feedID, title string, arrived float64) models.ArticleWithStatus {
	return models.ArticleWithStatus{
		Article: models.Article{
			ArticleID: id,
			FeedID:    feedID,
			UniqueID:  id,
			Title:     &title,
		},
		DateArrived: arrived,
	}
}
