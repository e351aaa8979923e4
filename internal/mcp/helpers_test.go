// ABOUTME: Shared fixtures for MCP tests
// ABOUTME: Builds an Accounts directory with a seeded OnMyMac database and an empty iCloud account

package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harper/netnewswire-mcp/internal/accounts"
	"github.com/harper/netnewswire-mcp/internal/models"
	"github.com/harper/netnewswire-mcp/internal/storage"
	"github.com/harper/netnewswire-mcp/internal/storage/storagetest"
)

const testOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="1.1">
  <body>
    <outline text="Tech">
      <outline text="Daring Fireball" xmlUrl="https://daringfireball.net/feeds/main" htmlUrl="https://daringfireball.net/"/>
      <outline text="Kottke" xmlUrl="https://feeds.kottke.org/main"/>
    </outline>
  </body>
</opml>`

// 1700000000 is 2023-11-14 UTC
const (
	tsNewest = 1700000000
	tsMiddle = 1690000000
	tsOldest = 1680000000
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// setupAccounts builds two accounts:
//
//	2_iCloud  empty database, no subscriptions file
//	OnMyMac   three articles (two starred, one unread) and a Subscriptions.opml
func setupAccounts(t *testing.T) (baseDir string, fx *storagetest.Fixture) {
	t.Helper()

	baseDir = t.TempDir()
	storagetest.NewAccount(t, baseDir, "2_iCloud")

	fx = storagetest.NewAccount(t, baseDir, "OnMyMac")
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "OnMyMac", accounts.OPMLFilename), []byte(testOPML), 0600))

	df := storagetest.Article("df-1", "https://daringfireball.net/feeds/main", "Swift concurrency notes", tsNewest)
	df.Starred = true
	df.DatePublished = floatPtr(tsNewest)
	df.URL = strPtr("https://daringfireball.net/2023/11/swift")
	df.Summary = strPtr("Thoughts on actors.")
	df.ContentHTML = strPtr(`<p>Actors are <strong>reference types</strong>.</p>`)
	fx.AddArticle(df)
	fx.AddAuthor("df-1", models.Author{AuthorID: "au-1", Name: strPtr("John Gruber")})

	k := storagetest.Article("k-1", "https://feeds.kottke.org/main", "Pipes | and tables", tsMiddle)
	k.Starred = true
	k.Read = true
	k.ExternalURL = strPtr("https://example.com/linked")
	k.ContentText = strPtr("A link post about pipes.")
	fx.AddArticle(k)

	old := storagetest.Article("k-2", "https://feeds.kottke.org/main", "Old news", tsOldest)
	old.Read = true
	old.DatePublished = floatPtr(tsOldest)
	old.ContentText = strPtr("Nothing about concurrency here.")
	fx.AddArticle(old)

	return baseDir, fx
}

// newTestDispatcher returns a dispatcher over setupAccounts.
func newTestDispatcher(t *testing.T, opts ...Option) *Dispatcher {
	t.Helper()

	baseDir, _ := setupAccounts(t)
	registry, err := accounts.NewRegistry(baseDir)
	require.NoError(t, err)

	store := storage.NewSQLiteStore()
	t.Cleanup(func() { _ = store.Close() })

	return NewDispatcher(registry, store, opts...)
}
