// ABOUTME: NetNewsWire account discovery and name resolution
// ABOUTME: Scans the Accounts directory once and serves an immutable account list

package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harper/netnewswire-mcp/internal/models"
	"github.com/harper/netnewswire-mcp/internal/opml"
)

// Fixed file names inside each account directory
const (
	DBFilename   = "DB.sqlite3"
	OPMLFilename = "Subscriptions.opml"
)

// DefaultBaseDir returns the sandboxed NetNewsWire Accounts directory for the current user.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return filepath.Join(home, "Library", "Containers", "com.ranchero.NetNewsWire-Evergreen",
		"Data", "Library", "Application Support", "NetNewsWire", "Accounts")
}

// Discover lists the accounts under baseDir, sorted by name.
// An entry counts as an account only if it contains DB.sqlite3.
func Discover(baseDir string) ([]models.Account, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DirectoryNotFoundError{Path: baseDir}
		}
		return nil, fmt.Errorf("read accounts directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var discovered []models.Account
	for _, name := range names {
		accountPath := filepath.Join(baseDir, name)
		dbPath := filepath.Join(accountPath, DBFilename)
		if !fileExists(dbPath) {
			continue
		}

		account := models.Account{
			Name:   name,
			Path:   accountPath,
			DBPath: dbPath,
		}
		opmlPath := filepath.Join(accountPath, OPMLFilename)
		if fileExists(opmlPath) {
			account.OPMLPath = &opmlPath
		}
		discovered = append(discovered, account)
	}

	if len(discovered) == 0 {
		return nil, &NoAccountsError{Path: baseDir}
	}
	return discovered, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Registry holds the accounts discovered at startup. It is never mutated
// after construction, so it is safe for concurrent use.
type Registry struct {
	baseDir  string
	accounts []models.Account
}

// NewRegistry discovers the accounts under baseDir.
func NewRegistry(baseDir string) (*Registry, error) {
	discovered, err := Discover(baseDir)
	if err != nil {
		return nil, err
	}
	return &Registry{baseDir: baseDir, accounts: discovered}, nil
}

// NewRegistryFromAccounts builds a registry from an already-known list.
func NewRegistryFromAccounts(baseDir string, list []models.Account) *Registry {
	return &Registry{baseDir: baseDir, accounts: append([]models.Account(nil), list...)}
}

// BaseDir returns the directory the accounts were discovered in.
func (r *Registry) BaseDir() string {
	return r.baseDir
}

// List returns a copy of the discovered accounts in sorted order.
func (r *Registry) List() []models.Account {
	return append([]models.Account(nil), r.accounts...)
}

// Names returns the account names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.accounts))
	for i, a := range r.accounts {
		names[i] = a.Name
	}
	return names
}

// Resolve finds an account by case-insensitive name, or returns the
// first account when name is empty.
func (r *Registry) Resolve(name string) (models.Account, error) {
	if name == "" {
		if len(r.accounts) == 0 {
			return models.Account{}, &NoAccountsError{Path: r.baseDir}
		}
		return r.accounts[0], nil
	}

	for _, a := range r.accounts {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return models.Account{}, &NotFoundError{Name: name, Available: r.Names()}
}

// ListFeeds parses the account's Subscriptions.opml.
func (r *Registry) ListFeeds(account models.Account) ([]models.FeedInfo, error) {
	if account.OPMLPath == nil {
		return nil, &NoOPMLError{Account: account.Name}
	}
	feeds, err := opml.ParseFile(*account.OPMLPath)
	if err != nil {
		return nil, fmt.Errorf("list feeds for %s: %w", account.Name, err)
	}
	return feeds, nil
}
