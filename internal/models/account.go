// ABOUTME: Account and feed models for NetNewsWire accounts discovered on disk
// ABOUTME: FeedInfo comes from Subscriptions.opml rather than the database

package models

// Account is one NetNewsWire account directory with its database.
type Account struct {
	Name     string  // Directory name, e.g. "OnMyMac"
	Path     string  // Account directory
	DBPath   string  // Path to DB.sqlite3
	OPMLPath *string // Path to Subscriptions.opml, nil when absent
}

// HasOPML reports whether the account has a subscriptions file.
func (a Account) HasOPML() bool {
	return a.OPMLPath != nil
}

// FeedInfo is a subscribed feed parsed from an OPML outline.
type FeedInfo struct {
	Title   string
	XMLURL  string
	HTMLURL *string
	Folder  *string // nil when the feed is outside any folder
}
