// ABOUTME: Error types for account discovery and resolution
// ABOUTME: Messages are shown verbatim to MCP clients in error results

package accounts

import (
	"fmt"
	"strings"
)

// DirectoryNotFoundError means the accounts base directory does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("NetNewsWire accounts directory not found at: %s", e.Path)
}

// NoAccountsError means no account directory contains a database.
type NoAccountsError struct {
	Path string
}

func (e *NoAccountsError) Error() string {
	return fmt.Sprintf("No accounts with databases found in: %s", e.Path)
}

// NotFoundError means a requested account name matched nothing.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Account '%s' not found. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

// NoOPMLError means the account has no Subscriptions.opml.
type NoOPMLError struct {
	Account string
}

func (e *NoOPMLError) Error() string {
	return fmt.Sprintf("No %s found for account: %s", OPMLFilename, e.Account)
}
