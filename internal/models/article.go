// ABOUTME: Article, status, and author models read from a NetNewsWire account database
// ABOUTME: Optional columns are pointers so NULL stays distinct from empty values

package models

// Article is a single ingested item belonging to a feed.
type Article struct {
	ArticleID      string   `db:"articleID"`
	FeedID         string   `db:"feedID"`
	UniqueID       string   `db:"uniqueID"`
	Title          *string  `db:"title"`
	ContentHTML    *string  `db:"contentHTML"`
	ContentText    *string  `db:"contentText"`
	URL            *string  `db:"url"`
	ExternalURL    *string  `db:"externalURL"`
	Summary        *string  `db:"summary"`
	ImageURL       *string  `db:"imageURL"`
	BannerImageURL *string  `db:"bannerImageURL"`
	DatePublished  *float64 `db:"datePublished"` // Unix seconds
	DateModified   *float64 `db:"dateModified"`  // Unix seconds
	SearchRowID    *int64   `db:"searchRowID"`
}

// ArticleStatus is the read/starred/arrival state attached to an article.
type ArticleStatus struct {
	ArticleID   string  `db:"articleID"`
	Read        bool    `db:"read"`
	Starred     bool    `db:"starred"`
	DateArrived float64 `db:"dateArrived"` // Unix seconds
}

// ArticleWithStatus is the articles/statuses join returned by every article query.
type ArticleWithStatus struct {
	Article
	Read        bool    `db:"read"`
	Starred     bool    `db:"starred"`
	DateArrived float64 `db:"dateArrived"`
}

// Status returns the status half of the join.
func (a *ArticleWithStatus) Status() ArticleStatus {
	return ArticleStatus{
		ArticleID:   a.ArticleID,
		Read:        a.Read,
		Starred:     a.Starred,
		DateArrived: a.DateArrived,
	}
}

// DisplayDate prefers the published date and falls back to the arrival date.
func (a *ArticleWithStatus) DisplayDate() *float64 {
	if a.DatePublished != nil {
		return a.DatePublished
	}
	arrived := a.DateArrived
	return &arrived
}

// PrimaryURL prefers the article URL and falls back to the external URL.
// Returns nil when neither is set.
func (a *ArticleWithStatus) PrimaryURL() *string {
	if a.URL != nil {
		return a.URL
	}
	return a.ExternalURL
}

// Author is a person credited on one or more articles.
type Author struct {
	AuthorID     string  `db:"authorID"`
	Name         *string `db:"name"`
	URL          *string `db:"url"`
	AvatarURL    *string `db:"avatarURL"`
	EmailAddress *string `db:"emailAddress"`
}

// ArticleCounts holds the whole-account totals reported by get_article_count.
type ArticleCounts struct {
	Total   int
	Starred int
	Unread  int
}
