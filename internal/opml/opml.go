// ABOUTME: Streaming OPML reader for NetNewsWire Subscriptions.opml files
// ABOUTME: Flattens outlines into an ordered feed list with folder context

package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/harper/netnewswire-mcp/internal/models"
)

// walkState is the accumulator threaded through the outline traversal.
type walkState struct {
	feeds  []models.FeedInfo
	folder *string
}

// Parse reads an OPML document and returns its feeds in document order.
//
// Folder tracking is flat: an outline without xmlUrl opens a folder context
// that stays active until the next folder outline, even after its element
// closes. NetNewsWire writes one level of folders, so a feed listed after a
// folder at the top level is attributed to that folder.
//
// Parse never fails. Malformed input yields the feeds read before the error.
func Parse(r io.Reader) []models.FeedInfo {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	st := walkState{feeds: []models.FeedInfo{}}
	for {
		tok, err := decoder.Token()
		if err != nil {
			return st.feeds
		}
		if el, ok := tok.(xml.StartElement); ok && el.Name.Local == "outline" {
			st = visitOutline(st, el)
		}
	}
}

// ParseFile reads feeds from an OPML file on disk
func ParseFile(path string) ([]models.FeedInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OPML file: %w", err)
	}
	defer file.Close()

	return Parse(file), nil
}

func visitOutline(st walkState, el xml.StartElement) walkState {
	if xmlURL, ok := attr(el, "xmlUrl"); ok {
		st.feeds = append(st.feeds, models.FeedInfo{
			Title:   outlineTitle(el, xmlURL),
			XMLURL:  xmlURL,
			HTMLURL: optionalAttr(el, "htmlUrl"),
			Folder:  st.folder,
		})
		return st
	}

	if name, ok := firstAttr(el, "title", "text"); ok {
		st.folder = &name
	}
	return st
}

// outlineTitle picks title, then text, then the feed URL.
func outlineTitle(el xml.StartElement, fallback string) string {
	if title, ok := firstAttr(el, "title", "text"); ok {
		return title
	}
	return fallback
}

func firstAttr(el xml.StartElement, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := attr(el, name); ok {
			return v, true
		}
	}
	return "", false
}

func optionalAttr(el xml.StartElement, name string) *string {
	if v, ok := attr(el, name); ok {
		return &v
	}
	return nil
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
