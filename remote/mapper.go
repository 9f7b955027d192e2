package remote

import (
	"strconv"
	"strings"
	"time"

	"gosyncquotes/quote"
)

// DefaultCategory is assigned to remote records that arrive without one.
const DefaultCategory = "Server"

// remotePost mirrors the upstream wire format. The server speaks a generic
// posts resource: title carries the quote text, body the category.
type remotePost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// createPostRequest is the outward shape for pushing a quote.
type createPostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// mapPost converts one upstream post into a remote record, reporting whether
// the post is usable. Posts with a blank title are dropped; a blank body
// gets the default category. observedAt becomes the record's server
// timestamp: the upstream API carries no timestamps of its own, so the
// moment of observation is the freshest ordering signal available.
func mapPost(p remotePost, observedAt time.Time) (quote.RemoteRecord, bool) {
	text := strings.TrimSpace(p.Title)
	if text == "" {
		return quote.RemoteRecord{}, false
	}

	category := strings.TrimSpace(p.Body)
	if category == "" {
		category = DefaultCategory
	}

	return quote.RemoteRecord{
		ID:              strconv.Itoa(p.ID),
		Text:            text,
		Category:        category,
		ServerTimestamp: observedAt,
		Source:          quote.SourceServer,
	}, true
}

// toCreatePostRequest maps a local quote into the outward wire shape,
// inverse of mapPost.
func toCreatePostRequest(q quote.Quote) createPostRequest {
	return createPostRequest{
		Title:  q.Text,
		Body:   q.Category,
		UserID: 1,
	}
}
