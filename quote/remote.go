package quote

import (
	"sort"
	"strconv"
	"time"
)

// RemoteRecord is a quote as the server presents it. Records always carry an
// ID and the timestamp at which the client observed them.
type RemoteRecord struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	Category        string    `json:"category"`
	ServerTimestamp time.Time `json:"serverTimestamp"`
	Source          Source    `json:"source"`
}

// Quote converts the record to its local representation.
func (r RemoteRecord) Quote() Quote {
	return Quote{
		ID:              r.ID,
		Text:            r.Text,
		Category:        r.Category,
		ServerTimestamp: r.ServerTimestamp,
		Source:          SourceServer,
	}
}

// Matches reports whether the record and the quote share the natural key.
// Matching is exact, no normalization.
func (r RemoteRecord) Matches(q Quote) bool {
	return r.Text == q.Text && r.Category == q.Category
}

// EqualsQuote compares the record's full representation against a local quote.
// A record matches on the natural key but differs here when ID, timestamp or
// source diverge, which is what makes the pair a conflict.
func (r RemoteRecord) EqualsQuote(q Quote) bool {
	return r.Quote().Equal(q)
}

// Snapshot is the client's cached belief of the server's quote set, keyed by
// record ID.
type Snapshot map[string]RemoteRecord

// SortedIDs returns the snapshot's record IDs in a stable order: numeric IDs
// first in numeric order, then the rest lexicographically. Iteration over the
// map itself is randomized, so anything that promises "first match" ordering
// must go through this.
func (s Snapshot) SortedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, errI := strconv.Atoi(ids[i])
		nj, errJ := strconv.Atoi(ids[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}
