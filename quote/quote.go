package quote

import (
	"fmt"
	"strings"
	"time"
)

// Source identifies where a quote came from and how it has been touched by sync
type Source string

const (
	// SourceLocal marks a quote created on this device
	SourceLocal Source = "local"
	// SourceServer marks a record as fetched from the remote API
	SourceServer Source = "server"
	// SourceServerSynced marks a net-new remote record folded into the local set
	SourceServerSynced Source = "server_synced"
	// SourceServerResolved marks a local quote that was replaced by its remote
	// counterpart during conflict resolution
	SourceServerResolved Source = "server_resolved"
)

// Quote is a single text/category pair with provenance metadata.
// ID and ServerTimestamp are only set on quotes that have touched the server.
type Quote struct {
	ID              string    `json:"id,omitempty"`
	Text            string    `json:"text"`
	Category        string    `json:"category"`
	ServerTimestamp time.Time `json:"serverTimestamp,omitzero"`
	Source          Source    `json:"source"`
}

// New builds a local quote from raw user input, trimming whitespace.
// The caller is expected to have validated the input first.
func New(text, category string) Quote {
	return Quote{
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
		Source:   SourceLocal,
	}
}

// Key returns the natural key used to match quotes across devices.
// Two quotes with equal text and category are considered the same quote.
func (q Quote) Key() string {
	return q.Text + "\x00" + q.Category
}

// RemoteDerived reports whether the quote originated from the server in any form.
func (q Quote) RemoteDerived() bool {
	return q.Source == SourceServer || q.Source == SourceServerSynced || q.Source == SourceServerResolved
}

// Equal compares the full representation of two quotes, not just the natural
// key. Timestamps are compared with time.Equal so wall-clock representation
// differences do not matter.
func (q Quote) Equal(other Quote) bool {
	return q.ID == other.ID &&
		q.Text == other.Text &&
		q.Category == other.Category &&
		q.ServerTimestamp.Equal(other.ServerTimestamp) &&
		q.Source == other.Source
}

// ValidationError describes input that cannot become a quote
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quote: %s %s", e.Field, e.Reason)
}

// Validate checks the invariant every quote in the set must hold:
// text and category are non-empty after trimming.
func Validate(text, category string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if strings.TrimSpace(category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}
