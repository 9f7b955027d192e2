package quote

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		wantErr  bool
	}{
		{"valid", "stay hungry", "Motivation", false},
		{"empty text", "", "Motivation", true},
		{"whitespace text", "   ", "Motivation", true},
		{"empty category", "stay hungry", "", true},
		{"whitespace category", "stay hungry", "\t ", true},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.text, tt.category)
			if tt.wantErr && err == nil {
				t.Errorf("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("Expected *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestNewTrimsInput(t *testing.T) {
	q := New("  be yourself  ", " Life ")

	if q.Text != "be yourself" {
		t.Errorf("Expected trimmed text, got %q", q.Text)
	}
	if q.Category != "Life" {
		t.Errorf("Expected trimmed category, got %q", q.Category)
	}
	if q.Source != SourceLocal {
		t.Errorf("Expected source %q, got %q", SourceLocal, q.Source)
	}
	if q.ID != "" {
		t.Errorf("Expected no ID on a fresh local quote, got %q", q.ID)
	}
}

func TestQuoteEqual(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := Quote{ID: "7", Text: "a", Category: "b", ServerTimestamp: ts, Source: SourceServer}

	if !base.Equal(base) {
		t.Error("Expected quote to equal itself")
	}

	differentSource := base
	differentSource.Source = SourceServerResolved
	if base.Equal(differentSource) {
		t.Error("Expected quotes with different sources to be unequal")
	}

	// Same instant in a different location must still compare equal.
	shifted := base
	shifted.ServerTimestamp = ts.In(time.FixedZone("X", 3600))
	if !base.Equal(shifted) {
		t.Error("Expected same instant in different zones to compare equal")
	}
}

func TestRemoteRecordMatchesIsExact(t *testing.T) {
	r := RemoteRecord{ID: "1", Text: "Be yourself", Category: "Life"}

	if !r.Matches(Quote{Text: "Be yourself", Category: "Life"}) {
		t.Error("Expected exact text/category pair to match")
	}
	if r.Matches(Quote{Text: "be yourself", Category: "Life"}) {
		t.Error("Expected case difference to not match")
	}
	if r.Matches(Quote{Text: "Be yourself ", Category: "Life"}) {
		t.Error("Expected trailing space to not match")
	}
	if r.Matches(Quote{Text: "Be yourself", Category: "life"}) {
		t.Error("Expected category case difference to not match")
	}
}

func TestRemoteRecordQuoteConversion(t *testing.T) {
	ts := time.Now().UTC()
	r := RemoteRecord{ID: "42", Text: "t", Category: "c", ServerTimestamp: ts, Source: SourceServer}

	q := r.Quote()
	if q.ID != "42" || q.Text != "t" || q.Category != "c" {
		t.Errorf("Expected fields to carry over, got %+v", q)
	}
	if !q.ServerTimestamp.Equal(ts) {
		t.Errorf("Expected timestamp %v, got %v", ts, q.ServerTimestamp)
	}
	if q.Source != SourceServer {
		t.Errorf("Expected source %q, got %q", SourceServer, q.Source)
	}
	if !r.EqualsQuote(q) {
		t.Error("Expected record to equal its own conversion")
	}
}

func TestSnapshotSortedIDs(t *testing.T) {
	snap := Snapshot{
		"10":  {ID: "10"},
		"2":   {ID: "2"},
		"1":   {ID: "1"},
		"abc": {ID: "abc"},
	}

	ids := snap.SortedIDs()
	want := []string{"1", "2", "10", "abc"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Expected ids[%d] = %q, got %q", i, want[i], ids[i])
		}
	}
}

func TestRemoteDerived(t *testing.T) {
	tests := []struct {
		source Source
		want   bool
	}{
		{SourceLocal, false},
		{SourceServer, true},
		{SourceServerSynced, true},
		{SourceServerResolved, true},
	}
	for _, tt := range tests {
		q := Quote{Text: "x", Category: "y", Source: tt.source}
		if got := q.RemoteDerived(); got != tt.want {
			t.Errorf("Expected RemoteDerived() = %v for source %q, got %v", tt.want, tt.source, got)
		}
	}
}
