package store

import (
	"errors"
	"testing"
	"time"

	"gosyncquotes/quote"
)

func TestQuotesRoundTrip(t *testing.T) {
	s := NewMemStore()

	quotes := []quote.Quote{
		{Text: "one", Category: "A", Source: quote.SourceLocal},
		{ID: "3", Text: "two", Category: "B", ServerTimestamp: time.Now().UTC(), Source: quote.SourceServerSynced},
	}

	if !SaveQuotes(s, quotes) {
		t.Fatal("Expected SaveQuotes to succeed")
	}

	loaded := LoadQuotes(s)
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 quotes, got %d", len(loaded))
	}
	if !loaded[0].Equal(quotes[0]) || !loaded[1].Equal(quotes[1]) {
		t.Errorf("Loaded quotes differ from saved: %+v", loaded)
	}
}

func TestLoadQuotesMissingKey(t *testing.T) {
	s := NewMemStore()

	if quotes := LoadQuotes(s); quotes != nil {
		t.Errorf("Expected nil for missing key, got %+v", quotes)
	}
}

func TestLoadQuotesCorruptPayload(t *testing.T) {
	s := NewMemStore()
	s.Seed(KeyQuotes, []byte("{not json"))

	if quotes := LoadQuotes(s); quotes != nil {
		t.Errorf("Expected nil for corrupt payload, got %+v", quotes)
	}
}

func TestSaveQuotesReportsFailure(t *testing.T) {
	s := NewMemStore()
	s.PutErr = errors.New("disk full")

	if SaveQuotes(s, []quote.Quote{{Text: "x", Category: "y"}}) {
		t.Error("Expected SaveQuotes to report failure when Put fails")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewMemStore()
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	snap := quote.Snapshot{
		"1": {ID: "1", Text: "a", Category: "Server", ServerTimestamp: ts, Source: quote.SourceServer},
	}

	if !SaveSnapshot(s, snap) {
		t.Fatal("Expected SaveSnapshot to succeed")
	}

	loaded := LoadSnapshot(s)
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(loaded))
	}
	r := loaded["1"]
	if r.Text != "a" || !r.ServerTimestamp.Equal(ts) {
		t.Errorf("Loaded record differs: %+v", r)
	}
}

func TestLoadSnapshotDefaultsToEmpty(t *testing.T) {
	s := NewMemStore()

	snap := LoadSnapshot(s)
	if snap == nil {
		t.Fatal("Expected non-nil empty snapshot")
	}
	if len(snap) != 0 {
		t.Errorf("Expected empty snapshot, got %d records", len(snap))
	}

	s.Seed(KeySnapshot, []byte("[1,2,3]"))
	snap = LoadSnapshot(s)
	if snap == nil || len(snap) != 0 {
		t.Errorf("Expected empty snapshot for corrupt payload, got %+v", snap)
	}
}

func TestLastViewedRoundTrip(t *testing.T) {
	s := NewMemStore()

	if q := LoadLastViewed(s); q != nil {
		t.Errorf("Expected nil last-viewed on fresh store, got %+v", q)
	}

	saved := quote.Quote{Text: "seen", Category: "Life", Source: quote.SourceLocal}
	if !SaveLastViewed(s, saved) {
		t.Fatal("Expected SaveLastViewed to succeed")
	}

	loaded := LoadLastViewed(s)
	if loaded == nil {
		t.Fatal("Expected last-viewed quote, got nil")
	}
	if !loaded.Equal(saved) {
		t.Errorf("Loaded last-viewed differs: %+v", loaded)
	}
}

func TestFilterRoundTripAndDefault(t *testing.T) {
	s := NewMemStore()

	if f := LoadFilter(s); f != DefaultFilter {
		t.Errorf("Expected default filter %q, got %q", DefaultFilter, f)
	}

	if !SaveFilter(s, "Motivation") {
		t.Fatal("Expected SaveFilter to succeed")
	}
	if f := LoadFilter(s); f != "Motivation" {
		t.Errorf("Expected filter %q, got %q", "Motivation", f)
	}

	// The filter is stored as a plain string, not JSON.
	raw, ok := s.Raw(KeyLastFilter)
	if !ok || string(raw) != "Motivation" {
		t.Errorf("Expected raw filter value, got %q", string(raw))
	}

	// An empty stored value falls back to the default.
	s.Seed(KeyLastFilter, []byte("  "))
	if f := LoadFilter(s); f != DefaultFilter {
		t.Errorf("Expected default filter for blank value, got %q", f)
	}
}

func TestLastSyncRoundTrip(t *testing.T) {
	s := NewMemStore()

	if got := LoadLastSync(s); !got.IsZero() {
		t.Errorf("Expected zero time on fresh store, got %v", got)
	}

	at := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	if !SaveLastSync(s, at) {
		t.Fatal("Expected SaveLastSync to succeed")
	}
	if got := LoadLastSync(s); !got.Equal(at) {
		t.Errorf("Expected %v, got %v", at, got)
	}

	s.Seed(KeyLastSyncTime, []byte("yesterday"))
	if got := LoadLastSync(s); !got.IsZero() {
		t.Errorf("Expected zero time for corrupt value, got %v", got)
	}
}

func TestSyncIntervalRoundTrip(t *testing.T) {
	s := NewMemStore()

	if got := LoadSyncInterval(s); got != 0 {
		t.Errorf("Expected zero interval on fresh store, got %v", got)
	}

	if !SaveSyncInterval(s, 45*time.Second) {
		t.Fatal("Expected SaveSyncInterval to succeed")
	}
	if got := LoadSyncInterval(s); got != 45*time.Second {
		t.Errorf("Expected 45s, got %v", got)
	}

	// The interval is stored as whole milliseconds.
	raw, ok := s.Raw(KeySyncInterval)
	if !ok || string(raw) != "45000" {
		t.Errorf("Expected raw value \"45000\", got %q", string(raw))
	}

	s.Seed(KeySyncInterval, []byte("-50"))
	if got := LoadSyncInterval(s); got != 0 {
		t.Errorf("Expected zero interval for negative value, got %v", got)
	}
	s.Seed(KeySyncInterval, []byte("fast"))
	if got := LoadSyncInterval(s); got != 0 {
		t.Errorf("Expected zero interval for corrupt value, got %v", got)
	}
}

func TestLoadRawDistinguishesMissingFromFailure(t *testing.T) {
	s := NewMemStore()
	s.GetErr = errors.New("io error")

	// A failing store degrades to defaults rather than erroring out.
	if quotes := LoadQuotes(s); quotes != nil {
		t.Errorf("Expected nil quotes from failing store, got %+v", quotes)
	}
	if f := LoadFilter(s); f != DefaultFilter {
		t.Errorf("Expected default filter from failing store, got %q", f)
	}
}

func TestRegistry(t *testing.T) {
	Register("fake", func(path string) (Store, error) {
		return NewMemStore(), nil
	})

	s, err := Open("fake", "/unused")
	if err != nil {
		t.Fatalf("Expected Open to succeed, got %v", err)
	}
	if _, ok := s.(*MemStore); !ok {
		t.Errorf("Expected *MemStore, got %T", s)
	}

	if _, err := Open("no-such-type", "/unused"); err == nil {
		t.Error("Expected error for unregistered store type")
	}

	found := false
	for _, typ := range Types() {
		if typ == "fake" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected Types() to include \"fake\", got %v", Types())
	}
}
