package sync

import (
	"testing"
	"time"

	"gosyncquotes/quote"
)

// Helper to build a remote record fixture
func record(id, text, category string, ts time.Time) quote.RemoteRecord {
	return quote.RemoteRecord{
		ID:              id,
		Text:            text,
		Category:        category,
		ServerTimestamp: ts,
		Source:          quote.SourceServer,
	}
}

// TestMergeSnapshotsEmptyBatch tests that merging an empty batch changes nothing
func TestMergeSnapshotsEmptyBatch(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cached := quote.Snapshot{
		"1": record("1", "First", "Motivation", base),
		"2": record("2", "Second", "Life", base.Add(time.Minute)),
	}

	merged := MergeSnapshots(cached, nil)

	if len(merged) != len(cached) {
		t.Fatalf("Expected %d records, got %d", len(cached), len(merged))
	}
	for id, want := range cached {
		if got := merged[id]; got != want {
			t.Errorf("Record %s changed: got %+v, want %+v", id, got, want)
		}
	}
}

// TestMergeSnapshotsInsertsAbsentIDs tests inserting records with new IDs
func TestMergeSnapshotsInsertsAbsentIDs(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cached := quote.Snapshot{
		"1": record("1", "First", "Motivation", base),
	}
	fresh := []quote.RemoteRecord{
		record("2", "Second", "Life", base),
	}

	merged := MergeSnapshots(cached, fresh)

	if len(merged) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(merged))
	}
	if merged["2"].Text != "Second" {
		t.Errorf("Expected inserted record, got %+v", merged["2"])
	}
}

// TestMergeSnapshotsFreshness tests that only strictly newer records replace
// cached ones
func TestMergeSnapshotsFreshness(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		freshTime time.Time
		wantText  string
	}{
		{"older record is ignored", base.Add(-time.Minute), "Cached"},
		{"equal timestamp keeps cached", base, "Cached"},
		{"newer record replaces cached", base.Add(time.Minute), "Fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cached := quote.Snapshot{
				"1": record("1", "Cached", "Motivation", base),
			}
			fresh := []quote.RemoteRecord{
				record("1", "Fresh", "Motivation", tt.freshTime),
			}

			merged := MergeSnapshots(cached, fresh)

			if len(merged) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(merged))
			}
			if merged["1"].Text != tt.wantText {
				t.Errorf("Expected text %q, got %q", tt.wantText, merged["1"].Text)
			}
		})
	}
}

// TestMergeSnapshotsDoesNotMutateInputs tests that merge is a pure function
func TestMergeSnapshotsDoesNotMutateInputs(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cached := quote.Snapshot{
		"1": record("1", "Cached", "Motivation", base),
	}
	fresh := []quote.RemoteRecord{
		record("1", "Fresh", "Motivation", base.Add(time.Minute)),
		record("2", "Second", "Life", base),
	}

	merged := MergeSnapshots(cached, fresh)

	if cached["1"].Text != "Cached" {
		t.Errorf("Cached snapshot was mutated: %+v", cached["1"])
	}
	if len(cached) != 1 {
		t.Errorf("Expected cached snapshot to keep 1 record, got %d", len(cached))
	}
	if fresh[0].Text != "Fresh" || fresh[1].Text != "Second" {
		t.Error("Fresh batch was mutated")
	}
	if merged["1"].Text != "Fresh" {
		t.Errorf("Expected merged to hold the fresh record, got %+v", merged["1"])
	}
}
