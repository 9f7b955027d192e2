package store

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"gosyncquotes/internal/utils"
	"gosyncquotes/quote"
)

// The Load/Save helpers implement the degraded-storage policy: reads fall
// back to a sane default on any failure, writes report success as a bool.
// Failures are logged here so callers can stay on the happy path.

// LoadQuotes returns the persisted quote list, or nil when the store has
// none or the payload cannot be decoded.
func LoadQuotes(s Store) []quote.Quote {
	data, ok := loadRaw(s, KeyQuotes)
	if !ok {
		return nil
	}
	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		utils.Warnf("Discarding corrupt payload for key %q: %v", KeyQuotes, err)
		return nil
	}
	return quotes
}

// SaveQuotes persists the full quote list, reporting success.
func SaveQuotes(s Store, quotes []quote.Quote) bool {
	return saveJSON(s, KeyQuotes, quotes)
}

// LoadSnapshot returns the cached remote snapshot. A missing or unreadable
// snapshot is an empty one.
func LoadSnapshot(s Store) quote.Snapshot {
	data, ok := loadRaw(s, KeySnapshot)
	if !ok {
		return quote.Snapshot{}
	}
	var snap quote.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		utils.Warnf("Discarding corrupt payload for key %q: %v", KeySnapshot, err)
		return quote.Snapshot{}
	}
	if snap == nil {
		snap = quote.Snapshot{}
	}
	return snap
}

// SaveSnapshot persists the remote snapshot, reporting success.
func SaveSnapshot(s Store, snap quote.Snapshot) bool {
	return saveJSON(s, KeySnapshot, snap)
}

// LoadLastViewed returns the most recently displayed quote, or nil.
func LoadLastViewed(s Store) *quote.Quote {
	data, ok := loadRaw(s, KeyLastViewed)
	if !ok {
		return nil
	}
	var q quote.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		utils.Warnf("Discarding corrupt payload for key %q: %v", KeyLastViewed, err)
		return nil
	}
	return &q
}

// SaveLastViewed persists the most recently displayed quote, reporting success.
func SaveLastViewed(s Store, q quote.Quote) bool {
	return saveJSON(s, KeyLastViewed, q)
}

// DefaultFilter is the filter value meaning "show every category".
const DefaultFilter = "all"

// LoadFilter returns the persisted category filter, defaulting to DefaultFilter.
func LoadFilter(s Store) string {
	data, ok := loadRaw(s, KeyLastFilter)
	if !ok {
		return DefaultFilter
	}
	filter := strings.TrimSpace(string(data))
	if filter == "" {
		return DefaultFilter
	}
	return filter
}

// SaveFilter persists the category filter, reporting success.
func SaveFilter(s Store, category string) bool {
	if err := s.Put(KeyLastFilter, []byte(category)); err != nil {
		utils.Errorf("Failed to persist key %q: %v", KeyLastFilter, err)
		return false
	}
	return true
}

// LoadLastSync returns the recorded time of the last successful sync, or the
// zero time when none has happened yet.
func LoadLastSync(s Store) time.Time {
	data, ok := loadRaw(s, KeyLastSyncTime)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(string(data)))
	if err != nil {
		utils.Warnf("Discarding corrupt payload for key %q: %v", KeyLastSyncTime, err)
		return time.Time{}
	}
	return t
}

// SaveLastSync persists the last successful sync time, reporting success.
func SaveLastSync(s Store, t time.Time) bool {
	if err := s.Put(KeyLastSyncTime, []byte(t.UTC().Format(time.RFC3339Nano))); err != nil {
		utils.Errorf("Failed to persist key %q: %v", KeyLastSyncTime, err)
		return false
	}
	return true
}

// LoadSyncInterval returns the persisted auto-sync interval, or zero when the
// preference has never been stored. Callers apply their own default and
// minimum on top.
func LoadSyncInterval(s Store) time.Duration {
	data, ok := loadRaw(s, KeySyncInterval)
	if !ok {
		return 0
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || ms < 0 {
		utils.Warnf("Discarding corrupt payload for key %q: %q", KeySyncInterval, string(data))
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// SaveSyncInterval persists the auto-sync interval as whole milliseconds,
// reporting success.
func SaveSyncInterval(s Store, d time.Duration) bool {
	ms := strconv.FormatInt(d.Milliseconds(), 10)
	if err := s.Put(KeySyncInterval, []byte(ms)); err != nil {
		utils.Errorf("Failed to persist key %q: %v", KeySyncInterval, err)
		return false
	}
	return true
}

// loadRaw reads a key and reports whether a usable value came back. Missing
// keys are silent; actual storage failures are logged.
func loadRaw(s Store, key string) ([]byte, bool) {
	data, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			utils.Warnf("Failed to read key %q: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func saveJSON(s Store, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		utils.Errorf("Failed to encode value for key %q: %v", key, err)
		return false
	}
	if err := s.Put(key, data); err != nil {
		utils.Errorf("Failed to persist key %q: %v", key, err)
		return false
	}
	return true
}
