package sync

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"gosyncquotes/quote"
)

// ResolutionPolicy names the fixed conflict policy recorded on every log
// entry. There is exactly one policy and it is not configurable.
const ResolutionPolicy = "remote_wins"

// DefaultLogCapacity bounds how many resolved conflicts the log retains.
const DefaultLogCapacity = 100

// Record is one audit entry: a conflict together with how and when it was
// resolved. IDs are ULIDs so records sort by resolution time.
type Record struct {
	ID         string         `json:"id"`
	Conflict   quote.Conflict `json:"conflict"`
	Policy     string         `json:"policy"`
	ResolvedAt time.Time      `json:"resolvedAt"`
}

// ConflictLog is a bounded, in-memory audit trail of resolved conflicts.
// When the log is full the oldest record is evicted. Safe for concurrent use.
type ConflictLog struct {
	mu      sync.Mutex
	records []Record
	limit   int
	total   int
	entropy *rand.Rand
	now     func() time.Time
}

// NewConflictLog creates a log retaining at most limit records. A limit of
// zero or less falls back to DefaultLogCapacity.
func NewConflictLog(limit int) *ConflictLog {
	if limit <= 0 {
		limit = DefaultLogCapacity
	}
	return &ConflictLog{
		records: make([]Record, 0, limit),
		limit:   limit,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// Append records a resolved conflict and returns the entry. Once the
// retention limit is reached the oldest entry is dropped; Total keeps
// counting past evictions.
func (l *ConflictLog) Append(c quote.Conflict) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	rec := Record{
		ID:         ulid.MustNew(ulid.Timestamp(now), l.entropy).String(),
		Conflict:   c,
		Policy:     ResolutionPolicy,
		ResolvedAt: now,
	}

	if len(l.records) == l.limit {
		copy(l.records, l.records[1:])
		l.records[len(l.records)-1] = rec
	} else {
		l.records = append(l.records, rec)
	}
	l.total++
	return rec
}

// Recent returns up to n retained records, newest first. n <= 0 returns
// everything retained.
func (l *ConflictLog) Recent(n int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = l.records[len(l.records)-1-i]
	}
	return out
}

// Len returns how many records are currently retained.
func (l *ConflictLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Total returns how many conflicts were ever appended. It diverges from Len
// once eviction starts.
func (l *ConflictLog) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Clear discards all retained records and resets the lifetime counter.
func (l *ConflictLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = l.records[:0]
	l.total = 0
}
