package sync

import (
	"fmt"
	"time"

	"gosyncquotes/quote"
	"gosyncquotes/remote"
	"gosyncquotes/store"
)

// QuoteSet is the slice of application state the sync pipeline works
// against. SetQuotes reports whether the new set reached durable storage;
// the pipeline carries on in memory either way.
type QuoteSet interface {
	Quotes() []quote.Quote
	SetQuotes(quotes []quote.Quote) bool
	Counts() (total, local, remoteDerived int)
}

// SyncManager runs one full synchronization cycle: fetch, merge, conflict
// detection, resolution or fold, persistence. It owns no scheduling; the
// Coordinator decides when a cycle runs.
type SyncManager struct {
	quotes      QuoteSet
	store       store.Store
	gateway     remote.Gateway
	conflictLog *ConflictLog
}

// NewSyncManager creates a sync manager. A nil conflict log gets a fresh one
// with the default retention.
func NewSyncManager(quotes QuoteSet, st store.Store, gateway remote.Gateway, conflictLog *ConflictLog) *SyncManager {
	if conflictLog == nil {
		conflictLog = NewConflictLog(DefaultLogCapacity)
	}
	return &SyncManager{
		quotes:      quotes,
		store:       st,
		gateway:     gateway,
		conflictLog: conflictLog,
	}
}

// SyncResult contains statistics about one sync cycle.
type SyncResult struct {
	Fetched           int
	ConflictsFound    int
	ConflictsResolved int
	NetNew            int
	Duration          time.Duration
}

// SyncOnce performs a single cycle in strict order: fetch the remote batch,
// merge it with the cached snapshot, persist the snapshot, detect conflicts,
// then either resolve them or fold net-new records into the quote set, and
// finally record the sync time. A cycle that fails to fetch changes nothing,
// and the last-sync time is only recorded once the whole cycle succeeded.
func (sm *SyncManager) SyncOnce() (*SyncResult, error) {
	start := time.Now()
	result := &SyncResult{}

	fresh, err := sm.gateway.FetchRemoteBatch()
	if err != nil {
		return nil, fmt.Errorf("fetch phase failed: %w", err)
	}
	result.Fetched = len(fresh)

	cached := store.LoadSnapshot(sm.store)
	merged := MergeSnapshots(cached, fresh)
	store.SaveSnapshot(sm.store, merged)

	conflicts := DetectConflicts(sm.quotes.Quotes(), merged)
	result.ConflictsFound = len(conflicts)

	if len(conflicts) > 0 {
		// Log first, then mutate: every resolution is on record before the
		// quote set changes. One write-through covers the whole batch.
		for _, c := range conflicts {
			sm.conflictLog.Append(c)
		}
		sm.quotes.SetQuotes(ResolveConflicts(conflicts, sm.quotes.Quotes()))
		result.ConflictsResolved = len(conflicts)
	} else {
		folded, added := FoldNetNew(sm.quotes.Quotes(), merged)
		if added > 0 {
			sm.quotes.SetQuotes(folded)
		}
		result.NetNew = added
	}

	store.SaveLastSync(sm.store, time.Now().UTC())

	result.Duration = time.Since(start)
	return result, nil
}

// QuoteSet returns the quote set the manager syncs against.
func (sm *SyncManager) QuoteSet() QuoteSet {
	return sm.quotes
}

// ConflictLog returns the audit log resolutions are appended to.
func (sm *SyncManager) ConflictLog() *ConflictLog {
	return sm.conflictLog
}

// Gateway returns the remote gateway used for fetches and posts.
func (sm *SyncManager) Gateway() remote.Gateway {
	return sm.gateway
}
