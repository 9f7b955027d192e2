package sync

import "gosyncquotes/quote"

// MergeSnapshots reconciles the cached remote snapshot with a freshly fetched
// batch. Records are deduplicated by ID; a fresh record replaces a cached one
// only when its timestamp is strictly later, so a tie keeps the cached entry.
// Neither input is mutated. The result is the client's updated belief of what
// the server currently holds.
func MergeSnapshots(cached quote.Snapshot, fresh []quote.RemoteRecord) quote.Snapshot {
	merged := make(quote.Snapshot, len(cached)+len(fresh))
	for id, rec := range cached {
		merged[id] = rec
	}
	for _, rec := range fresh {
		existing, ok := merged[rec.ID]
		if !ok || rec.ServerTimestamp.After(existing.ServerTimestamp) {
			merged[rec.ID] = rec
		}
	}
	return merged
}
