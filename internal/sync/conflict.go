package sync

import "gosyncquotes/quote"

// DetectConflicts compares every local quote against the merged snapshot and
// returns the pairs that share a natural key but differ in their full
// representation. Matching is exact string equality on text and category,
// no normalization. When several records share a local quote's key, the
// first one in snapshot order wins and later matches are ignored.
func DetectConflicts(local []quote.Quote, merged quote.Snapshot) []quote.Conflict {
	if len(local) == 0 || len(merged) == 0 {
		return nil
	}

	ids := merged.SortedIDs()
	var conflicts []quote.Conflict
	for _, q := range local {
		for _, id := range ids {
			rec := merged[id]
			if !rec.Matches(q) {
				continue
			}
			if !rec.EqualsQuote(q) {
				conflicts = append(conflicts, quote.Conflict{
					Local:  q,
					Remote: rec,
					Kind:   quote.KindContentMismatch,
				})
			}
			break
		}
	}
	return conflicts
}

// ResolveConflicts applies the remote-wins policy: for each conflict the
// local quote at the matching natural-key position is replaced by the remote
// record's content, tagged as resolved. The input slice is not mutated; the
// caller persists the returned slice once for the whole batch.
func ResolveConflicts(conflicts []quote.Conflict, local []quote.Quote) []quote.Quote {
	if len(conflicts) == 0 {
		return local
	}

	resolved := make([]quote.Quote, len(local))
	copy(resolved, local)
	for _, c := range conflicts {
		for i := range resolved {
			if resolved[i].Text == c.Local.Text && resolved[i].Category == c.Local.Category {
				q := c.Remote.Quote()
				q.Source = quote.SourceServerResolved
				resolved[i] = q
				break
			}
		}
	}
	return resolved
}

// FoldNetNew appends records whose natural key has no local counterpart,
// tagged as synced. Folded records are not conflicts and never reach the
// conflict log. Returns the new slice and how many records were appended;
// the input is not mutated.
func FoldNetNew(local []quote.Quote, merged quote.Snapshot) ([]quote.Quote, int) {
	folded := make([]quote.Quote, len(local), len(local)+len(merged))
	copy(folded, local)

	added := 0
	for _, id := range merged.SortedIDs() {
		rec := merged[id]
		// Scan the growing slice so two records sharing a key fold only once.
		if matchesAny(folded, rec) {
			continue
		}
		q := rec.Quote()
		q.Source = quote.SourceServerSynced
		folded = append(folded, q)
		added++
	}
	return folded, added
}

func matchesAny(quotes []quote.Quote, rec quote.RemoteRecord) bool {
	for _, q := range quotes {
		if rec.Matches(q) {
			return true
		}
	}
	return false
}
