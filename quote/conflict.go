package quote

// ConflictKind classifies why a local quote and a remote record collided
type ConflictKind string

const (
	// KindContentMismatch means the natural keys match but the full
	// representations differ. This is the only kind the current policy
	// produces; the type exists so the log stays readable if more are added.
	KindContentMismatch ConflictKind = "content_mismatch"
)

// Conflict pairs a local quote with the remote record it collided with.
type Conflict struct {
	Local  Quote        `json:"local"`
	Remote RemoteRecord `json:"remote"`
	Kind   ConflictKind `json:"kind"`
}
