package sync

import "time"

// Severity grades a status message for display purposes.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Status is the last state the orchestrator published. The UI layer polls
// it; nothing blocks on it.
type Status struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}
