package remote

// This file contains shared test helpers and mocks used across packages
// that exercise sync behavior without a real server. It is not in a
// _test.go file so that other packages' tests can import it.

import (
	"strconv"
	"sync"
	"time"

	"gosyncquotes/quote"
)

// MockGateway implements Gateway with settable results. The error fields
// force failures; FetchDelay makes a fetch observable from other goroutines
// for concurrency tests.
type MockGateway struct {
	mu sync.Mutex

	Records    []quote.RemoteRecord
	FetchErr   error
	FetchDelay time.Duration

	PostErr error
	PingErr error

	fetchCalls int
	posted     []quote.Quote
	nextID     int
}

// NewMockGateway creates a mock gateway with no records.
func NewMockGateway() *MockGateway {
	return &MockGateway{nextID: 101}
}

// FetchRemoteBatch returns the configured records or error.
func (m *MockGateway) FetchRemoteBatch() ([]quote.RemoteRecord, error) {
	m.mu.Lock()
	m.fetchCalls++
	delay := m.FetchDelay
	err := m.FetchErr
	records := make([]quote.RemoteRecord, len(m.Records))
	copy(records, m.Records)
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Attempts: RetryAttempts, Err: err}
	}
	return records, nil
}

// PostQuote records the pushed quote and echoes a fresh remote ID, like the
// real server does.
func (m *MockGateway) PostQuote(q quote.Quote) PostResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PostErr != nil {
		return PostResult{Err: m.PostErr}
	}
	m.posted = append(m.posted, q)
	id := m.nextID
	m.nextID++
	return PostResult{OK: true, RemoteID: strconv.Itoa(id)}
}

// Ping returns the configured ping error.
func (m *MockGateway) Ping() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PingErr
}

// FetchCalls returns how many times FetchRemoteBatch was invoked.
func (m *MockGateway) FetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

// Posted returns the quotes pushed so far.
func (m *MockGateway) Posted() []quote.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]quote.Quote, len(m.posted))
	copy(out, m.posted)
	return out
}

// SetRecords replaces the configured records.
func (m *MockGateway) SetRecords(records []quote.RemoteRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = records
}
