package app

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gosyncquotes/internal/utils"
	"gosyncquotes/quote"
	"gosyncquotes/store"
)

// State holds the quote set, the active category filter and the last-viewed
// quote. Every mutation writes through to the store; reads are served from
// memory. Safe for concurrent use by the UI and the sync coordinator.
type State struct {
	mu         sync.RWMutex
	store      store.Store
	quotes     []quote.Quote
	filter     string
	lastViewed *quote.Quote
}

// NewState loads persisted state from the store, seeding the default quote
// set on first run. A store that fails to load leaves the state running on
// in-memory data only.
func NewState(st store.Store) *State {
	s := &State{
		store:  st,
		filter: store.LoadFilter(st),
	}

	s.quotes = store.LoadQuotes(st)
	if len(s.quotes) == 0 {
		s.quotes = DefaultQuotes()
		store.SaveQuotes(st, s.quotes)
	}

	s.lastViewed = store.LoadLastViewed(st)
	return s
}

// Quotes returns a copy of the full quote set.
func (s *State) Quotes() []quote.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quotes := make([]quote.Quote, len(s.quotes))
	copy(quotes, s.quotes)
	return quotes
}

// SetQuotes replaces the whole quote set and persists it. The return value
// reports whether the write-through succeeded; the in-memory set is updated
// either way.
func (s *State) SetQuotes(quotes []quote.Quote) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = make([]quote.Quote, len(quotes))
	copy(s.quotes, quotes)
	return store.SaveQuotes(s.store, s.quotes)
}

// AddQuote validates the input, appends a new local quote and persists the
// set. Only validation failures are reported as errors; a failed write-through
// still leaves the quote in memory.
func (s *State) AddQuote(text, category string) (quote.Quote, error) {
	if err := quote.Validate(text, category); err != nil {
		return quote.Quote{}, err
	}

	q := quote.New(text, category)
	q.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, q)
	store.SaveQuotes(s.store, s.quotes)
	return q, nil
}

// Filter returns the active category filter.
func (s *State) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter sets the active category filter and persists it. An empty or
// blank category resets the filter to show everything. The filter is not
// checked against existing categories; a filter with no matches is allowed.
func (s *State) SetFilter(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		category = store.DefaultFilter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = category
	store.SaveFilter(s.store, category)
	return category
}

// Visible returns the quotes matching the active filter.
func (s *State) Visible() []quote.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == store.DefaultFilter {
		quotes := make([]quote.Quote, len(s.quotes))
		copy(quotes, s.quotes)
		return quotes
	}

	var quotes []quote.Quote
	for _, q := range s.quotes {
		if q.Category == s.filter {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

// RandomQuote picks a random quote from the visible set, records it as
// last viewed and persists that choice.
func (s *State) RandomQuote() (quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawLocked(s.filter)
}

// RandomFrom picks a random quote from the named category without
// changing the stored filter. An empty category or "all" draws from the
// whole set.
func (s *State) RandomFrom(category string) (quote.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawLocked(strings.TrimSpace(category))
}

func (s *State) drawLocked(category string) (quote.Quote, error) {
	if len(s.quotes) == 0 {
		return quote.Quote{}, utils.ErrNoQuotes()
	}

	pool := s.quotes
	if category != "" && category != store.DefaultFilter {
		pool = nil
		for _, q := range s.quotes {
			if q.Category == category {
				pool = append(pool, q)
			}
		}
		if len(pool) == 0 {
			return quote.Quote{}, utils.ErrNoQuotesInCategory(category)
		}
	}

	q := pool[rand.Intn(len(pool))]
	s.lastViewed = &q
	store.SaveLastViewed(s.store, q)
	return q, nil
}

// LastViewed returns the most recently viewed quote, if any.
func (s *State) LastViewed() (quote.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastViewed == nil {
		return quote.Quote{}, false
	}
	return *s.lastViewed, true
}

// CategoryCount pairs a category name with the number of quotes in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories returns the distinct categories in the set with their quote
// counts, sorted by name.
func (s *State) Categories() []CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, q := range s.quotes {
		counts[q.Category]++
	}

	categories := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// Counts reports the size of the quote set split by provenance.
func (s *State) Counts() (total, local, remoteDerived int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total = len(s.quotes)
	for _, q := range s.quotes {
		if q.RemoteDerived() {
			remoteDerived++
		} else {
			local++
		}
	}
	return total, local, remoteDerived
}
