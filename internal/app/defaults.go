package app

import "gosyncquotes/quote"

// DefaultQuotes returns the starter quote set used on first run, before the
// user has added anything or synced with the server. Returns a fresh slice
// each call so callers can mutate their copy freely.
func DefaultQuotes() []quote.Quote {
	return []quote.Quote{
		{Text: "The journey of a thousand miles begins with a single step.", Category: "Motivation", Source: quote.SourceLocal},
		{Text: "Life is what happens when you're busy making other plans.", Category: "Life", Source: quote.SourceLocal},
		{Text: "The only true wisdom is in knowing you know nothing.", Category: "Wisdom", Source: quote.SourceLocal},
		{Text: "It does not matter how slowly you go as long as you do not stop.", Category: "Motivation", Source: quote.SourceLocal},
		{Text: "Happiness is not something ready made. It comes from your own actions.", Category: "Life", Source: quote.SourceLocal},
	}
}
