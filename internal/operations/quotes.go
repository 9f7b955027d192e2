// Package operations implements the user-initiated actions shared by the
// CLI commands and the interactive browser: adding quotes, importing them
// from a file, and exporting the diagnostic snapshot.
package operations

import (
	"gosyncquotes/internal/app"
	"gosyncquotes/quote"
	"gosyncquotes/remote"
)

// AddQuote validates the input, appends the quote to the local set and
// pushes it to the server best-effort. The returned PostResult carries the
// push outcome; the caller decides whether to surface a failed push as a
// warning. The quote stays local and valid no matter what the server said.
func AddQuote(state *app.State, gateway remote.Gateway, text, category string) (quote.Quote, remote.PostResult, error) {
	q, err := state.AddQuote(text, category)
	if err != nil {
		return quote.Quote{}, remote.PostResult{}, err
	}

	return q, gateway.PostQuote(q), nil
}
