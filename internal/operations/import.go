package operations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"gosyncquotes/internal/app"
	"gosyncquotes/internal/utils"
	"gosyncquotes/remote"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation for notblank: whitespace-only strings count
	// as empty, same rule the quote set enforces.
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// importEntry is one record of the import payload. Any fields beyond text
// and category are ignored.
type importEntry struct {
	Text     string `json:"text" validate:"required,notblank"`
	Category string `json:"category" validate:"required,notblank"`
}

// entryReason flattens a validator error into the single-line reason stored
// on the rejected entry.
func entryReason(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		switch verrs[0].Tag() {
		case "required", "notblank":
			return fmt.Sprintf("%s must not be empty", field)
		default:
			return fmt.Sprintf("%s failed %s validation", field, verrs[0].Tag())
		}
	}
	return err.Error()
}

// RejectedEntry records why one import entry was not accepted.
type RejectedEntry struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResult summarizes one import run. A batch never aborts on a bad
// entry: valid entries around it are still accepted.
type ImportResult struct {
	Accepted   int             `json:"accepted"`
	Rejected   []RejectedEntry `json:"rejected,omitempty"`
	Posted     int             `json:"posted"`
	PostFailed int             `json:"postFailed"`
}

// ImportQuotes reads a JSON array of {text, category} objects and appends
// each valid entry to the quote set, forwarding it to the server
// best-effort. A payload that is not a JSON array fails as a whole; a bad
// entry inside the array is rejected individually.
func ImportQuotes(state *app.State, gateway remote.Gateway, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import payload: %w", err)
	}

	var entries []importEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("import payload must be a JSON array of {text, category} objects: %w", err)
	}

	result := &ImportResult{}
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			result.Rejected = append(result.Rejected, RejectedEntry{Index: i, Reason: entryReason(err)})
			continue
		}

		q, err := state.AddQuote(entry.Text, entry.Category)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedEntry{Index: i, Reason: err.Error()})
			continue
		}
		result.Accepted++

		if post := gateway.PostQuote(q); post.OK {
			result.Posted++
		} else {
			result.PostFailed++
			utils.Warnf("Failed to push imported quote %q to server: %v", q.Text, post.Err)
		}
	}
	return result, nil
}

// ImportQuotesFile imports from a file on disk.
func ImportQuotesFile(state *app.State, gateway remote.Gateway, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.ErrImportFile(path, err)
	}
	defer func() { _ = f.Close() }()

	result, err := ImportQuotes(state, gateway, f)
	if err != nil {
		return nil, utils.ErrImportFile(path, err)
	}
	return result, nil
}
