package utils

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with a helpful suggestion for the user
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\nSuggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to work
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// Common error constructors with suggestions

// ErrNoQuotes creates an error when the quote set is empty
func ErrNoQuotes() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("no quotes available"),
		Suggestion: "Add one with 'gosyncquotes add \"<text>\" -c <category>' or pull some with 'gosyncquotes sync'",
	}
}

// ErrNoQuotesInCategory creates an error when a filter matches nothing
func ErrNoQuotesInCategory(category string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("no quotes in category '%s'", category),
		Suggestion: "Run 'gosyncquotes categories' to see which categories have quotes",
	}
}

// ErrSyncInProgress creates an error when a sync cycle is already running
func ErrSyncInProgress() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("a sync cycle is already in progress"),
		Suggestion: "Wait for the current cycle to finish and try again",
	}
}

// ErrServerUnreachable creates an error when the quote server cannot be reached
func ErrServerUnreachable(baseURL, reason string) error {
	suggestion := "Check your internet connection and try again"
	if strings.Contains(reason, "DNS") {
		suggestion = "Check your DNS settings and internet connection"
	} else if strings.Contains(reason, "refused") {
		suggestion = fmt.Sprintf("Check that the server at %s is running and accessible", baseURL)
	} else if strings.Contains(reason, "timeout") {
		suggestion = "The server may be slow or unreachable. Try again later"
	}

	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("quote server unreachable: %s", reason),
		Suggestion: suggestion,
	}
}

// ErrImportFile creates an error when an import payload cannot be used
func ErrImportFile(path string, reason error) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("cannot import from %s: %w", path, reason),
		Suggestion: "Provide a JSON array of objects with \"text\" and \"category\" fields",
	}
}

// ErrStoreOpen creates an error when the local store cannot be opened
func ErrStoreOpen(path string, reason error) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("cannot open local store at %s: %w", path, reason),
		Suggestion: "Check that the directory exists and is writable, or set a different 'store.path' in the config",
	}
}

// ErrConfigFileNotFound creates an error when config file is not found
func ErrConfigFileNotFound(path string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("config file not found at %s", path),
		Suggestion: "Run gosyncquotes to create a default configuration file",
	}
}

// ErrInvalidConfig creates an error for invalid configuration
func ErrInvalidConfig(field string, reason string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid configuration for '%s': %s", field, reason),
		Suggestion: fmt.Sprintf("Check ~/.config/gosyncquotes/config.yaml and fix the '%s' field", field),
	}
}

// WrapWithSuggestion wraps an existing error with a suggestion
func WrapWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}
