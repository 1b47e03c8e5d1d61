package grep

import "fmt"

// ConfigError reports an invalid or incompatible option combination.
// It is detected before any data access.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

// SchemaError reports an explicitly named search column that does not
// exist or cannot be searched.
type SchemaError struct {
	Column     string
	Reason     string
	Suggestion string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("column %q: %s", e.Column, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// PatternError reports a malformed regular expression, identifying
// which pattern failed.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
