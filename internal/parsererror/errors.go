// Package parsererror defines the typed errors returned by the document
// parsers and the taxonomy store. Unmatched document lines are never
// reported through these types; they are dropped silently by design.
package parsererror

import (
	"errors"
	"fmt"
)

// ParseError reports a field that was found but could not be converted.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports rejected input, such as an empty keyword.
type ValidationError struct {
	Subject string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Subject, e.Reason)
}

// InvalidFormatError reports a file that is not the expected kind of document.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError reports a mandatory document-level field that is
// missing. A document carrying this error must be rejected as a whole.
type DataExtractionError struct {
	FilePath       string
	FieldName      string
	RawDataSnippet string
	Msg            string
}

func (e *DataExtractionError) Error() string {
	location := e.FilePath
	if location == "" {
		location = "<text>"
	}
	if e.RawDataSnippet != "" {
		return fmt.Sprintf("data extraction failed in '%s' for field '%s': %s. Raw data snippet: '%s'",
			location, e.FieldName, e.Msg, e.RawDataSnippet)
	}
	return fmt.Sprintf("data extraction failed in '%s' for field '%s': %s",
		location, e.FieldName, e.Msg)
}

// NotFoundError reports an unknown category or keyword in a taxonomy mutation.
type NotFoundError struct {
	Kind string
	Name string
	In   string
}

func (e *NotFoundError) Error() string {
	if e.In != "" {
		return fmt.Sprintf("%s '%s' not found in %s", e.Kind, e.Name, e.In)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// ConflictError reports a keyword that already exists in its category.
type ConflictError struct {
	Kind string
	Name string
	In   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists in %s", e.Kind, e.Name, e.In)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err wraps a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
