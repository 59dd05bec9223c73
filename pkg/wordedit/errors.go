package wordedit

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// NotExistError reports an operation on a document path that does not exist.
type NotExistError struct {
	Path string
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("document '%s' does not exist", e.Path)
}

// NewNotExistError creates a new not-exist error for the given path
func NewNotExistError(path string) error {
	return &NotExistError{Path: path}
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// PartNotFoundError reports a package entry absent from the archive.
type PartNotFoundError struct {
	Part string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("part '%s' not found in package", e.Part)
}

// NewPartNotFoundError creates a new part-not-found error
func NewPartNotFoundError(part string) error {
	return &PartNotFoundError{Part: part}
}

// StyleNotFoundError reports a style name absent from the document's
// stylesheet.
type StyleNotFoundError struct {
	Style     string
	Available []string
}

func (e *StyleNotFoundError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("style '%s' not found in document (available: %s)", e.Style, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("style '%s' not found in document", e.Style)
}

// NewStyleNotFoundError creates a new style-not-found error
func NewStyleNotFoundError(style string, available []string) error {
	return &StyleNotFoundError{
		Style:     style,
		Available: available,
	}
}

// InvalidPositionError reports an insertion position that is neither
// "before" nor "after".
type InvalidPositionError struct {
	Position string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position '%s': must be 'before' or 'after'", e.Position)
}

// NewInvalidPositionError creates a new invalid-position error
func NewInvalidPositionError(position string) error {
	return &InvalidPositionError{Position: position}
}

// IsNotExistError checks if an error is a not-exist error
func IsNotExistError(err error) bool {
	var e *NotExistError
	return errors.As(err, &e)
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	var e *DocumentError
	return errors.As(err, &e)
}

// IsPartNotFoundError checks if an error is a part-not-found error
func IsPartNotFoundError(err error) bool {
	var e *PartNotFoundError
	return errors.As(err, &e)
}

// IsStyleNotFoundError checks if an error is a style-not-found error
func IsStyleNotFoundError(err error) bool {
	var e *StyleNotFoundError
	return errors.As(err, &e)
}
