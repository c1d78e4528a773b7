// Package errors provides structured error types for potomac. Errors carry a
// category and the filesystem path they relate to so callers can present them
// without string matching.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType categorizes an error for programmatic handling.
type ErrorType string

const (
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Error is a structured error with a category and optional path context.
type Error struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	parts = append(parts, string(e.Type))
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)
	result := strings.Join(parts, ": ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by type, so callers can test categories with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Type == t.Type
	}
	return false
}

// NewParseError wraps a translation-file parse failure.
func NewParseError(path string, cause error) *Error {
	return &Error{Type: ErrorTypeParse, Message: "malformed translation file", Path: path, Cause: cause}
}

// NewIOError wraps a filesystem failure.
func NewIOError(path string, msg string, cause error) *Error {
	return &Error{Type: ErrorTypeIO, Message: msg, Path: path, Cause: cause}
}

// NewConfigError reports an invalid configuration value.
func NewConfigError(msg string) *Error {
	return &Error{Type: ErrorTypeConfig, Message: msg}
}

// Canonical reasons reported for permission problems. PermissionReport uses
// the same strings, so they double as user-facing text.
const (
	ReasonFileNotWritable   = "file not writable"
	ReasonFolderNotWritable = "folder not writable"
	ReasonMissingBinary     = "missing compiled binary file"
)

// Problem is one path that failed a permission check.
type Problem struct {
	Path   string
	Reason string
}

// PermissionError aggregates every permission problem found for a package so
// the caller can display them all at once.
type PermissionError struct {
	Problems []Problem
}

// Error implements the error interface.
func (e *PermissionError) Error() string {
	if len(e.Problems) == 0 {
		return "permission check failed"
	}
	if len(e.Problems) == 1 {
		p := e.Problems[0]
		return fmt.Sprintf("%s: %s", p.Reason, p.Path)
	}
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = fmt.Sprintf("%s: %s", p.Reason, p.Path)
	}
	return fmt.Sprintf("%d permission problems: %s", len(e.Problems), strings.Join(parts, "; "))
}

// Add records a problem. The first problem per path wins; later reasons for
// the same path are dropped.
func (e *PermissionError) Add(path, reason string) {
	for _, p := range e.Problems {
		if p.Path == path {
			return
		}
	}
	e.Problems = append(e.Problems, Problem{Path: path, Reason: reason})
}

// Empty reports whether no problems were recorded.
func (e *PermissionError) Empty() bool {
	return len(e.Problems) == 0
}

// Sorted returns the problems ordered by path for deterministic output.
func (e *PermissionError) Sorted() []Problem {
	out := make([]Problem, len(e.Problems))
	copy(out, e.Problems)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
