package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates an explicitly requested file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidValue indicates a setting holds a value outside its domain.
	ErrInvalidValue = errors.New("invalid value")

	// ErrWatcherClosed indicates the watcher was used after Close.
	ErrWatcherClosed = errors.New("watcher closed")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Key is the dotted setting path involved, if known.
	Key string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := e.Path
	if e.Line > 0 && e.Column > 0 {
		where = fmt.Sprintf("%s at line %d, column %d", e.Path, e.Line, e.Column)
	} else if e.Line > 0 {
		where = fmt.Sprintf("%s at line %d", e.Path, e.Line)
	}
	if e.Key != "" {
		return fmt.Sprintf("parse error in %s: %s: %s", where, e.Key, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", where, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError describes a setting that failed validation.
type FieldError struct {
	// Key is the dotted setting path, e.g. "ui.mode".
	Key string
	// Value is the rejected value.
	Value any
	// Err explains the failure.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Key, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
