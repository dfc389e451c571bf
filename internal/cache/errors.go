package cache

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of cache error.
type ErrorType int

const (
	// ErrorTypeNotFound indicates no entry exists for the key.
	ErrorTypeNotFound ErrorType = iota
	// ErrorTypeExpired indicates the entry exists but is older than the TTL.
	ErrorTypeExpired
	// ErrorTypeInvalidData indicates a stored entry could not be decoded.
	ErrorTypeInvalidData
	// ErrorTypeDatabase indicates a database operation failed.
	ErrorTypeDatabase
)

// Error represents a cache-specific error.
type Error struct {
	Type    ErrorType
	Op      string
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("operation: %s", e.Op))
	}
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key: %s", e.Key))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Err))
	}
	return fmt.Sprintf("cache error [%s]: %s", e.typeString(), strings.Join(parts, ", "))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) typeString() string {
	switch e.Type {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeExpired:
		return "expired"
	case ErrorTypeInvalidData:
		return "invalid_data"
	case ErrorTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsNotFound reports whether err is a cache miss.
func IsNotFound(err error) bool {
	var cacheErr *Error
	return errors.As(err, &cacheErr) && cacheErr.Type == ErrorTypeNotFound
}

// IsExpired reports whether err is a stale-entry error.
func IsExpired(err error) bool {
	var cacheErr *Error
	return errors.As(err, &cacheErr) && cacheErr.Type == ErrorTypeExpired
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(op, key string) *Error {
	return &Error{Type: ErrorTypeNotFound, Op: op, Key: key, Message: "entry not found"}
}

// NewExpiredError creates a new stale-entry error.
func NewExpiredError(op, key string) *Error {
	return &Error{Type: ErrorTypeExpired, Op: op, Key: key, Message: "entry is older than the cache TTL"}
}

// NewInvalidDataError creates a new invalid data error.
func NewInvalidDataError(op, key string, err error) *Error {
	return &Error{Type: ErrorTypeInvalidData, Op: op, Key: key, Message: "failed to decode entry", Err: err}
}

// NewDatabaseError creates a new database error.
func NewDatabaseError(op, key string, err error) *Error {
	return &Error{Type: ErrorTypeDatabase, Op: op, Key: key, Err: err}
}
