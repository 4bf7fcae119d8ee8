// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for vring.

package api

import (
	"errors"
	"fmt"
	"syscall"
)

// Error classes. They match any *Error carrying the same code, so
// errors.Is(err, ErrResource) holds for every OS failure.
var (
	ErrConfiguration = &Error{Code: ErrCodeConfiguration, Message: "invalid configuration"}
	ErrResource      = &Error{Code: ErrCodeResource, Message: "virtual memory resource failure"}
	ErrNotSupported  = &Error{Code: ErrCodeNotSupported, Message: "mirrored mapping not supported on this platform"}
	ErrReleased      = &Error{Code: ErrCodeReleased, Message: "ring buffer used after release"}
)

// Configuration causes, wrapped by ErrCodeConfiguration errors.
var (
	ErrZeroCapacity     = errors.New("capacity must be greater than zero")
	ErrElementType      = errors.New("element type must be fixed-size and pointer-free")
	ErrCapacityOverflow = errors.New("capacity overflows the address space")
	ErrUnknownBackend   = errors.New("unknown backend")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeConfiguration
	ErrCodeResource
	ErrCodeNotSupported
	ErrCodeReleased
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeConfiguration:
		return "configuration"
	case ErrCodeResource:
		return "resource"
	case ErrCodeNotSupported:
		return "not_supported"
	case ErrCodeReleased:
		return "released"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error represents a structured error with code and context.
// Op names the failing step for resource errors; Errno is the OS error code
// when one is known.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Errno   syscall.Errno
	Err     error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// NewConfigError wraps a configuration cause.
func NewConfigError(cause error) *Error {
	return &Error{
		Code:    ErrCodeConfiguration,
		Message: "invalid configuration",
		Err:     cause,
	}
}

// NewResourceError builds the error returned when an OS primitive fails.
// The errno is extracted from cause when it wraps a syscall.Errno.
func NewResourceError(op string, cause error) *Error {
	e := &Error{
		Code:    ErrCodeResource,
		Op:      op,
		Message: "virtual memory operation failed",
		Err:     cause,
	}
	var errno syscall.Errno
	if errors.As(cause, &errno) {
		e.Errno = errno
	}
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
