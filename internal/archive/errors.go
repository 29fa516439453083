// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"errors"
	"fmt"
)

const (
	// KindInvalidPath classifies failures caused by the shape of the input:
	// unsupported file types, missing basenames, malformed destinations.
	KindInvalidPath ErrorKind = iota + 1
	// KindIO classifies failures reported by the filesystem or by the
	// archiving tool.
	KindIO
)

var (
	// ErrInvalidPath is the sentinel wrapped by every KindInvalidPath error.
	ErrInvalidPath = errors.New("invalid path")
	// ErrIO is the sentinel wrapped by every KindIO error.
	ErrIO = errors.New("i/o failure")
)

type (
	// ErrorKind is the two-valued failure taxonomy of the package.
	ErrorKind int

	// Error describes a failed archive operation. It wraps the sentinel of
	// its Kind and, when present, the underlying cause, so errors.Is matches
	// both ErrIO and e.g. fs.ErrNotExist.
	Error struct {
		Kind ErrorKind
		// Op names the operation that failed ("stat", "copy", "archive", ...).
		Op string
		// Path is the filesystem path the operation was working on.
		Path string
		// Err is the underlying cause; may be nil for pure shape errors.
		Err error
	}
)

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid path"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// sentinel returns the package sentinel matching the kind.
func (k ErrorKind) sentinel() error {
	if k == KindInvalidPath {
		return ErrInvalidPath
	}
	return ErrIO
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the kind sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// invalidPath builds a KindInvalidPath error.
func invalidPath(op, path string, cause error) *Error {
	return &Error{Kind: KindInvalidPath, Op: op, Path: path, Err: cause}
}

// ioError builds a KindIO error. Causes that already are *Error pass through
// unchanged so kinds are never double-wrapped.
func ioError(op, path string, cause error) error {
	var ae *Error
	if errors.As(cause, &ae) {
		return ae
	}
	return &Error{Kind: KindIO, Op: op, Path: path, Err: cause}
}

// NewIOError wraps cause as a KindIO error. Backends use it to report
// failures of the archiving tool.
func NewIOError(op, path string, cause error) error {
	return ioError(op, path, cause)
}

// NewInvalidPathError wraps cause as a KindInvalidPath error.
func NewInvalidPathError(op, path string, cause error) error {
	return invalidPath(op, path, cause)
}

// KindOf reports the kind of err, or 0 when err did not originate here.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidPath):
		return KindInvalidPath
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return 0
	}
}
