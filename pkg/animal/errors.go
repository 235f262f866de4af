package animal

import (
	"errors"
	"fmt"
)

// Kind classifies run-terminating failures.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindMalformedData Kind = "malformed_data"
	KindUnexpected    Kind = "unexpected"
)

// Sentinels usable with errors.Is against any *Error of the matching kind.
var (
	ErrNotFound      = errors.New("animal: not found")
	ErrMalformedData = errors.New("animal: malformed data")
	ErrUnexpected    = errors.New("animal: unexpected failure")
)

// Error carries the failure kind together with the path involved, if any.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// NotFound wraps err as a KindNotFound failure for path.
func NotFound(path string, err error) *Error {
	return &Error{Kind: KindNotFound, Path: path, Err: err}
}

// MalformedData wraps err as a KindMalformedData failure for path.
func MalformedData(path string, err error) *Error {
	return &Error{Kind: KindMalformedData, Path: path, Err: err}
}

// Unexpected wraps err as a KindUnexpected failure for path.
func Unexpected(path string, err error) *Error {
	return &Error{Kind: KindUnexpected, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var what string
	switch e.Kind {
	case KindNotFound:
		what = "file not found"
	case KindMalformedData:
		what = "invalid JSON"
	default:
		what = "unexpected failure"
	}
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("animal: %s %s: %v", what, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("animal: %s %s", what, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("animal: %s: %v", what, e.Err)
	}
	return "animal: " + what
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMalformedData:
		return e.Kind == KindMalformedData
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

// KindOf reports the kind of err. Errors that do not carry an *Error are
// classified as KindUnexpected.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var target *Error
	if errors.As(err, &target) && target.Kind != "" {
		return target.Kind
	}
	return KindUnexpected
}
