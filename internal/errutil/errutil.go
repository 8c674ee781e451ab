// Package errutil defines the named error kinds used across skim's
// transformation engine and driver, per the error-kind table in spec.md §7.
package errutil

import "fmt"

// Kind is a closed set of error categories. The driver maps a Kind to an
// exit code; user-facing messages never expose more than Kind, Path, and
// the wrapped error's message.
type Kind string

const (
	UnsupportedLanguage Kind = "unsupported-language"
	InputTooLarge       Kind = "input-too-large"
	UTF8Boundary        Kind = "utf8-boundary"
	MaxDepthExceeded    Kind = "max-depth-exceeded"
	TooManyNodes        Kind = "too-many-nodes"
	TooManyDeclarations Kind = "too-many-declarations"
	ParseError          Kind = "parse-error"
	PathTraversal       Kind = "path-traversal"
	IOError             Kind = "io-error"
	CacheCorrupt        Kind = "cache-corrupt"
)

// Error wraps an underlying error with a Kind and, when known, the path it
// concerns. It satisfies the standard errors.Unwrap contract.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for the given kind and message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WithPath builds an *Error for the given kind, path, and wrapped error.
func WithPath(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error. Returns ("", false) otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if asError(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// asError walks err's Unwrap chain for the first *Error, the same search
// errors.As performs, without importing the "errors" package.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ExitCode maps a Kind to the exit code table in spec.md §6.
func ExitCode(kind Kind) int {
	switch kind {
	case UnsupportedLanguage:
		return 3
	case ParseError:
		return 2
	case "":
		return 0
	default:
		return 1
	}
}
