package provider

import "fmt"

// ErrorKind classifies provider failures. The dispatch layer does not
// distinguish between kinds when reporting to callers; the taxonomy exists so
// implementations state what happened instead of returning bare strings.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindTransient
	KindMalformed
)

// String returns the kind's lowercase name.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTransient:
		return "transient"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by Provider implementations.
type Error struct {
	Kind ErrorKind
	Op   string // provider operation, e.g. "yahoo.history"
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and operation name.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a provider error from a format string.
func Errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}
