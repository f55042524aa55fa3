package hll

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParameterOutOfRange is returned when a Settings field falls outside its
// valid range at construction time.
type ParameterOutOfRange struct {
	Field    string
	Min, Max int
	Got      int
}

func (e *ParameterOutOfRange) Error() string {
	if e.Got < e.Min {
		return fmt.Sprintf("%s is too small.  Requires at least %d but got %d", e.Field, e.Min, e.Got)
	}
	return fmt.Sprintf("%s is too large.  Allows at most %d but got %d", e.Field, e.Max, e.Got)
}

// ParameterMismatch is returned by StrictUnion when the receiver and the
// argument were constructed with incompatible settings.
type ParameterMismatch struct {
	Reason string
}

func (e *ParameterMismatch) Error() string {
	return "hll: parameter mismatch: " + e.Reason
}

// DecodeErrorKind distinguishes the reason a serialized Hll failed to parse.
// The storage spec doesn't fix a canonical sub-kind for every failure mode
// (unknown schema versions in particular are left open-ended), so callers
// should generally test with errors.As(err, *DecodeError) rather than
// switching on Kind unless they specifically care.
type DecodeErrorKind int

const (
	// UnknownVersion indicates the high nibble of the version byte was not
	// the schema version this package implements (1).
	UnknownVersion DecodeErrorKind = iota + 1
	// UnknownType indicates the low nibble of the version byte did not name
	// a valid storageType.
	UnknownType
	// BadParameters indicates log2m or regwidth decoded outside their valid
	// range.
	BadParameters
	// BadLength indicates the payload length was inconsistent with the
	// declared type's size constraints (truncated or overlong input).
	BadLength
	// NonMonotonicExplicit indicates an EXPLICIT payload decoded in strict
	// mode whose 8-byte values were not strictly ascending.
	NonMonotonicExplicit
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnknownVersion:
		return "UnknownVersion"
	case UnknownType:
		return "UnknownType"
	case BadParameters:
		return "BadParameters"
	case BadLength:
		return "BadLength"
	case NonMonotonicExplicit:
		return "NonMonotonicExplicit"
	default:
		return "Unknown"
	}
}

// DecodeError is returned by FromBytes/FromBytesStrict whenever the input
// cannot be deserialized into an Hll. The target Hll is left unmodified in
// every such case.
type DecodeError struct {
	Kind  DecodeErrorKind
	cause error
}

func newDecodeError(kind DecodeErrorKind, cause error) *DecodeError {
	return &DecodeError{Kind: kind, cause: cause}
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("hll: decode error (%s): %s", e.Kind, e.cause)
	}
	return fmt.Sprintf("hll: decode error (%s)", e.Kind)
}

// Unwrap exposes the underlying cause, if any, so that errors.Is/errors.As
// continue to work against sentinels like ErrInsufficientBytes.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// InternalInvariant is surfaced when an internal consistency check fails,
// e.g. a register value observed above V_max. This should never fire in
// production; it exists so tests can assert the invariant holds rather than
// silently producing a wrong estimate.
type InternalInvariant struct {
	Detail string
}

func (e *InternalInvariant) Error() string {
	return "hll: internal invariant violated: " + e.Detail
}

// assertInvariant panics with an *InternalInvariant if cond is false. It is
// used only at points where corruption would otherwise silently propagate
// into a wrong cardinality estimate.
func assertInvariant(cond bool, detail string) {
	if !cond {
		panic(&InternalInvariant{Detail: detail})
	}
}

// wrapDecode is a small helper that builds a DecodeError whose cause is a
// pkg/errors error carrying msg. The cause is reachable through Unwrap
// (stdlib errors.Is/errors.As); DecodeError has no Cause method, so
// pkg/errors' errors.Cause stops at the DecodeError itself.
func wrapDecode(kind DecodeErrorKind, msg string) *DecodeError {
	return newDecodeError(kind, errors.New(msg))
}
