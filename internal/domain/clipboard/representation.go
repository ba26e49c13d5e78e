// Package clipboard provides the pure parsing and formatting rules used to
// negotiate clipboard content on the canvas.
package clipboard

// State tells an absent representation apart from a malformed one.
type State int

const (
	// Absent means the payload did not offer the representation.
	Absent State = iota
	// Malformed means it was offered but could not be read or parsed.
	Malformed
	// Valid means it was offered and parsed.
	Valid
)

// String returns the lower-case state name used in logs.
func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Malformed:
		return "malformed"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// Representation is the parse result for one representation kind.
type Representation[T any] struct {
	State State
	Value T
	Err   error
}

// Ok reports whether the representation was offered and parsed.
func (r Representation[T]) Ok() bool {
	return r.State == Valid
}

// Present reports whether the payload offered the representation at all,
// regardless of whether it parsed.
func (r Representation[T]) Present() bool {
	return r.State != Absent
}

// AbsentOf returns an absent representation.
func AbsentOf[T any]() Representation[T] {
	return Representation[T]{State: Absent}
}

// MalformedOf returns a malformed representation carrying the cause.
func MalformedOf[T any](err error) Representation[T] {
	return Representation[T]{State: Malformed, Err: err}
}

// ValidOf returns a parsed representation.
func ValidOf[T any](v T) Representation[T] {
	return Representation[T]{State: Valid, Value: v}
}
