package enum

import (
	"fmt"
)

// Kind classifies an *Error.
type Kind int

const (
	// KindInvalidName reports a lookup by a name the declaring type does not define.
	KindInvalidName Kind = iota + 1
	// KindInvalidValue reports a reverse lookup by a value no constant holds.
	KindInvalidValue
	// KindNotCloneable reports an attempt to duplicate a canonical instance.
	KindNotCloneable
	// KindIntrospection reports a malformed declaration. It is a configuration
	// defect and is never retried.
	KindIntrospection
	// KindInvalidArgument reports a target that is neither an instance nor a
	// declaring type.
	KindInvalidArgument
)

var kindNames = map[Kind]string{
	KindInvalidName:     "invalid_name",
	KindInvalidValue:    "invalid_value",
	KindNotCloneable:    "not_cloneable",
	KindIntrospection:   "introspection",
	KindInvalidArgument: "invalid_argument",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Sentinel errors for errors.Is matching by kind.
var (
	ErrInvalidName     = &Error{Kind: KindInvalidName}
	ErrInvalidValue    = &Error{Kind: KindInvalidValue}
	ErrNotCloneable    = &Error{Kind: KindNotCloneable}
	ErrIntrospection   = &Error{Kind: KindIntrospection}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
)

// Error is returned (or, for KindIntrospection, raised) by enum operations.
type Error struct {
	Kind  Kind
	Type  string
	Name  string
	Value any
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidName:
		return fmt.Sprintf("enum: constant named \"%s\" is not defined in the %s type", e.Name, e.Type)
	case KindInvalidValue:
		return fmt.Sprintf("enum: constant value \"%s\" is not defined in the %s type", render(e.Value), e.Type)
	case KindNotCloneable:
		return fmt.Sprintf("enum: enums are not cloneable (%s.%s)", e.Type, e.Name)
	case KindIntrospection:
		if e.Err != nil {
			return fmt.Sprintf("enum: cannot introspect %s: %v", e.Type, e.Err)
		}
		return fmt.Sprintf("enum: cannot introspect %s", e.Type)
	case KindInvalidArgument:
		return fmt.Sprintf("enum: expected object or declaring type name, got %T", e.Value)
	default:
		return "enum: unknown error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, which makes the package sentinels
// usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func introspectionError(typ string, cause error) *Error {
	return &Error{Kind: KindIntrospection, Type: typ, Err: cause}
}
