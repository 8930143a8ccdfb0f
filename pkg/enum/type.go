package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Member is implemented by pointers to structs embedding Base.
type Member interface {
	Name() string
	Value() any
	Ordinal() int
	String() string
	Declaration() *Declaration
	base() *Base
}

// Initializer computes derived state from the constant value. InitValue runs
// exactly once per canonical instance, before the instance is published. It
// must not look up the constant being initialized.
type Initializer interface {
	InitValue(value any) error
}

// Base carries the name and value of an enum instance. Embed it in the
// concrete enum struct; it is set by the registry and never reassigned.
type Base struct {
	self    *Base
	decl    *Declaration
	name    string
	value   any
	ordinal int
}

func (b *Base) base() *Base { return b }

// Name returns the constant name.
func (b *Base) Name() string { return b.name }

// Value returns the constant value. Lists and maps are returned as copies.
func (b *Base) Value() any { return cloneValue(b.value) }

// Ordinal returns the zero-based declaration position of the constant.
func (b *Base) Ordinal() int { return b.ordinal }

// Declaration returns the declaring type.
func (b *Base) Declaration() *Declaration { return b.decl }

// String renders the value: JSON for lists and maps, literal text otherwise.
func (b *Base) String() string { return render(b.value) }

// Equal reports value equality: same declaring type, name and value. A
// decoded copy is Equal to its canonical instance without being identical.
func (b *Base) Equal(other Member) bool {
	if other == nil {
		return false
	}
	o := other.base()
	return b.decl == o.decl && b.name == o.name && StrictEqual(b.value, o.value)
}

type snapshot struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the instance by value.
func (b *Base) MarshalJSON() ([]byte, error) {
	value, err := json.Marshal(b.value)
	if err != nil {
		return nil, err
	}
	typ := ""
	if b.decl != nil {
		typ = b.decl.name
	}
	return json.Marshal(snapshot{Type: typ, Name: b.name, Value: value})
}

// UnmarshalJSON restores a detached copy by value. The copy has no derived
// state and is never the canonical instance; use Type.Decode or
// Type.Canonical to obtain either.
func (b *Base) UnmarshalJSON(data []byte) error {
	if b.self == b {
		return &Error{Kind: KindNotCloneable, Type: b.decl.name, Name: b.name}
	}
	d, name, value, err := decodeSnapshot(data)
	if err != nil {
		return err
	}
	*b = Base{decl: d, name: name, value: value, ordinal: d.Constants().Index(name)}
	return nil
}

func decodeSnapshot(data []byte) (*Declaration, string, any, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, "", nil, fmt.Errorf("enum: decode snapshot: %w", err)
	}
	d, ok := Lookup(s.Type)
	if !ok {
		return nil, "", nil, &Error{Kind: KindInvalidArgument, Value: s.Type}
	}
	declared, ok := d.Constants().Lookup(s.Name)
	if !ok {
		return nil, "", nil, &Error{Kind: KindInvalidName, Type: d.name, Name: s.Name}
	}
	if len(s.Value) > 0 {
		decoded, err := decodeJSONValue(s.Value)
		if err != nil {
			return nil, "", nil, fmt.Errorf("enum: decode value: %w", err)
		}
		if !LooseEqual(decoded, declared) {
			return nil, "", nil, &Error{Kind: KindInvalidValue, Type: d.name, Name: s.Name, Value: decoded}
		}
	}
	return d, s.Name, declared, nil
}

// decodeJSONValue decodes JSON into normalized values, keeping object key
// order and integer literals.
func decodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeJSONToken(dec)
}

func decodeJSONToken(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			list := List{}
			for dec.More() {
				item, err := decodeJSONToken(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, item)
			}
			_, err := dec.Token()
			return list, err
		case '{':
			m := Map{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeJSONToken(dec)
				if err != nil {
					return nil, err
				}
				m = append(m, Pair{Key: key, Value: val})
			}
			_, err := dec.Token()
			return m, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

type instance[E any] interface {
	*E
	Member
}

// Type is the registry view of a declaring type for instances of E.
type Type[E any, P instance[E]] struct {
	decl *Declaration
}

// New binds decl to the instance type E. *E must embed Base.
func New[E any, P instance[E]](decl *Declaration) *Type[E, P] {
	if decl == nil {
		panic(errors.New("enum: nil declaration"))
	}
	decl.bind(reflect.TypeFor[E]())
	return &Type[E, P]{decl: decl}
}

// Declaration returns the declaring type.
func (t *Type[E, P]) Declaration() *Declaration { return t.decl }

// Name returns the declaring type name.
func (t *Type[E, P]) Name() string { return t.decl.name }

func (t *Type[E, P]) construct(name string, value any, ordinal int) (Member, error) {
	p := P(new(E))
	b := p.base()
	*b = Base{decl: t.decl, name: name, value: value, ordinal: ordinal}
	b.self = b
	if init, ok := any(p).(Initializer); ok {
		if err := init.InitValue(cloneValue(value)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ValueOf returns the canonical instance of the constant named name. The
// name must match exactly.
func (t *Type[E, P]) ValueOf(name string) (*E, error) {
	m, err := t.decl.instance(name, t.construct)
	if err != nil {
		return nil, err
	}
	return (*E)(m.(P)), nil
}

// MustValueOf is like ValueOf but panics on error.
func (t *Type[E, P]) MustValueOf(name string) *E {
	e, err := t.ValueOf(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Accessor returns a function resolving the constant named name on each
// call. An unknown name panics when the accessor is invoked.
func (t *Type[E, P]) Accessor(name string) func() *E {
	return func() *E { return t.MustValueOf(name) }
}

// Values returns the canonical instances in declaration order. The slice is
// new on every call; its elements are not.
func (t *Type[E, P]) Values() []*E {
	names := t.decl.Constants().Names()
	out := make([]*E, len(names))
	for i, name := range names {
		out[i] = t.MustValueOf(name)
	}
	return out
}

// Names returns the constant names in declaration order.
func (t *Type[E, P]) Names() []string { return t.decl.Constants().Names() }

// Len returns the number of constants.
func (t *Type[E, P]) Len() int { return t.decl.Constants().Len() }

// ContainsKey reports whether name is declared. No instance is constructed.
func (t *Type[E, P]) ContainsKey(name string) bool {
	return t.decl.Constants().Index(name) >= 0
}

// ContainsValue reports whether some constant strictly equals v.
func (t *Type[E, P]) ContainsValue(v any) bool {
	return t.decl.Constants().IndexOf(v, StrictEqual) >= 0
}

// ContainsValueLoose reports whether some constant loosely equals v.
func (t *Type[E, P]) ContainsValueLoose(v any) bool {
	return t.decl.Constants().IndexOf(v, LooseEqual) >= 0
}

// FromValue returns the first declared constant whose value strictly equals v.
func (t *Type[E, P]) FromValue(v any) (*E, error) {
	tbl := t.decl.Constants()
	i := tbl.IndexOf(v, StrictEqual)
	if i < 0 {
		logger().Warn("enum value not defined", "type", t.decl.name, "value", render(v))
		metrics().LookupFailed(t.decl.name, KindInvalidValue)
		return nil, &Error{Kind: KindInvalidValue, Type: t.decl.name, Value: v}
	}
	return t.ValueOf(tbl.entries[i].Name)
}

// Ordinal returns the declaration position of e's name, or -1 when e does not
// belong to this declaring type.
func (t *Type[E, P]) Ordinal(e *E) int {
	b := P(e).base()
	if b.decl != t.decl {
		return -1
	}
	return t.decl.Constants().Index(b.name)
}

// IsCanonical reports whether e is the registry's instance, as opposed to a
// decoded or copied value.
func (t *Type[E, P]) IsCanonical(e *E) bool {
	if e == nil {
		return false
	}
	b := P(e).base()
	if b.self != b || b.decl != t.decl {
		return false
	}
	m, ok := t.decl.canonical(b.name)
	return ok && m.base() == b
}

// Canonical resolves a decoded or copied value to its canonical instance.
func (t *Type[E, P]) Canonical(e *E) (*E, error) {
	if e == nil {
		return nil, &Error{Kind: KindInvalidArgument, Type: t.decl.name}
	}
	b := P(e).base()
	if b.decl != t.decl {
		return nil, &Error{Kind: KindInvalidName, Type: t.decl.name, Name: b.name}
	}
	return t.ValueOf(b.name)
}

// Decode reconstructs an instance from its JSON form. The result is equal by
// value to the canonical instance, carries initialized derived state, and is
// a distinct object.
func (t *Type[E, P]) Decode(data []byte) (*E, error) {
	d, name, value, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if d != t.decl {
		return nil, &Error{Kind: KindInvalidArgument, Type: t.decl.name, Value: d.name}
	}
	p := P(new(E))
	*p.base() = Base{decl: d, name: name, value: value, ordinal: d.Constants().Index(name)}
	if init, ok := any(p).(Initializer); ok {
		if err := init.InitValue(cloneValue(value)); err != nil {
			return nil, introspectionError(d.name, fmt.Errorf("initialize %s: %w", name, err))
		}
	}
	return (*E)(p), nil
}

// Clone always fails: canonical instances are never duplicated.
func Clone(m Member) (Member, error) {
	err := &Error{Kind: KindNotCloneable}
	if m != nil {
		err.Name = m.Name()
		if d := m.Declaration(); d != nil {
			err.Type = d.name
		}
	}
	logger().Warn("enum clone rejected", "type", err.Type, "name", err.Name)
	return nil, err
}
