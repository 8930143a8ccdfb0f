package enum

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"sync"
	"sync/atomic"
)

// Constant is one declared name/value pair. Private constants belong to
// their declaring type only and are not inherited by extending declarations.
type Constant struct {
	Name    string
	Value   any
	Private bool
}

// Const builds a Constant.
func Const(name string, value any) Constant {
	return Constant{Name: name, Value: value}
}

// PrivateConst builds a Constant that extending declarations do not inherit.
func PrivateConst(name string, value any) Constant {
	return Constant{Name: name, Value: value, Private: true}
}

// Declaration is the identity of a declaring type. It owns the cached
// constant table and the instance partition for that type; both are
// populated lazily and never shrink.
type Declaration struct {
	name   string
	parent *Declaration
	own    []Constant
	source func() ([]Constant, error)

	once  sync.Once
	table *Table
	err   error

	mu        sync.Mutex
	bound     reflect.Type
	instances map[string]*slot
}

type slot struct {
	once   sync.Once
	ready  atomic.Bool
	member Member
	err    error
}

var declarations = struct {
	sync.RWMutex
	byName map[string]*Declaration
	order  []*Declaration
}{byName: make(map[string]*Declaration)}

// NewDeclaration builds a declaring type without registering it by name.
// parent may be nil.
func NewDeclaration(name string, parent *Declaration, constants []Constant) *Declaration {
	own := make([]Constant, len(constants))
	copy(own, constants)
	return &Declaration{name: name, parent: parent, own: own}
}

// Declare builds and registers a declaring type. It panics if name is empty
// or already registered.
func Declare(name string, constants ...Constant) *Declaration {
	return mustRegister(NewDeclaration(name, nil, constants))
}

// DeclareFunc registers a declaring type whose constants are produced by
// source. source runs at most once, on first use of the declaration.
func DeclareFunc(name string, source func() ([]Constant, error)) *Declaration {
	d := NewDeclaration(name, nil, nil)
	d.source = source
	return mustRegister(d)
}

// Extend registers a declaring type derived from d. Its own constants come
// first, followed by every constant of d it does not redeclare.
func (d *Declaration) Extend(name string, constants ...Constant) *Declaration {
	return mustRegister(NewDeclaration(name, d, constants))
}

// Register adds d to the process-wide set of named declarations.
func Register(d *Declaration) error {
	if d == nil || d.name == "" {
		return errors.New("enum: declaration name must not be empty")
	}
	declarations.Lock()
	defer declarations.Unlock()
	if _, exists := declarations.byName[d.name]; exists {
		return fmt.Errorf("enum: declaring type %s already registered", d.name)
	}
	declarations.byName[d.name] = d
	declarations.order = append(declarations.order, d)
	return nil
}

func mustRegister(d *Declaration) *Declaration {
	if err := Register(d); err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the registered declaration with the given name.
func Lookup(name string) (*Declaration, bool) {
	declarations.RLock()
	defer declarations.RUnlock()
	d, ok := declarations.byName[name]
	return d, ok
}

// Declarations returns the registered declarations in registration order.
func Declarations() []*Declaration {
	declarations.RLock()
	defer declarations.RUnlock()
	out := make([]*Declaration, len(declarations.order))
	copy(out, declarations.order)
	return out
}

// Name returns the declaring type name.
func (d *Declaration) Name() string { return d.name }

// Parent returns the extended declaration, or nil.
func (d *Declaration) Parent() *Declaration { return d.parent }

// Constants returns the constant table, discovering it on first call.
// A malformed declaration panics with an *Error of kind KindIntrospection.
func (d *Declaration) Constants() *Table {
	t, err := d.load()
	if err != nil {
		panic(err)
	}
	return t
}

// Validate forces discovery and reports a malformed declaration as an error.
func (d *Declaration) Validate() error {
	_, err := d.load()
	return err
}

func (d *Declaration) load() (*Table, error) {
	d.once.Do(func() {
		d.table, d.err = d.discover()
		if d.err != nil {
			logger().Error("enum declaration rejected", "type", d.name, "error", d.err)
			metrics().LookupFailed(d.name, KindIntrospection)
			return
		}
		logger().Debug("enum constants discovered", "type", d.name, "count", d.table.Len())
		metrics().ConstantsDiscovered(d.name, d.table.Len())
	})
	return d.table, d.err
}

func (d *Declaration) discover() (*Table, error) {
	own := d.own
	if d.source != nil {
		discovered, err := d.source()
		if err != nil {
			return nil, introspectionError(d.name, err)
		}
		own = discovered
	}

	t := &Table{decl: d.name, index: make(map[string]int, len(own))}
	for _, c := range own {
		if !token.IsIdentifier(c.Name) {
			return nil, introspectionError(d.name, fmt.Errorf("invalid constant name %q", c.Name))
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, introspectionError(d.name, fmt.Errorf("constant %s declared twice", c.Name))
		}
		v, err := Normalize(c.Value)
		if err != nil {
			return nil, introspectionError(d.name, fmt.Errorf("constant %s: %w", c.Name, err))
		}
		t.add(Constant{Name: c.Name, Value: v, Private: c.Private})
	}

	if d.parent != nil {
		inherited, err := d.parent.load()
		if err != nil {
			return nil, introspectionError(d.name, err)
		}
		for _, c := range inherited.entries {
			if _, redeclared := t.index[c.Name]; redeclared || c.Private {
				continue
			}
			t.add(c)
		}
	}

	if t.Len() == 0 {
		return nil, introspectionError(d.name, errors.New("no constants declared"))
	}
	return t, nil
}

// bind records the Go type whose instances populate the partition. One
// declaration backs exactly one instance type.
func (d *Declaration) bind(typ reflect.Type) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.bound == nil {
		d.bound = typ
		return
	}
	if d.bound != typ {
		panic(introspectionError(d.name, fmt.Errorf("instances already bound to %s, cannot bind %s", d.bound, typ)))
	}
}

// instance returns the canonical member for name, constructing it at most
// once for the life of the process.
func (d *Declaration) instance(name string, construct func(name string, value any, ordinal int) (Member, error)) (Member, error) {
	t := d.Constants()
	ordinal := t.Index(name)
	if ordinal < 0 {
		logger().Warn("enum constant not defined", "type", d.name, "name", name)
		metrics().LookupFailed(d.name, KindInvalidName)
		return nil, &Error{Kind: KindInvalidName, Type: d.name, Name: name}
	}

	d.mu.Lock()
	if d.instances == nil {
		d.instances = make(map[string]*slot, t.Len())
	}
	s, ok := d.instances[name]
	if !ok {
		s = &slot{}
		d.instances[name] = s
	}
	d.mu.Unlock()

	s.once.Do(func() {
		s.member, s.err = construct(name, cloneValue(t.entries[ordinal].Value), ordinal)
		if s.err != nil {
			s.err = introspectionError(d.name, fmt.Errorf("initialize %s: %w", name, s.err))
			logger().Error("enum instance initialization failed", "type", d.name, "name", name, "error", s.err)
			return
		}
		s.ready.Store(true)
		logger().Debug("enum instance constructed", "type", d.name, "name", name)
		metrics().InstanceConstructed(d.name, name)
	})
	return s.member, s.err
}

// canonical returns the live instance for name if it was constructed.
func (d *Declaration) canonical(name string) (Member, bool) {
	d.mu.Lock()
	s, ok := d.instances[name]
	d.mu.Unlock()
	if !ok || !s.ready.Load() {
		return nil, false
	}
	return s.member, true
}

// Table is the ordered, immutable constant table of a declaring type.
type Table struct {
	decl    string
	entries []Constant
	index   map[string]int
}

func (t *Table) add(c Constant) {
	t.index[c.Name] = len(t.entries)
	t.entries = append(t.entries, c)
}

// Len returns the number of constants.
func (t *Table) Len() int { return len(t.entries) }

// Names returns the constant names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, c := range t.entries {
		names[i] = c.Name
	}
	return names
}

// Index returns the ordinal of name, or -1.
func (t *Table) Index(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Lookup returns a copy of the value declared for name.
func (t *Table) Lookup(name string) (any, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return cloneValue(t.entries[i].Value), true
}

// Entries returns a copy of the table in declaration order.
func (t *Table) Entries() []Constant {
	out := make([]Constant, len(t.entries))
	for i, c := range t.entries {
		out[i] = Constant{Name: c.Name, Value: cloneValue(c.Value), Private: c.Private}
	}
	return out
}

// IndexOf returns the ordinal of the first constant whose value matches v
// under eq, or -1. v is normalized first; unsupported values never match.
func (t *Table) IndexOf(v any, eq func(a, b any) bool) int {
	nv, err := Normalize(v)
	if err != nil {
		return -1
	}
	for i, c := range t.entries {
		if eq(c.Value, nv) {
			return i
		}
	}
	return -1
}
