package enum

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestDeclarationDiscoversOnce(t *testing.T) {
	var calls atomic.Int32
	d := DeclareFunc("DeclTestDiscoverOnce", func() ([]Constant, error) {
		calls.Add(1)
		return []Constant{Const("A", 1), Const("B", "two")}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Constants()
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected single introspection, got %d", calls.Load())
	}
	if first, second := d.Constants(), d.Constants(); first != second {
		t.Fatalf("expected cached table")
	}
	names := d.Constants().Names()
	if strings.Join(names, ",") != "A,B" {
		t.Fatalf("unexpected names %v", names)
	}
	if v, ok := d.Constants().Lookup("A"); !ok || v != int64(1) {
		t.Fatalf("expected normalized value, got %#v", v)
	}
}

func TestDeclarationIntrospectionFailures(t *testing.T) {
	cause := errors.New("source unavailable")
	cases := map[string]*Declaration{
		"source error": NewDeclaration("DeclTestSourceErr", nil, nil),
		"empty":        NewDeclaration("DeclTestEmpty", nil, nil),
		"bad name":     NewDeclaration("DeclTestBadName", nil, []Constant{Const("has space", 1)}),
		"blank name":   NewDeclaration("DeclTestBlankName", nil, []Constant{Const("", 1)}),
		"duplicate":    NewDeclaration("DeclTestDup", nil, []Constant{Const("A", 1), Const("A", 2)}),
		"bad value":    NewDeclaration("DeclTestBadValue", nil, []Constant{Const("A", func() {})}),
	}
	cases["source error"].source = func() ([]Constant, error) { return nil, cause }

	for name, d := range cases {
		err := d.Validate()
		if !errors.Is(err, ErrIntrospection) {
			t.Fatalf("%s: expected introspection error, got %v", name, err)
		}
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s: expected Constants to panic", name)
				}
				if rerr, ok := r.(error); !ok || !errors.Is(rerr, ErrIntrospection) {
					t.Fatalf("%s: unexpected panic value %v", name, r)
				}
			}()
			d.Constants()
		}()
	}
	if err := cases["source error"].Validate(); !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
}

func TestDeclarationExtendOrdering(t *testing.T) {
	parent := NewDeclaration("DeclTestParent", nil, []Constant{
		Const("A", 1),
		PrivateConst("HIDDEN", 2),
		Const("B", 3),
		Const("C", 4),
	})
	child := NewDeclaration("DeclTestChild", parent, []Constant{
		Const("D", 5),
		Const("B", 30),
	})

	got := strings.Join(child.Constants().Names(), ",")
	if got != "D,B,A,C" {
		t.Fatalf("expected own constants first then inherited, got %s", got)
	}
	if v, _ := child.Constants().Lookup("B"); v != int64(30) {
		t.Fatalf("expected redeclared value, got %#v", v)
	}
	if child.Constants().Index("HIDDEN") != -1 {
		t.Fatalf("private constants must not be inherited")
	}
	if parent.Constants().Index("HIDDEN") != 1 {
		t.Fatalf("private constant must stay in its declaring type")
	}
	if child.Parent() != parent {
		t.Fatalf("expected parent link")
	}
}

func TestDeclarationParentFailurePropagates(t *testing.T) {
	parent := NewDeclaration("DeclTestBrokenParent", nil, nil)
	child := NewDeclaration("DeclTestOrphan", parent, []Constant{Const("X", 1)})
	if err := child.Validate(); !errors.Is(err, ErrIntrospection) {
		t.Fatalf("expected parent failure to surface, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	d := Declare("DeclTestRegistered", Const("A", 1))
	if got, ok := Lookup("DeclTestRegistered"); !ok || got != d {
		t.Fatalf("expected lookup by name")
	}
	if err := Register(NewDeclaration("DeclTestRegistered", nil, nil)); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := Register(NewDeclaration("", nil, nil)); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Declare to panic on duplicate")
		}
	}()
	Declare("DeclTestRegistered", Const("B", 2))
}

func TestDeclarationsListedInOrder(t *testing.T) {
	a := Declare("DeclTestOrderA", Const("A", 1))
	b := a.Extend("DeclTestOrderB", Const("B", 2))
	var ia, ib = -1, -1
	for i, d := range Declarations() {
		switch d {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("expected registration order, got %d and %d", ia, ib)
	}
	if b.Name() != "DeclTestOrderB" || b.Parent() != a {
		t.Fatalf("unexpected extended declaration")
	}
}

func TestTableCopiesValues(t *testing.T) {
	d := NewDeclaration("DeclTestCopies", nil, []Constant{Const("L", List{"a"})})
	entries := d.Constants().Entries()
	entries[0].Value.(List)[0] = "b"
	v, _ := d.Constants().Lookup("L")
	v.(List)[0] = "c"
	if got, _ := d.Constants().Lookup("L"); got.(List)[0] != "a" {
		t.Fatalf("table must not be mutable through copies")
	}
	if d.Constants().IndexOf(func() {}, StrictEqual) != -1 {
		t.Fatalf("unsupported values never match")
	}
}
