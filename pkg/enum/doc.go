// Package enum provides closed, enumerated types with per-variant state.
//
// A declaring type is described by a *Declaration: an ordered list of named
// constants, optionally extending a parent declaration. Concrete enum types
// embed Base and are obtained through a *Type registry:
//
//	var planetDecl = enum.Declare("Planet",
//		enum.Const("MERCURY", enum.List{3.303e+23, 2.4397e6}),
//		enum.Const("EARTH", enum.List{5.976e+24, 6.37814e6}),
//	)
//
//	type Planet struct {
//		enum.Base
//		mass, radius float64
//	}
//
//	func (p *Planet) InitValue(v any) error { ... }
//
//	var Planets = enum.New[Planet](planetDecl)
//
// The constant table of a declaration is discovered once, on first use, and
// cached for the process lifetime. Every (declaration, name) pair resolves to
// exactly one canonical instance, so identity comparison (==) on the returned
// pointers is a valid "same constant" check.
package enum
