package samples

import "enumcore/pkg/enum"

// Category renders as its constant name rather than its value.
type Category struct{ enum.Base }

// Categories is the Category registry.
var Categories = enum.New[Category](enum.Declare("Category",
	enum.Const("TOP", "category_top"),
	enum.Const("NEW", "category_new"),
))

func CategoryTop() *Category { return Categories.MustValueOf("TOP") }
func CategoryNew() *Category { return Categories.MustValueOf("NEW") }

func (c *Category) String() string { return c.Name() }
