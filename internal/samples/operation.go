package samples

import (
	"fmt"

	"enumcore/pkg/enum"
)

// Operation is an arithmetic operator. All four constants share the nil
// value; behavior dispatches on identity.
type Operation struct{ enum.Base }

// Operations is the Operation registry.
var Operations = enum.New[Operation](enum.Declare("Operation",
	enum.PrivateConst("PLUS", nil),
	enum.PrivateConst("MINUS", nil),
	enum.PrivateConst("TIMES", nil),
	enum.PrivateConst("DIVIDE", nil),
))

func OperationPlus() *Operation   { return Operations.MustValueOf("PLUS") }
func OperationMinus() *Operation  { return Operations.MustValueOf("MINUS") }
func OperationTimes() *Operation  { return Operations.MustValueOf("TIMES") }
func OperationDivide() *Operation { return Operations.MustValueOf("DIVIDE") }

// Apply performs the arithmetic operation represented by o.
func (o *Operation) Apply(x, y float64) float64 {
	switch o {
	case OperationPlus():
		return x + y
	case OperationMinus():
		return x - y
	case OperationTimes():
		return x * y
	case OperationDivide():
		return x / y
	}
	panic(fmt.Sprintf("unknown op: %s", o.Name()))
}
