package colors

// Color is a palette entry.
type Color string

const (
	// Red is the first color.
	Red   Color = "red"
	Green Color = "green" // trailing
	_     Color = "skipped"
	blue  Color = "blue"
	other       = "untyped"
)

// Crimson aliases Red.
const Crimson = Red

type Weight int

const (
	Light Weight = iota + 1
	Heavy
)

type Ratio float64

const Half Ratio = 0.5

type Flag bool

const On Flag = true

type Shape struct{}

type Huge uint64

const Max Huge = 1 << 63
