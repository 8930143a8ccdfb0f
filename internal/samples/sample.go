package samples

import "enumcore/pkg/enum"

// Raw values of the ExampleEnum constants.
const (
	ValueInt         = 0
	ValueInt1000     = 1000
	ValueString      = "String Value"
	ValueBoolTrue    = true
	ValueBoolFalse   = false
	ValueFloat       = 0.000324
	ValueEmptyString = ""
	ValueEquals1     = "equals value"
	ValueEquals2     = "equals value"
	ScalarExpression = ValueString + " - 1000"
	ConstValue       = "const"
	PublicConst      = "public"
	privateConst     = "private"
	protectedConst   = "protected"
)

var (
	// LangCodes is the LANG_CODES list value.
	LangCodes = enum.List{"en", "fr", "de", "es", "ru", "zh"}
	// CountryCodes is the COUNTRY_CODES ordered map value.
	CountryCodes = enum.Map{
		{Key: "us", Value: "USA"},
		{Key: "cn", Value: "China"},
		{Key: "fr", Value: "France"},
		{Key: "ru", Value: "Russia"},
	}
)

// SampleDeclaration declares constants covering every supported value kind,
// including two names aliasing the same value.
var SampleDeclaration = enum.Declare("ExampleEnum",
	enum.Const("VALUE_INT", ValueInt),
	enum.Const("VALUE_INT_1000", ValueInt1000),
	enum.Const("VALUE_STRING", ValueString),
	enum.Const("VALUE_BOOL_TRUE", ValueBoolTrue),
	enum.Const("VALUE_BOOL_FALSE", ValueBoolFalse),
	enum.Const("VALUE_FLOAT", ValueFloat),
	enum.Const("VALUE_NULL", nil),
	enum.Const("VALUE_EMPTY_STRING", ValueEmptyString),
	enum.Const("VALUE_EQUALS_1", ValueEquals1),
	enum.Const("VALUE_EQUALS_2", ValueEquals2),
	enum.Const("SCALAR_EXPRESSION", ScalarExpression),
	enum.Const("CONST", ConstValue),
	enum.Const("PUBLIC_CONST", PublicConst),
	enum.PrivateConst("PRIVATE_CONST", privateConst),
	enum.Const("PROTECTED_CONST", protectedConst),
	enum.Const("LANG_CODES", LangCodes),
	enum.Const("COUNTRY_CODES", CountryCodes),
)

// Sample is a constant of ExampleEnum.
type Sample struct{ enum.Base }

// Samples is the ExampleEnum registry.
var Samples = enum.New[Sample](SampleDeclaration)

func SampleValueInt() *Sample         { return Samples.MustValueOf("VALUE_INT") }
func SampleValueInt1000() *Sample     { return Samples.MustValueOf("VALUE_INT_1000") }
func SampleValueString() *Sample      { return Samples.MustValueOf("VALUE_STRING") }
func SampleValueBoolTrue() *Sample    { return Samples.MustValueOf("VALUE_BOOL_TRUE") }
func SampleValueBoolFalse() *Sample   { return Samples.MustValueOf("VALUE_BOOL_FALSE") }
func SampleValueFloat() *Sample       { return Samples.MustValueOf("VALUE_FLOAT") }
func SampleValueNull() *Sample        { return Samples.MustValueOf("VALUE_NULL") }
func SampleValueEmptyString() *Sample { return Samples.MustValueOf("VALUE_EMPTY_STRING") }
func SampleValueEquals1() *Sample     { return Samples.MustValueOf("VALUE_EQUALS_1") }
func SampleValueEquals2() *Sample     { return Samples.MustValueOf("VALUE_EQUALS_2") }
func SampleScalarExpression() *Sample { return Samples.MustValueOf("SCALAR_EXPRESSION") }
func SampleConst() *Sample            { return Samples.MustValueOf("CONST") }
func SamplePublicConst() *Sample      { return Samples.MustValueOf("PUBLIC_CONST") }
func SamplePrivateConst() *Sample     { return Samples.MustValueOf("PRIVATE_CONST") }
func SampleProtectedConst() *Sample   { return Samples.MustValueOf("PROTECTED_CONST") }
func SampleLangCodes() *Sample        { return Samples.MustValueOf("LANG_CODES") }
func SampleCountryCodes() *Sample     { return Samples.MustValueOf("COUNTRY_CODES") }

// ExtendedDeclaration extends ExampleEnum with one constant of its own.
var ExtendedDeclaration = SampleDeclaration.Extend("EnumExtended",
	enum.Const("VALUE_EXTENDED", "extended"),
)

// Extended is an EnumExtended constant.
type Extended struct{ enum.Base }

// Extendeds is the EnumExtended registry.
var Extendeds = enum.New[Extended](ExtendedDeclaration)

func ExtendedValueExtended() *Extended { return Extendeds.MustValueOf("VALUE_EXTENDED") }
