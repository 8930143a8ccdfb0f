// Package codegen emits Go source declaring enums: the declaration table, the
// registry variable, the instance struct and one accessor per constant.
package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"math"
	"strconv"
	"strings"

	"enumcore/internal/introspect"
	"enumcore/internal/manifest"
	"enumcore/pkg/enum"
)

const generatedBy = "// Code generated by enumgen. DO NOT EDIT.\n"

const enumImport = "enumcore/pkg/enum"

// Options tunes the generated file.
type Options struct {
	// Package overrides the package clause.
	Package string
	// Header is emitted as a comment block above the generated marker.
	Header string
}

type decl struct {
	varName  string
	name     string
	typ      string
	registry string
	doc      string
	parent   string
	own      []constLine
	names    []string
}

type constLine struct {
	name    string
	expr    string
	private bool
}

// FromManifest renders every enum of f, in manifest order. Source-backed
// enums must already be resolved.
func FromManifest(f *manifest.File, opts Options) ([]byte, error) {
	tables, err := f.Declarations()
	if err != nil {
		return nil, err
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = f.Package
	}
	if pkg == "" {
		return nil, errors.New("codegen: package name required")
	}

	decls := make([]decl, 0, len(f.Enums))
	for _, e := range f.Enums {
		d := decl{
			varName:  e.Type + "Declaration",
			name:     e.Name,
			typ:      e.Type,
			registry: e.Var,
			doc:      e.Doc,
			names:    tables[e.Name].Constants().Names(),
		}
		if e.Extends != "" {
			parent, _ := f.Find(e.Extends)
			d.parent = parent.Type + "Declaration"
		}
		for _, c := range e.Constants {
			expr, err := literal(c.Value)
			if err != nil {
				return nil, fmt.Errorf("codegen: %s.%s: %w", e.Name, c.Name, err)
			}
			d.own = append(d.own, constLine{name: c.Name, expr: expr, private: c.Private})
		}
		decls = append(decls, d)
	}
	return render(pkg, opts.Header, decls, nil)
}

// FromSource renders an enum over the typed constants in res. The constants
// are referenced by identifier, so the generated file belongs in the package
// that declares them. The instance type is named <Type>Enum and the constant
// type gains an Enum method resolving a value to its canonical instance.
func FromSource(res *introspect.Result, opts Options) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = res.Package
	}
	instance := res.Type + "Enum"
	d := decl{
		varName:  res.Type + "Declaration",
		name:     res.Type,
		typ:      instance,
		registry: instance + "s",
		doc:      fmt.Sprintf("%s is the enum view of %s constants.", instance, res.Type),
		names:    res.Names(),
	}
	for _, c := range res.Constants {
		d.own = append(d.own, constLine{name: c.Name, expr: c.Name, private: c.Private})
	}
	bridge := func(b *strings.Builder) {
		fmt.Fprintf(b, "// Enum returns the first declared %s whose value is c.\n", instance)
		fmt.Fprintf(b, "func (c %s) Enum() (*%s, error) { return %s.FromValue(c) }\n\n", res.Type, instance, d.registry)
	}
	return render(pkg, opts.Header, []decl{d}, bridge)
}

func render(pkg, header string, decls []decl, extra func(*strings.Builder)) ([]byte, error) {
	var body strings.Builder
	for _, d := range decls {
		if err := writeDecl(&body, d); err != nil {
			return nil, err
		}
	}
	if extra != nil {
		extra(&body)
	}

	var file strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(header), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(&file, "// %s\n", strings.TrimPrefix(strings.TrimPrefix(line, "//"), " "))
		}
	}
	if strings.TrimSpace(header) != "" {
		file.WriteString("\n")
	}
	file.WriteString(generatedBy)
	fmt.Fprintf(&file, "\npackage %s\n\n", pkg)
	fmt.Fprintf(&file, "import %q\n\n", enumImport)
	file.WriteString(body.String())

	formatted, err := format.Source([]byte(file.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

func writeDecl(body *strings.Builder, d decl) error {
	fmt.Fprintf(body, "// %s declares the %s constants.\n", d.varName, d.name)
	if d.parent != "" {
		fmt.Fprintf(body, "var %s = %s.Extend(%q,\n", d.varName, d.parent, d.name)
	} else {
		fmt.Fprintf(body, "var %s = enum.Declare(%q,\n", d.varName, d.name)
	}
	for _, c := range d.own {
		ctor := "Const"
		if c.private {
			ctor = "PrivateConst"
		}
		fmt.Fprintf(body, "\tenum.%s(%q, %s),\n", ctor, c.name, c.expr)
	}
	body.WriteString(")\n\n")

	doc := d.doc
	if doc == "" {
		doc = fmt.Sprintf("%s is a %s constant.", d.typ, d.name)
	}
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(body, "// %s\n", line)
	}
	fmt.Fprintf(body, "type %s struct{ enum.Base }\n\n", d.typ)
	fmt.Fprintf(body, "// %s is the %s registry.\n", d.registry, d.name)
	fmt.Fprintf(body, "var %s = enum.New[%s](%s)\n\n", d.registry, d.typ, d.varName)

	seen := make(map[string]string, len(d.names))
	for _, name := range d.names {
		fn := d.typ + ToCamel(name)
		if prev, dup := seen[fn]; dup {
			return fmt.Errorf("codegen: %s: constants %s and %s both map to %s", d.name, prev, name, fn)
		}
		seen[fn] = name
		fmt.Fprintf(body, "func %s() *%s { return %s.MustValueOf(%q) }\n", fn, d.typ, d.registry, name)
	}
	body.WriteString("\n")
	return nil
}

// literal renders a manifest value as a Go expression.
func literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("non-finite float %v", x)
		}
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, nil
	case string:
		return strconv.Quote(x), nil
	case enum.List:
		parts := make([]string, len(x))
		for i, item := range x {
			s, err := literal(item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "enum.List{" + strings.Join(parts, ", ") + "}", nil
	case enum.Map:
		parts := make([]string, len(x))
		for i, p := range x {
			s, err := literal(p.Value)
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("{Key: %q, Value: %s}", p.Key, s)
		}
		return "enum.Map{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// ToCamel converts a constant name such as VALUE_INT_1000 or api-url to a Go
// identifier suffix (ValueInt1000, APIURL).
func ToCamel(input string) string {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for i, p := range parts {
		parts[i] = applyInitialisms(capitalize(p))
	}
	return strings.Join(parts, "")
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	if s == strings.ToUpper(s) {
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func applyInitialisms(part string) string {
	switch strings.ToLower(part) {
	case "id":
		return "ID"
	case "api":
		return "API"
	case "url":
		return "URL"
	case "json":
		return "JSON"
	case "http":
		return "HTTP"
	default:
		return part
	}
}
