// Package introspect discovers the typed constants of a Go package so they can
// back an enum declaration.
package introspect

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ErrTypeNotFound is returned when the requested type is not declared in the
// loaded package.
var ErrTypeNotFound = errors.New("introspect: type not found")

// Constant is one typed constant in source order.
type Constant struct {
	Name  string
	Value any
	Doc   string
	// Private is set for unexported constants.
	Private bool
}

// Result describes the constants declared with a single named type.
type Result struct {
	Package    string
	PkgPath    string
	Type       string
	Underlying string
	Constants  []Constant
}

// Names returns the constant names in source order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Constants))
	for i, c := range r.Constants {
		names[i] = c.Name
	}
	return names
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Load type-checks the package matching pattern in dir and collects every
// constant whose type is typeName. Files are visited in the order the build
// system lists them and declarations in source order within each file.
func Load(ctx context.Context, dir, pattern, typeName string) (*Result, error) {
	if pattern == "" {
		pattern = "."
	}
	cfg := &packages.Config{Context: ctx, Dir: dir, Mode: loadMode}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("introspect: load %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("introspect: expected a single package for %s, got %d", pattern, len(pkgs))
	}
	p := pkgs[0]
	if len(p.Errors) > 0 {
		msgs := make([]string, len(p.Errors))
		for i, e := range p.Errors {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("introspect: %s: %s", p.PkgPath, strings.Join(msgs, "; "))
	}
	return collect(p, typeName)
}

func collect(p *packages.Package, typeName string) (*Result, error) {
	obj, ok := p.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrTypeNotFound, p.PkgPath, typeName)
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsConstType == 0 {
		return nil, fmt.Errorf("introspect: %s.%s has no constant underlying type", p.PkgPath, typeName)
	}

	res := &Result{
		Package:    p.Name,
		PkgPath:    p.PkgPath,
		Type:       typeName,
		Underlying: basic.Name(),
	}
	for _, file := range p.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)
				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}
					c, ok := p.TypesInfo.Defs[ident].(*types.Const)
					if !ok || !types.Identical(c.Type(), obj.Type()) {
						continue
					}
					v, err := goValue(c.Val())
					if err != nil {
						return nil, fmt.Errorf("introspect: constant %s: %w", ident.Name, err)
					}
					res.Constants = append(res.Constants, Constant{
						Name:    ident.Name,
						Value:   v,
						Doc:     docText(gen, vs),
						Private: !ident.IsExported(),
					})
				}
			}
		}
	}
	if len(res.Constants) == 0 {
		return nil, fmt.Errorf("introspect: no constants of type %s.%s", p.PkgPath, typeName)
	}
	return res, nil
}

func goValue(v constant.Value) (any, error) {
	switch v.Kind() {
	case constant.Bool:
		return constant.BoolVal(v), nil
	case constant.String:
		return constant.StringVal(v), nil
	case constant.Int:
		if i, exact := constant.Int64Val(v); exact {
			return i, nil
		}
		return nil, fmt.Errorf("integer %s overflows int64", v.ExactString())
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported constant kind %s", v.Kind())
	}
}

func docText(gen *ast.GenDecl, vs *ast.ValueSpec) string {
	for _, g := range []*ast.CommentGroup{vs.Doc, vs.Comment} {
		if g != nil {
			return strings.TrimSpace(g.Text())
		}
	}
	if len(gen.Specs) == 1 && gen.Doc != nil {
		return strings.TrimSpace(gen.Doc.Text())
	}
	return ""
}
