// Package manifest reads YAML descriptions of declaring types. Constant order
// in the file is the declaration order of the resulting enum.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"enumcore/internal/introspect"
	"enumcore/pkg/enum"
)

// File is a parsed manifest.
type File struct {
	Package string
	Enums   []*Enum

	// dir is the manifest directory; source paths resolve against it.
	dir string
}

// Enum describes one declaring type.
type Enum struct {
	// Name is the declaring type name used by the registry.
	Name string
	// Type is the Go instance struct name. Defaults to Name.
	Type string
	// Var is the registry variable name. Defaults to Type+"s".
	Var     string
	Doc     string
	Extends string
	// Source, when set, discovers the constants from a Go package instead of
	// listing them inline.
	Source    *Source
	Constants []enum.Constant
}

// Source points at typed Go constants.
type Source struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
	Type    string `yaml:"type"`
}

type rawFile struct {
	Package string    `yaml:"package"`
	Enums   []rawEnum `yaml:"enums"`
}

type rawEnum struct {
	Name      string    `yaml:"name"`
	Type      string    `yaml:"type"`
	Var       string    `yaml:"var"`
	Doc       string    `yaml:"doc"`
	Extends   string    `yaml:"extends"`
	Private   []string  `yaml:"private"`
	Source    *Source   `yaml:"source"`
	Constants yaml.Node `yaml:"constants"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	//nolint:gosec // enumgen reads caller-provided manifest paths.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	f := &File{Package: raw.Package, dir: "."}
	for i := range raw.Enums {
		e, err := convert(&raw.Enums[i])
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, e)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func convert(r *rawEnum) (*Enum, error) {
	e := &Enum{
		Name:    r.Name,
		Type:    r.Type,
		Var:     r.Var,
		Doc:     r.Doc,
		Extends: r.Extends,
		Source:  r.Source,
	}
	if e.Type == "" {
		e.Type = e.Name
	}
	if e.Var == "" {
		e.Var = e.Type + "s"
	}
	private := make(map[string]bool, len(r.Private))
	for _, name := range r.Private {
		private[name] = true
	}

	switch r.Constants.Kind {
	case 0:
	case yaml.MappingNode:
		for i := 0; i+1 < len(r.Constants.Content); i += 2 {
			key, val := r.Constants.Content[i], r.Constants.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("enum %s: line %d: constant name must be a scalar", e.Name, key.Line)
			}
			v, err := nodeValue(val)
			if err != nil {
				return nil, fmt.Errorf("enum %s: constant %s: %w", e.Name, key.Value, err)
			}
			e.Constants = append(e.Constants, enum.Constant{Name: key.Value, Value: v, Private: private[key.Value]})
			delete(private, key.Value)
		}
	default:
		return nil, fmt.Errorf("enum %s: line %d: constants must be a mapping", e.Name, r.Constants.Line)
	}
	for name := range private {
		return nil, fmt.Errorf("enum %s: private constant %s is not declared", e.Name, name)
	}
	return e, nil
}

// nodeValue converts a YAML node to the enum value model, keeping mapping
// order.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case yaml.SequenceNode:
		list := make(enum.List, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		m := make(enum.Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: map keys must be scalars", n.Content[i].Line)
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, enum.Pair{Key: n.Content[i].Value, Value: v})
		}
		return m, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}

// Validate checks names, references and inheritance.
func (f *File) Validate() error {
	if f.Package != "" && !token.IsIdentifier(f.Package) {
		return fmt.Errorf("manifest: invalid package name %q", f.Package)
	}
	if len(f.Enums) == 0 {
		return errors.New("manifest: no enums declared")
	}
	seen := make(map[string]*Enum, len(f.Enums))
	for _, e := range f.Enums {
		for _, ident := range []string{e.Name, e.Type, e.Var} {
			if !token.IsIdentifier(ident) {
				return fmt.Errorf("manifest: enum %q: invalid identifier %q", e.Name, ident)
			}
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("manifest: enum %s declared twice", e.Name)
		}
		seen[e.Name] = e
		if e.Source != nil {
			if len(e.Constants) > 0 {
				return fmt.Errorf("manifest: enum %s: source and constants are exclusive", e.Name)
			}
			if e.Source.Type == "" {
				return fmt.Errorf("manifest: enum %s: source type is required", e.Name)
			}
		}
	}
	for _, e := range f.Enums {
		if err := f.checkAncestry(e, seen); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) checkAncestry(e *Enum, byName map[string]*Enum) error {
	visited := map[string]bool{e.Name: true}
	for cur := e; cur.Extends != ""; {
		parent, ok := byName[cur.Extends]
		if !ok {
			return fmt.Errorf("manifest: enum %s extends unknown %s", cur.Name, cur.Extends)
		}
		if visited[parent.Name] {
			return fmt.Errorf("manifest: enum %s: inheritance cycle through %s", e.Name, parent.Name)
		}
		visited[parent.Name] = true
		cur = parent
	}
	return nil
}

// Find returns the enum named name.
func (f *File) Find(name string) (*Enum, bool) {
	for _, e := range f.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Resolve loads the constants of every source-backed enum.
func (f *File) Resolve(ctx context.Context) error {
	for _, e := range f.Enums {
		if e.Source == nil || len(e.Constants) > 0 {
			continue
		}
		dir := e.Source.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(f.dir, dir)
		}
		res, err := introspect.Load(ctx, dir, e.Source.Pattern, e.Source.Type)
		if err != nil {
			return fmt.Errorf("manifest: enum %s: %w", e.Name, err)
		}
		for _, c := range res.Constants {
			e.Constants = append(e.Constants, enum.Constant{Name: c.Name, Value: c.Value, Private: c.Private})
		}
	}
	return nil
}

// Declarations builds one unregistered declaration per enum, linked by
// inheritance, and validates each of them. Source-backed enums must be
// resolved first.
func (f *File) Declarations() (map[string]*enum.Declaration, error) {
	out := make(map[string]*enum.Declaration, len(f.Enums))
	var build func(e *Enum) (*enum.Declaration, error)
	build = func(e *Enum) (*enum.Declaration, error) {
		if d, ok := out[e.Name]; ok {
			return d, nil
		}
		var parent *enum.Declaration
		if e.Extends != "" {
			pe, _ := f.Find(e.Extends)
			p, err := build(pe)
			if err != nil {
				return nil, err
			}
			parent = p
		}
		d := enum.NewDeclaration(e.Name, parent, e.Constants)
		if err := d.Validate(); err != nil {
			return nil, err
		}
		out[e.Name] = d
		return d, nil
	}
	for _, e := range f.Enums {
		if _, err := build(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}
