// Package enumdoc renders documentation stubs listing one static accessor per
// constant of a declaring type.
package enumdoc

import (
	"fmt"
	"io"
	"strings"

	"enumcore/pkg/enum"
)

// declarer is satisfied by enum instances and *enum.Type registries.
type declarer interface {
	Declaration() *enum.Declaration
}

// DocBlock returns the docblock for target, which may be an enum instance, a
// registry, a *enum.Declaration or the name of a registered declaring type.
//
//	/**
//	 * @method static self TOP
//	 * @method static self NEW
//	 */
func DocBlock(target any) (string, error) {
	decl, err := resolve(target)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("/**\n")
	for _, name := range decl.Constants().Names() {
		fmt.Fprintf(&b, " * @method static self %s\n", name)
	}
	b.WriteString(" */\n")
	return b.String(), nil
}

// Write writes the docblock for target to w.
func Write(w io.Writer, target any) error {
	block, err := DocBlock(target)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, block)
	return err
}

func resolve(target any) (*enum.Declaration, error) {
	var decl *enum.Declaration
	switch v := target.(type) {
	case *enum.Declaration:
		decl = v
	case declarer:
		decl = v.Declaration()
	case string:
		decl, _ = enum.Lookup(v)
	}
	if decl == nil {
		return nil, &enum.Error{Kind: enum.KindInvalidArgument, Value: target}
	}
	return decl, nil
}
