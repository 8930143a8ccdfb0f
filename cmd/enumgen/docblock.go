package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enumcore/pkg/enum/enumdoc"
)

func newDocblockCmd(a *app) *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "docblock",
		Short: "Print a docblock listing one static accessor per constant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := t.load(cmd.Context())
			if err != nil {
				return err
			}
			enums, err := t.selected(f)
			if err != nil {
				return err
			}
			decls, err := f.Declarations()
			if err != nil {
				return err
			}
			for i, e := range enums {
				if len(enums) > 1 {
					if i > 0 {
						fmt.Fprintln(a.stdout)
					}
					fmt.Fprintf(a.stdout, "%s:\n", e.Name)
				}
				if err := enumdoc.Write(a.stdout, decls[e.Name]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	t.bind(cmd)
	return cmd
}
