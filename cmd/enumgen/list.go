package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"enumcore/pkg/enum"
)

func newListCmd(a *app) *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ordinal, name and value of every constant",
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
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, e := range enums {
				fmt.Fprintf(w, "%s\n", e.Name)
				for i, c := range decls[e.Name].Constants().Entries() {
					name := c.Name
					if c.Private {
						name += " (private)"
					}
					fmt.Fprintf(w, "%d\t%s\t%s\n", i, name, enum.Format(c.Value))
				}
			}
			return w.Flush()
		},
	}
	t.bind(cmd)
	return cmd
}
