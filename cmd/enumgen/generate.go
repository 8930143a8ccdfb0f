package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"enumcore/internal/codegen"
	"enumcore/internal/introspect"
	"enumcore/internal/manifest"
)

type generateOptions struct {
	manifests []string
	source    string
	pattern   string
	typeName  string
	out       string
	pkg       string
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write Go enum declarations with one accessor per constant",
		Example: `  enumgen generate --manifest palette.yaml --out palette_enum.go
  enumgen generate --manifest a.yaml --manifest b.yaml
  enumgen generate --source ./colors --type Color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.source != "" {
				return a.generateSource(cmd, opts)
			}
			return a.generateManifests(cmd, opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.manifests, "manifest", nil, "YAML manifest; repeat to generate several files")
	cmd.Flags().StringVar(&opts.source, "source", "", "directory of a Go package declaring typed constants")
	cmd.Flags().StringVar(&opts.pattern, "pattern", ".", "package pattern within --source")
	cmd.Flags().StringVar(&opts.typeName, "type", "", "constant type to wrap (with --source)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default derived from the input and output.suffix)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "override the generated package name")
	cmd.MarkFlagsMutuallyExclusive("manifest", "source")
	cmd.MarkFlagsOneRequired("manifest", "source")
	return cmd
}

func (a *app) generateManifests(cmd *cobra.Command, opts generateOptions) error {
	if opts.out != "" && len(opts.manifests) > 1 {
		return errors.New("--out cannot be combined with several --manifest flags")
	}
	cgOpts := codegen.Options{Package: opts.pkg, Header: a.cfg.Output.Header}

	g, ctx := errgroup.WithContext(cmd.Context())
	outputs := make([]string, len(opts.manifests))
	for i, path := range opts.manifests {
		out := opts.out
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + a.cfg.Output.Suffix
		}
		outputs[i] = out
		g.Go(func() error {
			f, err := manifest.Load(path)
			if err != nil {
				return err
			}
			if err := f.Resolve(ctx); err != nil {
				return err
			}
			code, err := codegen.FromManifest(f, cgOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := writeFile(out, code); err != nil {
				return err
			}
			a.logger.Debug("enum file generated", "manifest", path, "out", out, "enums", len(f.Enums))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, out := range outputs {
		fmt.Fprintf(a.stdout, "generated %s from %s\n", out, opts.manifests[i])
	}
	return nil
}

func (a *app) generateSource(cmd *cobra.Command, opts generateOptions) error {
	if opts.typeName == "" {
		return errors.New("--type is required with --source")
	}
	res, err := introspect.Load(cmd.Context(), opts.source, opts.pattern, opts.typeName)
	if err != nil {
		return err
	}
	code, err := codegen.FromSource(res, codegen.Options{Package: opts.pkg, Header: a.cfg.Output.Header})
	if err != nil {
		return err
	}
	out := opts.out
	if out == "" {
		out = defaultOutPath(opts.source, opts.typeName, a.cfg.Output.Suffix)
	}
	if err := writeFile(out, code); err != nil {
		return err
	}
	a.logger.Debug("enum file generated", "source", opts.source, "type", opts.typeName, "out", out, "constants", len(res.Constants))
	fmt.Fprintf(a.stdout, "generated %s from %s.%s\n", out, res.PkgPath, opts.typeName)
	return nil
}
