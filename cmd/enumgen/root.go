package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"enumcore/internal/config"
	"enumcore/internal/introspect"
	"enumcore/internal/logging"
	"enumcore/internal/manifest"
	"enumcore/pkg/enum"
)

// app carries state shared by subcommands once the root pre-run has loaded
// the configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "enumgen",
		Short:         "Generate and inspect enum declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfig+" or "+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newGenerateCmd(a), newDocblockCmd(a), newListCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.Install(a.stderr, cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// target is the common --manifest / --source selection of the subcommands.
type target struct {
	manifest string
	source   string
	pattern  string
	typeName string
}

func (t *target) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.manifest, "manifest", "", "YAML manifest describing the enums")
	cmd.Flags().StringVar(&t.source, "source", "", "directory of a Go package declaring typed constants")
	cmd.Flags().StringVar(&t.pattern, "pattern", ".", "package pattern within --source")
	cmd.Flags().StringVar(&t.typeName, "type", "", "enum name (manifest) or constant type (source)")
	cmd.MarkFlagsMutuallyExclusive("manifest", "source")
	cmd.MarkFlagsOneRequired("manifest", "source")
}

// load returns a resolved manifest. Source targets are wrapped in a
// single-enum manifest so every subcommand works on the same shape.
func (t *target) load(ctx context.Context) (*manifest.File, error) {
	if t.source != "" {
		if t.typeName == "" {
			return nil, fmt.Errorf("--type is required with --source")
		}
		res, err := introspect.Load(ctx, t.source, t.pattern, t.typeName)
		if err != nil {
			return nil, err
		}
		return fromResult(res), nil
	}
	f, err := manifest.Load(t.manifest)
	if err != nil {
		return nil, err
	}
	if err := f.Resolve(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

func fromResult(res *introspect.Result) *manifest.File {
	e := &manifest.Enum{Name: res.Type, Type: res.Type + "Enum", Var: res.Type + "Enums"}
	for _, c := range res.Constants {
		e.Constants = append(e.Constants, enum.Constant{Name: c.Name, Value: c.Value, Private: c.Private})
	}
	return &manifest.File{Package: res.Package, Enums: []*manifest.Enum{e}}
}

// selected returns the enums named by --type, or all of them.
func (t *target) selected(f *manifest.File) ([]*manifest.Enum, error) {
	if t.typeName == "" || t.source != "" {
		return f.Enums, nil
	}
	e, ok := f.Find(t.typeName)
	if !ok {
		return nil, fmt.Errorf("enum %s not found in %s", t.typeName, t.manifest)
	}
	return []*manifest.Enum{e}, nil
}

func defaultOutPath(dir, name, suffix string) string {
	return filepath.Join(dir, strings.ToLower(name)+suffix)
}

func writeFile(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
