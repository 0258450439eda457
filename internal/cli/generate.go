package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlorenz/buildstamp/pkg/errors"
	"github.com/mlorenz/buildstamp/pkg/gen"
	"github.com/mlorenz/buildstamp/pkg/stamp"
	"github.com/mlorenz/buildstamp/pkg/toolchain"
)

// generateCommand creates the generate command, the go:generate entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		output     string
		pkgName    string
		prefix     string
		stampsStr  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Go source file with build-time constants",
		Long: `Generate a Go source file with build-time constants.

The generate command captures the current moment and the Go toolchain
version, renders each requested stamp as a literal Go expression, and
writes a gofmt-clean generated file. Capture happens exactly once per run,
so every constant in one file describes the same instant and toolchain.

Any capture or parse failure aborts with a non-zero exit so the enclosing
build does not produce an artifact with missing or misleading constants.

Intended use is a go:generate directive:

	//go:generate buildstamp generate -o stamp_gen.go

The generated package name defaults to $GOPACKAGE, which go generate sets
automatically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.File = output
			}
			if cmd.Flags().Changed("package") {
				cfg.Output.Package = pkgName
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Output.Prefix = prefix
			}
			if cmd.Flags().Changed("stamps") {
				cfg.Stamps.Names = strings.Split(stampsStr, ",")
			}
			return c.runGenerate(withLogger(cmd.Context(), c.Logger), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+DefaultConfigFile+" if present)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the generated file")
	cmd.Flags().StringVarP(&pkgName, "package", "p", "", "package clause of the generated file (default $GOPACKAGE)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "identifier prefix for generated declarations")
	cmd.Flags().StringVar(&stampsStr, "stamps", "", "comma-separated stamp shapes (see 'buildstamp stamps')")

	return cmd
}

// runGenerate executes the capture-then-emit pipeline and writes the file.
func (c *CLI) runGenerate(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	shapes, err := cfg.Shapes()
	if err != nil {
		return err
	}
	if cfg.Output.Package == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "no package name: set --package or run under go generate")
	}

	in, v, err := capture(ctx, logger, shapes)
	if err != nil {
		return err
	}

	src, err := gen.Render(gen.FileOptions{
		Package: cfg.Output.Package,
		Prefix:  cfg.Output.Prefix,
		Shapes:  shapes,
	}, in, v)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(cfg.Output.File, src); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Wrote %s (%d stamps)", cfg.Output.File, len(shapes)))
	return nil
}

// capture runs only the pipelines the requested shapes draw from. Both
// pipelines are process-memoized, so repeated commands in one run observe
// identical values.
func capture(ctx context.Context, logger *log.Logger, shapes []gen.Shape) (stamp.Instant, toolchain.Version, error) {
	var needInstant, needVersion bool
	for _, s := range shapes {
		if s.NeedsVersion() {
			needVersion = true
		} else {
			needInstant = true
		}
	}

	var in stamp.Instant
	var v toolchain.Version
	var err error

	if needInstant {
		if in, err = stamp.Capture(); err != nil {
			return stamp.Instant{}, toolchain.Version{}, err
		}
		logger.Debug("captured build instant", "datetime", in.DateTimeString(), "unix", in.Unix())
	}
	if needVersion {
		if v, err = toolchain.Capture(ctx); err != nil {
			return stamp.Instant{}, toolchain.Version{}, err
		}
		logger.Debug("captured toolchain version", "version", v.String())
	}
	return in, v, nil
}
