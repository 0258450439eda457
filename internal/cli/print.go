package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlorenz/buildstamp/pkg/gen"
)

// printCommand creates the print command for single-value output.
func (c *CLI) printCommand() *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:   "print <shape>",
		Short: "Print a single captured value to stdout",
		Long: `Print a single captured value to stdout.

The print command runs the same capture pipeline as generate but emits one
value as plain text, for Makefile and ldflags pipelines:

	go build -ldflags "-X main.builtAt=$(buildstamp print datetime_str)"

With --literal the value is printed as the Go expression generate would
embed instead of plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := gen.ParseShape(args[0])
			if err != nil {
				return err
			}

			in, v, err := capture(cmd.Context(), c.Logger, []gen.Shape{shape})
			if err != nil {
				return err
			}

			render := gen.Value
			if literal {
				render = gen.Literal
			}
			out, err := render(shape, in, v)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&literal, "literal", false, "print the Go literal expression instead of the plain value")

	return cmd
}

// stampsCommand creates the stamps command listing the supported shapes.
func (c *CLI) stampsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stamps",
		Short: "List the supported stamp shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range gen.AllShapes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", s.String(), s.Describe())
			}
			return nil
		},
	}
}
