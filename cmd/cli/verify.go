package main

import (
	"fmt"
	"io"
	"os"

	"github.com/limaJavier/lilmiss/internal/ui"
	"github.com/limaJavier/lilmiss/pkg/enumeration"
	"github.com/limaJavier/lilmiss/pkg/model"
	"github.com/spf13/cobra"
)

func newVerifyCmd(stdout, stderr io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify GRID",
		Short: "Apply the rule to every square of a periodic grid and check each column's independent set",
		Long: `Reads a rectangular grid of '#', '.' and '?' that wraps around in both directions, decides every
square from its own 3x7 neighborhood and prints the result as rows of 1's and 0's. Fails when
the 1's of some column are not a maximal independent set of that column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.debug)

			config, err := enumeration.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}

			logger.Debug("reading file", "path", args[0])
			contents, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read grid file: %w", err)
			}
			grid, err := model.GridFromText(string(contents))
			if err != nil {
				return err
			}
			logger.Debug("loaded grid", "width", grid.Width(), "height", grid.Height())
			logger.Debug("grid contents", "contents", grid.String())

			statuses := grid.Resolve(model.NewTileValidator())
			violations := model.VerifyColumns(statuses)

			out, _ := stdout.(*os.File)
			renderer := ui.NewRenderer(ui.ShouldUseColor(config.Color, out))
			fmt.Fprintln(stdout, renderer.Statuses(statuses))
			for _, violation := range violations {
				fmt.Fprintln(stdout, renderer.Violation(violation))
			}

			if len(violations) > 0 {
				return fmt.Errorf("verification failed: %d violations", len(violations))
			}
			return nil
		},
	}
}
