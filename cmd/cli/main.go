package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type options struct {
	debug      bool
	configPath string
	csvPath    string
	workers    int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lilmiss [INPUT]",
		Short: "lil tool for MIS uses",
		Long: `Decides whether the center of a 3x7 tile belongs to the maximal independent set of its column.

With an INPUT file holding seven lines of three symbols ('#', '.' or '?'), prints 1 when
the center must be included and 0 otherwise. Without INPUT, every one of the 2^21
configurations over {#, .} is evaluated and the verdicts are tallied.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.debug)
			if len(args) == 1 {
				return runTile(stdout, logger, args[0])
			}
			return runEnumeration(cmd, stdout, logger, opts)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Turn debugging information on")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file (workers, chunkSize, color)")
	rootCmd.Flags().StringVar(&opts.csvPath, "csv", "", "Write the enumeration tally to this CSV file")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of enumeration workers; overrides the config file")

	rootCmd.AddCommand(newVerifyCmd(stdout, stderr, opts))
	return rootCmd
}

func newLogger(stderr io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
