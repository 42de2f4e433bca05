package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/limaJavier/lilmiss/pkg/enumeration"
	"github.com/limaJavier/lilmiss/pkg/model"
	"github.com/spf13/cobra"
)

func runEnumeration(cmd *cobra.Command, stdout io.Writer, logger *slog.Logger, opts *options) error {
	config, err := enumeration.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		config.Workers = opts.workers
	}
	logger.Debug("enumerating configurations", "configurations", enumeration.Configurations, "workers", config.Workers, "chunkSize", config.ChunkSize)

	start := time.Now()
	enumerator := enumeration.NewEnumerator(config, model.NewTileValidator(), logger)
	tally, err := enumerator.Enumerate(cmd.Context())
	if err != nil {
		return fmt.Errorf("an error occurred during enumeration: %w", err)
	}
	logger.Debug("enumeration done", "duration", time.Since(start).Round(time.Millisecond))

	fmt.Fprintf(stdout, "MustInclude: %d\n", tally.Included)
	fmt.Fprintf(stdout, "MustExclude: %d\n", tally.Excluded)
	for _, rule := range model.Rules() {
		fmt.Fprintf(stdout, "%v: %d\n", rule, tally.PerRule[rule])
	}

	if opts.csvPath == "" {
		return nil
	}
	file, err := os.Create(opts.csvPath)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()
	return tally.WriteCSV(file)
}
