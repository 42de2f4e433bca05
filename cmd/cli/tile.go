package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/limaJavier/lilmiss/pkg/model"
)

func runTile(stdout io.Writer, logger *slog.Logger, filename string) error {
	logger.Debug("reading file", "path", filename)
	contents, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
	logger.Debug("loaded tile", "rows", len(lines), "columns", len([]rune(strings.TrimSuffix(lines[0], "\r"))))
	logger.Debug("tile contents", "contents", string(contents))

	tile, err := model.LoadTile(string(contents))
	if err != nil {
		return err
	}

	status := model.NewTileValidator().Validate(tile)
	fmt.Fprintln(stdout, status)
	return nil
}
