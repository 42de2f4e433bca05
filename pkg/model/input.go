package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Splits contents into lines, dropping a single trailing newline and any carriage return
func splitLines(contents string) []string {
	contents = strings.TrimSuffix(contents, "\n")
	if contents == "" {
		return []string{}
	}
	return lo.Map(strings.Split(contents, "\n"), func(line string, _ int) string {
		return strings.TrimSuffix(line, "\r")
	})
}

// LoadTile builds a tile from seven lines of three symbols each, lines being rows and characters being columns
func LoadTile(contents string) (Tile, error) {
	var tile Tile

	lines := splitLines(contents)
	if len(lines) != TileHeight {
		return Tile{}, fmt.Errorf("%w: tile must have %d rows, got %d", ErrInvalidShape, TileHeight, len(lines))
	}

	for y, line := range lines {
		symbols := []rune(line)
		if len(symbols) != TileWidth {
			return Tile{}, fmt.Errorf("%w: row %d must have %d columns, got %d", ErrInvalidShape, y, TileWidth, len(symbols))
		}
		for x, symbol := range symbols {
			square, err := ParseSquare(symbol)
			if err != nil {
				return Tile{}, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			tile[x][y] = square
		}
	}

	return tile, nil
}

// TileFromBinary builds a tile from 21 binary digits laid out row-major, where '1' stands for '#' and '0' for '.'
func TileFromBinary(digits string) (Tile, error) {
	var tile Tile

	symbols := []rune(digits)
	if len(symbols) != TileSize {
		return Tile{}, fmt.Errorf("%w: packed tile must have %d digits, got %d", ErrInvalidShape, TileSize, len(symbols))
	}

	for i, digit := range symbols {
		var symbol rune
		switch digit {
		case '1':
			symbol = '#'
		case '0':
			symbol = '.'
		default:
			return Tile{}, fmt.Errorf("%w: %c", ErrInvalidDigit, digit)
		}
		square, err := ParseSquare(symbol)
		if err != nil {
			return Tile{}, err
		}
		tile[i%TileWidth][i/TileWidth] = square
	}

	return tile, nil
}

// TileFromBits is the numeric counterpart of TileFromBinary: position i is read from bit 20-i of packed
func TileFromBits(packed uint32) Tile {
	var tile Tile
	for i := range TileSize {
		if packed>>(TileSize-1-i)&1 == 1 {
			tile[i%TileWidth][i/TileWidth] = Occupied
		} else {
			tile[i%TileWidth][i/TileWidth] = Empty
		}
	}
	return tile
}

// GridFromText builds a rectangular grid with at least three rows from lines of symbols
func GridFromText(contents string) (Grid, error) {
	lines := splitLines(contents)
	if len(lines) < minGridHeight {
		return Grid{}, fmt.Errorf("%w: grid must have at least %d rows, got %d", ErrInvalidShape, minGridHeight, len(lines))
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return Grid{}, fmt.Errorf("%w: grid rows must not be empty", ErrInvalidShape)
	}
	if row, ok := lo.Find(lo.Range(len(lines)), func(y int) bool { return len([]rune(lines[y])) != width }); ok {
		return Grid{}, fmt.Errorf("%w: row %d must have %d columns, got %d", ErrInvalidShape, row, width, len([]rune(lines[row])))
	}

	grid := newGrid(width, len(lines))
	for y, line := range lines {
		for x, symbol := range []rune(line) {
			square, err := ParseSquare(symbol)
			if err != nil {
				return Grid{}, fmt.Errorf("row %d, column %d: %w", y, x, err)
			}
			grid.cells[x][y] = square
		}
	}

	return grid, nil
}
