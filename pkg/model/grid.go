package model

import "strings"

const minGridHeight = 3 // Shortest column cycle where up and down neighbors differ

// Grid is a finite periodic grid: reads past any border wrap around to the opposite one
type Grid struct {
	width  int
	height int
	cells  [][]Square // cells[x][y]
}

func newGrid(width, height int) Grid {
	cells := make([][]Square, width)
	for x := range cells {
		cells[x] = make([]Square, height)
	}
	return Grid{width: width, height: height, cells: cells}
}

func (grid Grid) Width() int  { return grid.width }
func (grid Grid) Height() int { return grid.height }

func (grid Grid) Get(x, y int) Square {
	return grid.cells[wrap(x, grid.width)][wrap(y, grid.height)]
}

// Window returns the tile whose center is the grid's (x, y) square
func (grid Grid) Window(x, y int) Tile {
	var tile Tile
	originX, originY := x-Center[0], y-Center[1]
	for dx := range TileWidth {
		for dy := range TileHeight {
			tile[dx][dy] = grid.Get(originX+dx, originY+dy)
		}
	}
	return tile
}

// Resolve applies the validator to every square of the grid, the result being indexed as statuses[x][y]
func (grid Grid) Resolve(validator TileValidator) [][]Status {
	statuses := make([][]Status, grid.width)
	for x := range grid.width {
		statuses[x] = make([]Status, grid.height)
		for y := range grid.height {
			statuses[x][y] = validator.Validate(grid.Window(x, y))
		}
	}
	return statuses
}

func (grid Grid) String() string {
	var builder strings.Builder
	for y := range grid.height {
		for x := range grid.width {
			builder.WriteRune(grid.cells[x][y].Rune())
		}
		if y < grid.height-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

func wrap(value, size int) int {
	return ((value % size) + size) % size
}
