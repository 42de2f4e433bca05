package model

import "strings"

const (
	TileWidth  = 3
	TileHeight = 7
	TileSize   = TileWidth * TileHeight
)

// Reference coordinates (x, y) inside a tile
var (
	Center        = [2]int{1, 3}
	RightOfCenter = [2]int{2, 3}
)

// Tile is the 3x7 neighborhood visible to a cell, indexed as tile[x][y]
type Tile [TileWidth][TileHeight]Square

func (tile Tile) Get(x, y int) Square {
	return tile[x][y]
}

func (tile Tile) at(coordinate [2]int) Square {
	return tile[coordinate[0]][coordinate[1]]
}

// Column returns the tile's x-th column from top to bottom
func (tile Tile) Column(x int) [TileHeight]Square {
	return tile[x]
}

func (tile Tile) String() string {
	var builder strings.Builder
	for y := range TileHeight {
		for x := range TileWidth {
			builder.WriteRune(tile[x][y].Rune())
		}
		if y < TileHeight-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
