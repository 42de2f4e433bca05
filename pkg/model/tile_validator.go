package model

// TileValidator decides, for each cell of the grid, whether it belongs to the maximal independent set of its column by looking only at its 3x7 neighborhood
type TileValidator interface {
	// Returns the verdict over the tile's center
	Validate(tile Tile) Status

	// Returns the verdict over the tile's center along with the rule that produced it
	Explain(tile Tile) (Status, Rule)
}

func NewTileValidator() TileValidator {
	return &tileValidatorStandard{}
}
