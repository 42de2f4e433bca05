package model

import "github.com/samber/lo"

const streakLength = 4 // Empty squares (center included) needed for a falsy streak

// Middle column of a tile whose center is the middle of an isolated run of three
var threeTruesColumn = [TileHeight]Square{Empty, Empty, Occupied, Occupied, Occupied, Empty, Empty}

type tileValidatorStandard struct{}

func (validator *tileValidatorStandard) Validate(tile Tile) Status {
	status, _ := validator.Explain(tile)
	return status
}

// A cell outputs 1 when one of the following holds:
// - It is a #
// - It is the middle square of a vertical run of exactly three
// - It is part of a vertical streak of at least four .'s and has a # to its right
func (validator *tileValidatorStandard) Explain(tile Tile) (Status, Rule) {
	if tile.at(Center) == Occupied {
		return MustInclude, RuleOccupied
	} else if CenterOfThreeTruesColumn(tile) {
		return MustInclude, RuleCenterOfThree
	} else if tile.at(RightOfCenter) == Occupied && PartOfFalsyStreak(tile) {
		return MustInclude, RuleFalsyStreak
	}
	return MustExclude, RuleDefault
}

// ValidateTile returns the verdict of the standard validator over the tile's center
func ValidateTile(tile Tile) Status {
	return NewTileValidator().Validate(tile)
}

// CenterOfThreeTruesColumn checks whether the middle column reads ..###.. from top to bottom
func CenterOfThreeTruesColumn(tile Tile) bool {
	return tile.Column(Center[0]) == threeTruesColumn
}

// PartOfFalsyStreak checks whether any of the four 4-row spans of the middle column holds no occupied square.
// Unknown squares do not break a span.
func PartOfFalsyStreak(tile Tile) bool {
	column := tile.Column(Center[0])
	return lo.SomeBy(lo.Range(TileHeight-streakLength+1), func(shift int) bool {
		return lo.NoneBy(column[shift:shift+streakLength], func(square Square) bool {
			return square == Occupied
		})
	})
}
