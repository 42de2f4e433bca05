package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare = errors.New("invalid square in the input")
	ErrInvalidDigit  = errors.New("invalid digit in the packed tile")
	ErrInvalidShape  = errors.New("invalid shape")
)

// Square is the state of a single cell of the grid
type Square uint8

const (
	Empty    Square = iota // "." (not in the independent set)
	Occupied               // "#" (in the independent set)
	Unknown                // "?" (not determined yet)
)

var squareSymbols = map[Square]rune{
	Empty:    '.',
	Occupied: '#',
	Unknown:  '?',
}

func ParseSquare(symbol rune) (Square, error) {
	switch symbol {
	case '#':
		return Occupied, nil
	case '.':
		return Empty, nil
	case '?':
		return Unknown, nil
	default:
		return Empty, fmt.Errorf("%w: %c", ErrInvalidSquare, symbol)
	}
}

func (square Square) Rune() rune {
	symbol, ok := squareSymbols[square]
	if !ok {
		panic(fmt.Sprintf("unknown square value: %d", uint8(square)))
	}
	return symbol
}

func (square Square) String() string {
	return string(square.Rune())
}

// Status is the verdict over a tile's center
type Status uint8

const (
	MustExclude Status = iota
	MustInclude
)

func (status Status) String() string {
	if status == MustInclude {
		return "1"
	}
	return "0"
}

// Rule identifies which step of the decision procedure produced a verdict
type Rule uint8

const (
	RuleOccupied      Rule = iota // Center is marked
	RuleCenterOfThree             // Center is the middle of an isolated vertical run of three
	RuleFalsyStreak               // Center lies on a long empty streak and has a marked right neighbor
	RuleDefault                   // No rule fired
	RuleCount
)

var ruleNames = [RuleCount]string{
	RuleOccupied:      "occupied",
	RuleCenterOfThree: "center-of-three",
	RuleFalsyStreak:   "falsy-streak",
	RuleDefault:       "default",
}

func (rule Rule) String() string {
	if rule >= RuleCount {
		return fmt.Sprintf("rule(%d)", uint8(rule))
	}
	return ruleNames[rule]
}

// Rules lists every rule in evaluation order
func Rules() []Rule {
	return []Rule{RuleOccupied, RuleCenterOfThree, RuleFalsyStreak, RuleDefault}
}
