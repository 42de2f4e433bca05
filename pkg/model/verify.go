package model

import "fmt"

type ViolationKind uint8

const (
	Adjacent  ViolationKind = iota // Two vertically adjacent squares are both included
	Uncovered                      // An excluded square has no included vertical neighbor
)

func (kind ViolationKind) String() string {
	switch kind {
	case Adjacent:
		return "adjacent"
	case Uncovered:
		return "uncovered"
	default:
		return fmt.Sprintf("violation(%d)", uint8(kind))
	}
}

type Violation struct {
	Column int
	Row    int
	Kind   ViolationKind
}

func (violation Violation) String() string {
	return fmt.Sprintf("column %d, row %d: %v", violation.Column, violation.Row, violation.Kind)
}

// VerifyColumns checks that the included squares of every column (statuses[x][y], columns wrapping vertically) form a maximal independent set of that column.
// An adjacent pair is reported once, at its upper row.
func VerifyColumns(statuses [][]Status) []Violation {
	violations := make([]Violation, 0)
	for x, column := range statuses {
		height := len(column)
		for y, status := range column {
			up := column[wrap(y-1, height)]
			down := column[wrap(y+1, height)]

			// Check that:
			// - Included squares are not followed by another included square (independence)
			// - Excluded squares have at least one included neighbor (maximality)
			if status == MustInclude && down == MustInclude {
				violations = append(violations, Violation{Column: x, Row: y, Kind: Adjacent})
			} else if status == MustExclude && up == MustExclude && down == MustExclude {
				violations = append(violations, Violation{Column: x, Row: y, Kind: Uncovered})
			}
		}
	}
	return violations
}
