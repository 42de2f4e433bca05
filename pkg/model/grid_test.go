package model

import (
	"strings"
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/require"
)

func checkerboard(width, height int) string {
	rows := make([]string, height)
	for y := range height {
		var builder strings.Builder
		for x := range width {
			if (x+y)%2 == 0 {
				builder.WriteByte('#')
			} else {
				builder.WriteByte('.')
			}
		}
		rows[y] = builder.String()
	}
	return strings.Join(rows, "\n")
}

func TestGridWindow(t *testing.T) {
	grid, err := GridFromText(threeTile)
	require.NoError(t, err)

	t.Run("Centered window equals the grid", func(t *testing.T) {
		g := gomega.NewWithT(t)
		g.Expect(grid.Window(1, 3)).To(gomega.Equal(mustLoadTile(t, threeTile)))
	})

	t.Run("Windows wrap around", func(t *testing.T) {
		g := gomega.NewWithT(t)
		window := grid.Window(0, 0)

		// Column 1 of the window is column 0 of the grid, starting three rows above row 0
		g.Expect(window.Get(1, 0)).To(gomega.Equal(grid.Get(0, 4)))
		g.Expect(window.Get(0, 3)).To(gomega.Equal(grid.Get(2, 0)))
		g.Expect(window.Get(2, 6)).To(gomega.Equal(grid.Get(1, 3)))
		g.Expect(window.Get(2, 6)).To(gomega.Equal(Occupied))
	})
}

func TestGridResolve(t *testing.T) {
	g := gomega.NewWithT(t)

	grid, err := GridFromText(checkerboard(5, 9))
	require.NoError(t, err)
	validator := NewTileValidator()

	statuses := grid.Resolve(validator)

	g.Expect(statuses).To(gomega.HaveLen(grid.Width()))
	for x := range grid.Width() {
		g.Expect(statuses[x]).To(gomega.HaveLen(grid.Height()))
		for y := range grid.Height() {
			g.Expect(statuses[x][y]).To(gomega.Equal(ValidateTile(grid.Window(x, y))))
		}
	}
}

func TestVerifyColumns(t *testing.T) {
	validator := NewTileValidator()

	t.Run("Checkerboard resolves to a maximal independent set", func(t *testing.T) {
		g := gomega.NewWithT(t)
		grid, err := GridFromText(checkerboard(2, 8))
		require.NoError(t, err)

		statuses := grid.Resolve(validator)

		g.Expect(VerifyColumns(statuses)).To(gomega.BeEmpty())
		for x := range grid.Width() {
			for y := range grid.Height() {
				g.Expect(statuses[x][y] == MustInclude).To(gomega.Equal(grid.Get(x, y) == Occupied))
			}
		}
	})

	t.Run("Empty grid leaves every square uncovered", func(t *testing.T) {
		g := gomega.NewWithT(t)
		grid, err := GridFromText(emptyTile)
		require.NoError(t, err)

		violations := VerifyColumns(grid.Resolve(validator))

		g.Expect(violations).To(gomega.HaveLen(TileSize))
		g.Expect(violations).To(gomega.HaveEach(gomega.HaveField("Kind", Uncovered)))
	})

	t.Run("Vertically adjacent squares", func(t *testing.T) {
		g := gomega.NewWithT(t)
		grid, err := GridFromText("#\n#\n.\n.")
		require.NoError(t, err)

		statuses := grid.Resolve(validator)

		g.Expect(statuses).To(gomega.Equal([][]Status{{MustInclude, MustInclude, MustExclude, MustExclude}}))
		g.Expect(VerifyColumns(statuses)).To(gomega.ConsistOf(Violation{Column: 0, Row: 0, Kind: Adjacent}))
	})

	t.Run("Adjacency wraps around", func(t *testing.T) {
		g := gomega.NewWithT(t)
		statuses := [][]Status{{MustInclude, MustExclude, MustInclude}}

		g.Expect(VerifyColumns(statuses)).To(gomega.ConsistOf(Violation{Column: 0, Row: 2, Kind: Adjacent}))
	})
}
