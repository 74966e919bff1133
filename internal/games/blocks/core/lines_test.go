package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func fillRow(g *core.Grid, y int, c core.Cell) {
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, c)
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	g := core.NewGrid(6, 5)
	g.Set(0, 4, 1)
	g.Set(3, 2, 2)
	before := g.Rows()

	assert.Equal(t, 0, core.ClearLines(g))
	assert.Equal(t, before, g.Rows())
}

func TestClearLinesNonContiguousKeepsOrder(t *testing.T) {
	g := core.NewGrid(6, 6)
	g.Set(0, 1, 1) // A
	fillRow(g, 2, 7)
	g.Set(1, 3, 2) // B
	fillRow(g, 4, 7)
	g.Set(2, 5, 3) // C

	require.Equal(t, 2, core.ClearLines(g))

	for y := 0; y < 3; y++ {
		for x := 0; x < g.Width(); x++ {
			assert.False(t, g.IsOccupied(x, y), "row %d should be empty", y)
		}
	}
	assert.Equal(t, core.Cell(1), g.At(0, 3))
	assert.Equal(t, core.Cell(2), g.At(1, 4))
	assert.Equal(t, core.Cell(3), g.At(2, 5))
}

func TestClearLinesEveryRow(t *testing.T) {
	g := core.NewGrid(4, 3)
	for y := 0; y < 3; y++ {
		fillRow(g, y, 4)
	}

	assert.Equal(t, 3, core.ClearLines(g))
	assert.Equal(t, core.NewGrid(4, 3).Rows(), g.Rows())
}

func TestClearLinesKeepsHeight(t *testing.T) {
	g := core.NewGrid(5, 8)
	fillRow(g, 7, 1)
	fillRow(g, 6, 1)
	fillRow(g, 5, 1)
	fillRow(g, 4, 1)

	assert.Equal(t, 4, core.ClearLines(g))
	assert.Len(t, g.Rows(), 8)
	for _, row := range g.Rows() {
		assert.Len(t, row, 5)
	}
}
