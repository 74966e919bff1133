package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := core.NewGrid(10, 20)

	require.Equal(t, 10, g.Width())
	require.Equal(t, 20, g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.False(t, g.IsOccupied(x, y), "cell (%d,%d) should be empty", x, y)
		}
	}
}

func TestGridLockWritesMaterial(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := core.NewPiece(core.KindO)

	g.Lock(p, core.Position{X: 3, Y: 10})

	for _, c := range [][2]int{{3, 10}, {4, 10}, {3, 11}, {4, 11}} {
		assert.Equal(t, core.KindO.Material(), g.At(c[0], c[1]))
	}
	assert.False(t, g.IsOccupied(5, 10))
	assert.False(t, g.IsOccupied(3, 12))
}

func TestGridLockSkipsRowsAboveTop(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := core.NewPiece(core.KindO)

	require.NotPanics(t, func() {
		g.Lock(p, core.Position{X: 0, Y: -1})
	})

	assert.True(t, g.IsOccupied(0, 0))
	assert.True(t, g.IsOccupied(1, 0))
	assert.False(t, g.IsOccupied(0, 1))
}

func TestGridRowsIsACopy(t *testing.T) {
	g := core.NewGrid(4, 4)
	rows := g.Rows()
	rows[0][0] = core.KindT.Material()

	assert.False(t, g.IsOccupied(0, 0), "mutating a snapshot must not touch the grid")
}
