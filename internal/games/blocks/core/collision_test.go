package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// columnSpan returns the leftmost and rightmost occupied shape columns.
func columnSpan(s core.Shape) (int, int) {
	lo, hi := s.Size(), -1
	for r := 0; r < s.Size(); r++ {
		for c := 0; c < s.Size(); c++ {
			if s.Occupied(c, r) {
				lo = min(lo, c)
				hi = max(hi, c)
			}
		}
	}
	return lo, hi
}

func TestCollidesAtSideWalls(t *testing.T) {
	g := core.NewGrid(10, 20)

	for _, k := range core.Kinds() {
		p := core.NewPiece(k)
		for range p.Orientations() {
			shape := p.Shape()
			lo, hi := columnSpan(shape)

			left := core.Position{X: -lo, Y: 5}
			assert.False(t, core.Collides(g, shape, left), "%s touching left wall", k)
			assert.True(t, core.Collides(g, shape, left.Add(-1, 0)), "%s past left wall", k)

			right := core.Position{X: g.Width() - 1 - hi, Y: 5}
			assert.False(t, core.Collides(g, shape, right), "%s touching right wall", k)
			assert.True(t, core.Collides(g, shape, right.Add(1, 0)), "%s past right wall", k)

			p = p.Rotated(core.RotateCW)
		}
	}
}

func TestCollidesWithFloor(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := core.NewPiece(core.KindO)

	assert.True(t, core.Fits(g, p, core.Position{X: 0, Y: 18}))
	assert.True(t, core.Collides(g, p.Shape(), core.Position{X: 0, Y: 19}))
}

func TestCellsAboveTopDoNotCollide(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := core.NewPiece(core.KindO)

	assert.True(t, core.Fits(g, p, core.Position{X: 4, Y: -1}))
	assert.True(t, core.Fits(g, p, core.Position{X: 4, Y: -5}))
	assert.False(t, core.Fits(g, p, core.Position{X: -1, Y: -5}), "column bounds apply above the top")
}

func TestCollidesWithLockedCells(t *testing.T) {
	g := core.NewGrid(10, 20)
	g.Set(5, 10, core.KindT.Material())
	p := core.NewPiece(core.KindO)

	assert.True(t, core.Collides(g, p.Shape(), core.Position{X: 4, Y: 9}))
	assert.True(t, core.Collides(g, p.Shape(), core.Position{X: 5, Y: 10}))
	assert.False(t, core.Collides(g, p.Shape(), core.Position{X: 6, Y: 10}))
	assert.False(t, core.Collides(g, p.Shape(), core.Position{X: 4, Y: 7}))
}
