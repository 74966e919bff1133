package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func countCells(s core.Shape) int {
	n := 0
	for r := 0; r < s.Size(); r++ {
		for c := 0; c < s.Size(); c++ {
			if s.Occupied(c, r) {
				n++
			}
		}
	}
	return n
}

func TestEveryOrientationHasFourCells(t *testing.T) {
	for _, k := range core.Kinds() {
		p := core.NewPiece(k)
		for i := 0; i < p.Orientations(); i++ {
			assert.Equal(t, 4, countCells(p.Shape()), "%s orientation %d", k, i)
			p = p.Rotated(core.RotateCW)
		}
	}
}

func TestOrientationCounts(t *testing.T) {
	expected := map[core.Kind]int{
		core.KindI: 2,
		core.KindJ: 4,
		core.KindL: 4,
		core.KindO: 1,
		core.KindS: 2,
		core.KindT: 4,
		core.KindZ: 2,
	}
	for k, n := range expected {
		assert.Equal(t, n, core.NewPiece(k).Orientations(), "kind %s", k)
	}
}

func TestFullRotationCycleRestoresShape(t *testing.T) {
	for _, k := range core.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			original := core.NewPiece(k)

			cw := original
			for range 4 {
				cw = cw.Rotated(core.RotateCW)
			}
			assert.True(t, original.Shape().Equal(cw.Shape()), "4 clockwise turns")

			ccw := original
			for range 4 {
				ccw = ccw.Rotated(core.RotateCCW)
			}
			assert.True(t, original.Shape().Equal(ccw.Shape()), "4 counter-clockwise turns")

			cycle := original
			for range original.Orientations() {
				cycle = cycle.Rotated(core.RotateCW)
			}
			assert.Equal(t, original, cycle, "one full orientation cycle")
		})
	}
}

func TestRotatedDoesNotMutate(t *testing.T) {
	p := core.NewPiece(core.KindT)
	before := p.Shape()

	candidate := p.Rotated(core.RotateCW)

	assert.True(t, before.Equal(p.Shape()))
	assert.False(t, before.Equal(candidate.Shape()))
	assert.Equal(t, 0, p.Orientation)
}

func TestRotateThenCounterRotate(t *testing.T) {
	for _, k := range core.Kinds() {
		p := core.NewPiece(k)
		back := p.Rotated(core.RotateCW).Rotated(core.RotateCCW)
		assert.Equal(t, p, back, "kind %s", k)
	}
}

func TestShapeCopyIsIndependent(t *testing.T) {
	p := core.NewPiece(core.KindL)
	s := p.Shape()
	s[0][0] = core.KindZ.Material()

	assert.False(t, s.Equal(p.Shape()))
}

func TestUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { core.NewPiece(core.Kind(0)) })
	assert.Panics(t, func() { core.NewPiece(core.Kind(42)) })
}

func TestParseKind(t *testing.T) {
	for _, k := range core.Kinds() {
		parsed, err := core.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := core.ParseKind("X")
	assert.Error(t, err)
}
