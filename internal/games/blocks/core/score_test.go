package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultTracker() *Tracker {
	return NewTracker(ScoreRules{PointsPerLine: 100, Cap: 999999, LevelDivisor: 500})
}

func TestTrackerScoresPerLine(t *testing.T) {
	tr := defaultTracker()

	assert.Equal(t, ScoreResult{Score: 100, Level: 1}, tr.Apply(1))
	assert.Equal(t, 500, tr.Apply(4).Score)
	assert.Equal(t, 2, tr.Level())
}

func TestTrackerCapsScore(t *testing.T) {
	tr := defaultTracker()
	tr.score = 999950

	res := tr.Apply(4)

	assert.Equal(t, 999999, res.Score)
	assert.Equal(t, 1+999999/500, res.Level)
}

func TestTrackerLevelIsMonotonic(t *testing.T) {
	tr := defaultTracker()
	prev := tr.Level()
	for i := 0; i < 200; i++ {
		res := tr.Apply(1 + i%4)
		assert.Equal(t, 1+res.Score/500, res.Level)
		assert.GreaterOrEqual(t, res.Level, prev)
		prev = res.Level
	}
}

func TestTrackerCombos(t *testing.T) {
	cases := []struct {
		name   string
		clears []int
		combos int
	}{
		{"single clear", []int{1}, 0},
		{"two in a row", []int{1, 2}, 1},
		{"streak broken", []int{1, 2, 0, 3}, 1},
		{"new streak continues", []int{1, 2, 0, 3, 1}, 2},
		{"long streak", []int{1, 1, 1, 1}, 3},
		{"only empty locks", []int{0, 0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := defaultTracker()
			for _, n := range tc.clears {
				tr.Apply(n)
			}
			assert.Equal(t, tc.combos, tr.Combos())
		})
	}
}

func TestTrackerZeroLinesEndsStreak(t *testing.T) {
	tr := defaultTracker()
	tr.Apply(2)
	assert.True(t, tr.ComboActive())

	res := tr.Apply(0)
	assert.False(t, tr.ComboActive())
	assert.Equal(t, 200, res.Score)
}

func TestTrackerReset(t *testing.T) {
	tr := defaultTracker()
	tr.Apply(3)
	tr.Apply(3)
	tr.Reset()

	assert.Equal(t, ScoreResult{Level: 1}, tr.Result())
	assert.False(t, tr.ComboActive())
}
