package core

// ScoreRules configures the Tracker.
type ScoreRules struct {
	PointsPerLine int
	Cap           int
	LevelDivisor  int
}

// ScoreResult is the tracker state after applying a lock.
type ScoreResult struct {
	Score  int
	Level  int
	Combos int
}

// Tracker turns cleared-row counts into score, level and combo state.
type Tracker struct {
	rules       ScoreRules
	score       int
	comboActive bool
	combos      int
}

// NewTracker returns a zeroed tracker.
func NewTracker(rules ScoreRules) *Tracker {
	return &Tracker{rules: rules}
}

// Apply records one lock that cleared lines rows.
// A lock with no rows ends the combo streak. A clearing lock right after
// another clearing lock counts one combo.
func (t *Tracker) Apply(lines int) ScoreResult {
	if lines <= 0 {
		t.comboActive = false
		return t.Result()
	}

	if t.comboActive {
		t.combos++
	}
	t.comboActive = true

	t.score += lines * t.rules.PointsPerLine
	if t.score > t.rules.Cap {
		t.score = t.rules.Cap
	}
	return t.Result()
}

// Score returns the accumulated score.
func (t *Tracker) Score() int {
	return t.score
}

// Level is derived from score: 1 + score/LevelDivisor.
func (t *Tracker) Level() int {
	return 1 + t.score/t.rules.LevelDivisor
}

// Combos returns the number of streak continuations so far.
func (t *Tracker) Combos() int {
	return t.combos
}

// ComboActive reports whether the last lock cleared at least one row.
func (t *Tracker) ComboActive() bool {
	return t.comboActive
}

// Result returns the current score, level and combo count.
func (t *Tracker) Result() ScoreResult {
	return ScoreResult{Score: t.score, Level: t.Level(), Combos: t.combos}
}

// Reset zeroes all state.
func (t *Tracker) Reset() {
	t.score = 0
	t.comboActive = false
	t.combos = 0
}
