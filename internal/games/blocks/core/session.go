package core

import (
	"errors"
	"time"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle     State = iota // No timer; fresh or reset board
	StateRunning               // Gravity timer active
	StatePaused                // Timer suspended, board retained
	StateGameOver              // Terminal; board frozen
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Direction is a horizontal move direction.
type Direction int

const (
	MoveLeft  Direction = -1
	MoveRight Direction = 1
)

// LockResult describes the outcome of a gravity step or drop request.
type LockResult struct {
	Locked   bool // The active piece was written into the grid
	Dropped  int  // Rows descended by this request before locking
	Cleared  int  // Rows removed by the lock
	GameOver bool // The replacement piece could not spawn
	Score    ScoreResult
}

// Session owns one game: grid, active and next pieces, score tracker and the
// gravity timer. All methods run to completion and leave the state
// consistent; a Session is not safe for concurrent use and callers
// serialize access (the TUI does so through its update loop).
type Session struct {
	rules   Rules
	rand    Randomizer
	grid    *Grid
	active  Piece
	next    Piece
	pos     Position
	tracker *Tracker
	state   State
	timer   Timer
	elapsed time.Duration
	ticks   uint64

	events  emitter
	pending []Event
}

// NewSession validates rules and returns a session in the Idle state with
// two pieces already drawn.
func NewSession(rules Rules, r Randomizer) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("core: randomizer is required")
	}

	tracker := NewTracker(ScoreRules{
		PointsPerLine: rules.PointsPerLine,
		Cap:           rules.ScoreCap,
		LevelDivisor:  rules.LevelDivisor,
	})

	s := &Session{rules: rules, rand: r, tracker: tracker}
	s.Reset()
	return s, nil
}

// Subscribe registers a listener for engine events.
func (s *Session) Subscribe(l Listener) {
	s.events.subscribe(l)
}

// Reset returns to Idle from any state with a new grid, two fresh pieces,
// zeroed score and elapsed time.
func (s *Session) Reset() {
	s.timer.Disarm()
	s.state = StateIdle
	s.grid = NewGrid(s.rules.Width, s.rules.Height)
	s.tracker.Reset()
	s.active = NewPiece(s.rand.Next(s.tracker.Level()))
	s.next = NewPiece(s.rand.Next(s.tracker.Level()))
	s.pos = s.rules.SpawnPosition()
	s.elapsed = 0
	s.ticks = 0
	s.pending = s.pending[:0]
}

// Start moves Idle to Running and arms the gravity timer at the current
// level's interval. Returns false from any other state.
func (s *Session) Start() bool {
	if s.state != StateIdle {
		return false
	}
	if !s.timer.Arm(s.rules.TickInterval(s.tracker.Level())) {
		return false
	}
	s.state = StateRunning
	return true
}

// Pause suspends a running session.
func (s *Session) Pause() bool {
	if s.state != StateRunning {
		return false
	}
	s.timer.Disarm()
	s.state = StatePaused
	return true
}

// Resume restarts a paused session at the current level's interval.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	if !s.timer.Arm(s.rules.TickInterval(s.tracker.Level())) {
		return false
	}
	s.state = StateRunning
	return true
}

// Advance feeds wall-clock time to a running session: the elapsed counter
// grows and one Tick runs per whole gravity interval. Returns the number
// of ticks run.
func (s *Session) Advance(dt time.Duration) int {
	if s.state != StateRunning || dt <= 0 {
		return 0
	}
	s.elapsed += dt

	fires := s.timer.Advance(dt)
	ran := 0
	for ; ran < fires && s.state == StateRunning; ran++ {
		s.Tick()
	}
	return ran
}

// Tick advances the active piece one row, or locks it when it cannot move.
// No-op unless Running.
func (s *Session) Tick() LockResult {
	if s.state != StateRunning {
		return LockResult{}
	}
	s.ticks++
	if s.shift(0, 1) {
		return LockResult{Dropped: 1, Score: s.tracker.Result()}
	}
	return s.lockAndSpawn(0)
}

// Move shifts the active piece one column. Returns false when the move is
// blocked or the session is not running.
func (s *Session) Move(dir Direction) bool {
	if s.state != StateRunning {
		return false
	}
	return s.shift(int(dir), 0)
}

// Rotate turns the active piece in place. A colliding candidate is
// rejected and the piece is left untouched; there is no wall-kick search.
func (s *Session) Rotate(dir Rotation) bool {
	if s.state != StateRunning {
		return false
	}

	candidate := s.active.Rotated(dir)
	ok := Fits(s.grid, candidate, s.pos)
	if ok {
		s.active = candidate
	}
	s.queue(Event{Type: EventRotated, Success: ok})
	s.flush()
	return ok
}

// SoftDrop descends one row. When the row below is blocked the piece
// locks exactly as in a failed Tick; Locked on the result reports that.
func (s *Session) SoftDrop() LockResult {
	if s.state != StateRunning {
		return LockResult{}
	}
	if s.shift(0, 1) {
		return LockResult{Dropped: 1, Score: s.tracker.Result()}
	}
	return s.lockAndSpawn(0)
}

// HardDrop descends as far as possible, then locks.
func (s *Session) HardDrop() LockResult {
	if s.state != StateRunning {
		return LockResult{}
	}
	dropped := 0
	for s.shift(0, 1) {
		dropped++
	}
	return s.lockAndSpawn(dropped)
}

// shift commits a translation when the target fits.
func (s *Session) shift(dx, dy int) bool {
	target := s.pos.Add(dx, dy)
	if !Fits(s.grid, s.active, target) {
		return false
	}
	s.pos = target
	return true
}

// lockAndSpawn writes the active piece, clears rows, scores, promotes the
// next piece and detects top-out.
func (s *Session) lockAndSpawn(dropped int) LockResult {
	levelBefore := s.tracker.Level()

	s.grid.Lock(s.active, s.pos)
	s.queue(Event{Type: EventLocked})

	cleared := ClearLines(s.grid)
	score := s.tracker.Apply(cleared)
	if cleared > 0 {
		s.queue(Event{Type: EventLineCleared, Count: cleared})
	}

	s.active = s.next
	s.next = NewPiece(s.rand.Next(score.Level))
	s.pos = s.rules.SpawnPosition()

	result := LockResult{
		Locked:  true,
		Dropped: dropped,
		Cleared: cleared,
		Score:   score,
	}

	if Collides(s.grid, s.active.shape(), s.pos) {
		s.timer.Disarm()
		s.state = StateGameOver
		result.GameOver = true
		s.queue(Event{Type: EventGameOver, FinalScore: score.Score})
	} else if score.Level != levelBefore {
		s.timer.Disarm()
		s.timer.Arm(s.rules.TickInterval(score.Level))
	}

	s.flush()
	return result
}

func (s *Session) queue(ev Event) {
	s.pending = append(s.pending, ev)
}

// flush delivers queued events once the handler's mutations are complete.
func (s *Session) flush() {
	if len(s.pending) == 0 {
		return
	}
	batch := append([]Event(nil), s.pending...)
	s.pending = s.pending[:0]
	for _, ev := range batch {
		s.events.emit(ev)
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.tracker.Score()
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.tracker.Level()
}

// Combos returns the cumulative combo count.
func (s *Session) Combos() int {
	return s.tracker.Combos()
}

// Elapsed returns the running time since the last reset.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Interval returns the gravity interval currently in effect.
func (s *Session) Interval() time.Duration {
	if s.timer.Armed() {
		return s.timer.Interval()
	}
	return s.rules.TickInterval(s.tracker.Level())
}

// Rules returns the session's rule set.
func (s *Session) Rules() Rules {
	return s.rules
}

// Active returns the falling piece and its position.
func (s *Session) Active() (Piece, Position) {
	return s.active, s.pos
}

// Next returns the preview piece.
func (s *Session) Next() Piece {
	return s.next
}
