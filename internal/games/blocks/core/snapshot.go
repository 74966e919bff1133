package core

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it never affects the session.
type Snapshot struct {
	State     State
	Cells     [][]Cell
	Active    Piece
	Shape     Shape
	Position  Position
	Ghost     Position // Where the active piece would land on a hard drop
	Next      Piece
	NextShape Shape
	Score     int
	Level     int
	Combos    int
	Elapsed   time.Duration
	Ticks     uint64
	Interval  time.Duration
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Cells:     s.grid.Rows(),
		Active:    s.active,
		Shape:     s.active.Shape(),
		Position:  s.pos,
		Ghost:     s.landing(),
		Next:      s.next,
		NextShape: s.next.Shape(),
		Score:     s.tracker.Score(),
		Level:     s.tracker.Level(),
		Combos:    s.tracker.Combos(),
		Elapsed:   s.elapsed,
		Ticks:     s.ticks,
		Interval:  s.Interval(),
	}
}

// landing returns the lowest position the active piece can reach.
func (s *Session) landing() Position {
	pos := s.pos
	for Fits(s.grid, s.active, pos.Add(0, 1)) {
		pos = pos.Add(0, 1)
	}
	return pos
}
