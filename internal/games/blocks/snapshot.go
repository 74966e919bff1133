package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Snapshot captures the adapter and engine state for determinism testing.
type Snapshot struct {
	Frames   uint64
	Mode     string
	State    string
	Score    int
	Level    int
	Combos   int
	Elapsed  time.Duration
	Active   core.Piece
	Position core.Position
	Next     core.Piece
	Cells    [][]core.Cell
	Banner   string
	TooSmall bool
	LastCleared int // Rows removed by the most recent clearing lock
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session.Snapshot()
	return Snapshot{
		Frames:   g.frames,
		Mode:     string(g.mode),
		State:    s.State.String(),
		Score:    s.Score,
		Level:    s.Level,
		Combos:   s.Combos,
		Elapsed:  s.Elapsed,
		Active:   s.Active,
		Position: s.Position,
		Next:     s.Next,
		Cells:    s.Cells,
		Banner:   g.banner,
		TooSmall: g.tooSmall,
		LastCleared: g.lastCleared,
	}
}
