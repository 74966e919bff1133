package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/ranking"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Scorekeeper persists finished games: the play history (SQLite only) and
// the top-ten ranking. Either part may be missing; a nil Scorekeeper
// records nothing.
type Scorekeeper struct {
	history *storage.Store
	board   *ranking.Board
	logger  *log.Logger
}

// NewScorekeeper wires existing stores. history and board may be nil.
func NewScorekeeper(history *storage.Store, board *ranking.Board, logger *log.Logger) *Scorekeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Scorekeeper{history: history, board: board, logger: logger}
}

// OpenScorekeeper opens the persistence selected by dbPath: a path ending
// in .json keeps only the ranking in a JSON file, anything else opens a
// SQLite database holding both the history and the ranking.
func OpenScorekeeper(dbPath string, logger *log.Logger) (*Scorekeeper, error) {
	if logger == nil {
		logger = log.Default()
	}

	if storage.IsJSONPath(dbPath) {
		path, err := storage.ExpandPath(dbPath)
		if err != nil {
			return nil, err
		}
		return NewScorekeeper(nil, ranking.NewBoard(ranking.NewFileStore(path), logger), logger), nil
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return NewScorekeeper(store, ranking.NewBoard(store, logger), logger), nil
}

// History returns the SQLite store, or nil for a JSON ranking.
func (s *Scorekeeper) History() *storage.Store {
	if s == nil {
		return nil
	}
	return s.history
}

// Board returns the ranking board, or nil.
func (s *Scorekeeper) Board() *ranking.Board {
	if s == nil {
		return nil
	}
	return s.board
}

// RecordPlay appends a finished game to the history. Failures are logged.
func (s *Scorekeeper) RecordPlay(gameID, player string, st core.GameState) {
	if s == nil || s.history == nil {
		return
	}
	_, err := s.history.RecordPlay(storage.Play{
		GameID:  gameID,
		Player:  player,
		Score:   st.Score,
		Level:   st.Level,
		Combos:  st.Combos,
		Elapsed: st.Elapsed,
	})
	if err != nil {
		s.logger.Warn("could not record play", "game", gameID, "error", err)
	}
}

// CanRank reports whether finished games can be entered in the ranking.
func (s *Scorekeeper) CanRank() bool {
	return s != nil && s.board != nil
}

// Qualifies reports whether score would enter the ranking.
func (s *Scorekeeper) Qualifies(score int) bool {
	return s.CanRank() && s.board.Qualifies(score)
}

// Submit enters a finished game in the ranking under name.
// An empty name fails with ranking.ErrMissingName.
func (s *Scorekeeper) Submit(name string, st core.GameState) (ranking.Record, int, error) {
	if !s.CanRank() {
		return ranking.Record{}, 0, fmt.Errorf("tui: no ranking configured")
	}
	return s.board.Submit(name, ranking.Result{
		Score:   st.Score,
		Level:   st.Level,
		Combos:  st.Combos,
		Elapsed: st.Elapsed,
	})
}

// Top returns the ranking entries, best first.
func (s *Scorekeeper) Top() []ranking.Entry {
	if !s.CanRank() {
		return nil
	}
	return s.board.Top()
}

// Stats returns history statistics for a mode, or nil without a history.
func (s *Scorekeeper) Stats(gameID string) *storage.GameStats {
	if s == nil || s.history == nil {
		return nil
	}
	stats, err := s.history.Stats(gameID)
	if err != nil {
		s.logger.Warn("could not load stats", "game", gameID, "error", err)
		return nil
	}
	return stats
}

// HighScore returns the best recorded score of a mode, 0 without a history.
func (s *Scorekeeper) HighScore(gameID string) int {
	if s == nil || s.history == nil {
		return 0
	}
	best, err := s.history.HighScore(gameID)
	if err != nil {
		s.logger.Warn("could not load high score", "game", gameID, "error", err)
		return 0
	}
	return best
}

// Close releases the SQLite store, if any.
func (s *Scorekeeper) Close() error {
	if s == nil || s.history == nil {
		return nil
	}
	return s.history.Close()
}
