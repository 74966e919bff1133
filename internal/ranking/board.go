package ranking

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Backend persists the whole ranking list.
type Backend interface {
	// LoadRanking returns the stored ranking. A backend with nothing
	// stored yet returns an empty list and no error.
	LoadRanking() ([]Record, error)

	// SaveRanking replaces the stored ranking.
	SaveRanking(list []Record) error
}

// Result is the outcome of a finished game as reported by the engine.
type Result struct {
	Score   int
	Level   int
	Combos  int
	Elapsed time.Duration
}

// Entry is a ranking record with its position and classification.
type Entry struct {
	Rank int
	Record
	Standing
}

// Board validates submissions and keeps the ranking in a Backend.
// Submissions are serialized so concurrent SSH sessions do not lose
// each other's records.
type Board struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
	now     func() time.Time
}

// NewBoard returns a board backed by b. A nil logger uses the default one.
func NewBoard(b Backend, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{backend: b, logger: logger, now: time.Now}
}

// Submit records a finished game under name and returns the stored record
// and its 1-based rank (0 if it did not make the top ten).
// The name is trimmed; an empty name fails with ErrMissingName and nothing
// is stored. Nothing is stored either when the backend cannot be read.
func (b *Board) Submit(name string, res Result) (Record, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, 0, ErrMissingName
	}

	rec := Record{
		Name:        name,
		Score:       res.Score,
		Level:       res.Level,
		ElapsedTime: FormatElapsed(res.Elapsed),
		Combos:      res.Combos,
		Date:        b.now().Format(DateLayout),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// A failed read must not overwrite the stored ranking with a short list.
	stored, err := b.backend.LoadRanking()
	if err != nil {
		return rec, 0, fmt.Errorf("ranking: cannot load: %w", err)
	}

	list, rank := Insert(stored, rec)
	if err := b.backend.SaveRanking(list); err != nil {
		return rec, 0, fmt.Errorf("ranking: cannot save: %w", err)
	}

	b.logger.Debug("ranking updated", "name", rec.Name, "score", rec.Score, "rank", rank)
	return rec, rank, nil
}

// Top returns the ranking with positions and standings, best first.
// A backend failure is logged and yields an empty ranking.
func (b *Board) Top() []Entry {
	list := Normalize(b.load())
	entries := make([]Entry, len(list))
	for i, r := range list {
		entries[i] = Entry{Rank: i + 1, Record: r, Standing: Classify(r)}
	}
	return entries
}

// Qualifies reports whether a score would enter the ranking.
func (b *Board) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	list := Normalize(b.load())
	return len(list) < MaxEntries || score > list[len(list)-1].Score
}

// Clear removes every entry.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.backend.SaveRanking(nil); err != nil {
		return fmt.Errorf("ranking: cannot clear: %w", err)
	}
	return nil
}

func (b *Board) load() []Record {
	list, err := b.backend.LoadRanking()
	if err != nil {
		b.logger.Warn("ranking unavailable, starting from an empty list", "error", err)
		return nil
	}
	return list
}
