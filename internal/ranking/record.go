// Package ranking keeps the persisted top-10 list of finished games and
// classifies each entry with a medal and a badge.
package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MaxEntries is the size of the ranking.
const MaxEntries = 10

// DateLayout is the day/month/year layout of Record.Date.
const DateLayout = "02/01/2006"

// ErrMissingName is returned when a record is submitted without a player name.
var ErrMissingName = errors.New("ranking: player name is required")

// Record is one persisted ranking entry.
type Record struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Level       int    `json:"level"`
	ElapsedTime string `json:"elapsedTime"` // MM:SS
	Combos      int    `json:"combos"`
	Date        string `json:"date"` // DateLayout
}

// Insert adds r to list and returns the new ranking along with r's 1-based
// position, or 0 if r did not make the cut. The result is sorted by score,
// highest first; among equal scores older records stay ahead. The input
// slice is not modified.
func Insert(list []Record, r Record) ([]Record, int) {
	out := make([]Record, 0, len(list)+1)
	out = append(out, list...)
	slices.SortStableFunc(out, byScoreDesc)

	pos := len(out)
	for i, existing := range out {
		if existing.Score < r.Score {
			pos = i
			break
		}
	}
	out = slices.Insert(out, pos, r)

	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	if pos >= MaxEntries {
		return out, 0
	}
	return out, pos + 1
}

// Normalize sorts a ranking and trims it to MaxEntries.
func Normalize(list []Record) []Record {
	out := slices.Clone(list)
	slices.SortStableFunc(out, byScoreDesc)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

func byScoreDesc(a, b Record) int {
	return b.Score - a.Score
}

// Decode parses a stored ranking. Empty or malformed data yields an empty
// ranking rather than an error.
func Decode(data []byte) []Record {
	var list []Record
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

// Encode serializes a ranking as a JSON array.
func Encode(list []Record) ([]byte, error) {
	if list == nil {
		list = []Record{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot encode: %w", err)
	}
	return data, nil
}

// FormatElapsed renders a duration as MM:SS. Minutes are not capped at 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ParseElapsed reads an MM:SS value written by FormatElapsed.
func ParseElapsed(s string) (time.Duration, bool) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 {
		return 0, false
	}
	sec, err := strconv.Atoi(ss)
	if err != nil || sec < 0 || sec > 59 {
		return 0, false
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
}
