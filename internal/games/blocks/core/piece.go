package core

import "fmt"

// Kind identifies a tetromino family.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// kindCount is the number of tetromino families.
const kindCount = 7

// Kinds returns every piece identity in table order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k names a known tetromino.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Material returns the cell value written when a piece of this kind locks.
func (k Kind) Material() Cell {
	return Cell(k)
}

// String returns the single-letter tetromino name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string("IJLOSTZ"[k-1])
}

// ParseKind converts a single letter (I, J, L, O, S, T, Z) to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("core: unknown piece %q", s)
}

// Shape is a square occupancy matrix; non-empty cells hold the material id.
type Shape [][]Cell

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return len(s)
}

// Occupied reports whether the cell at column c, row r is filled.
func (s Shape) Occupied(c, r int) bool {
	return s[r][c] != Empty
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// Rotation is a rotation direction.
type Rotation int

const (
	RotateCW  Rotation = 1
	RotateCCW Rotation = -1
)

// Piece is a tetromino in one of its orientations.
// Pieces are values; rotating returns a new candidate.
type Piece struct {
	Kind        Kind
	Orientation int
}

// NewPiece returns a piece of the given kind in its spawn orientation.
// An unknown kind is a programming error and panics.
func NewPiece(k Kind) Piece {
	if !k.Valid() {
		panic(fmt.Sprintf("core: unknown piece kind %d", k))
	}
	return Piece{Kind: k}
}

// Orientations returns how many distinct rotation states the kind has.
func (p Piece) Orientations() int {
	return len(orientations[p.Kind-1])
}

// Rotated returns the candidate piece one step in dir.
// The receiver is not modified.
func (p Piece) Rotated(dir Rotation) Piece {
	n := p.Orientations()
	next := (p.Orientation + int(dir)) % n
	if next < 0 {
		next += n
	}
	return Piece{Kind: p.Kind, Orientation: next}
}

// Shape returns a copy of the current orientation's matrix.
func (p Piece) Shape() Shape {
	return p.shape().clone()
}

// shape returns the shared precomputed matrix. Callers must not mutate it.
func (p Piece) shape() Shape {
	return orientations[p.Kind-1][p.Orientation]
}

// orientations[kind-1] lists every rotation state, clockwise order.
var orientations [kindCount][]Shape

func init() {
	bases := []struct {
		kind  Kind
		rows  []string
		count int
	}{
		{KindI, []string{"....", "####", "....", "...."}, 2},
		{KindJ, []string{"#..", "###", "..."}, 4},
		{KindL, []string{"..#", "###", "..."}, 4},
		{KindO, []string{"##", "##"}, 1},
		{KindS, []string{".##", "##.", "..."}, 2},
		{KindT, []string{".#.", "###", "..."}, 4},
		{KindZ, []string{"##.", ".##", "..."}, 2},
	}

	for _, b := range bases {
		shape := parseShape(b.rows, b.kind.Material())
		states := make([]Shape, 0, b.count)
		for range b.count {
			states = append(states, shape)
			shape = rotateClockwise(shape)
		}
		orientations[b.kind-1] = states
	}
}

// parseShape builds a matrix from '#' / '.' rows.
func parseShape(rows []string, material Cell) Shape {
	s := make(Shape, len(rows))
	for r, line := range rows {
		s[r] = make([]Cell, len(line))
		for c, ch := range line {
			if ch == '#' {
				s[r][c] = material
			}
		}
	}
	return s
}

// rotateClockwise returns the matrix turned a quarter turn clockwise.
func rotateClockwise(s Shape) Shape {
	n := len(s)
	out := make(Shape, n)
	for r := range out {
		out[r] = make([]Cell, n)
		for c := range out[r] {
			out[r][c] = s[n-1-c][r]
		}
	}
	return out
}
