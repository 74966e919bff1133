package core

// Cell is a grid cell value: Empty or the material id of a locked piece kind.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// Position is the grid-space origin of a piece's bounding box.
// Y is negative while a piece is still entering from above the board.
type Position struct {
	X, Y int
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a fixed-size matrix of locked block material.
// Dimensions never change after creation; a reset allocates a new Grid.
type Grid struct {
	width  int
	height int
	rows   [][]Cell // rows[y][x], y grows downward
}

// NewGrid creates an all-empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([][]Cell, height)
	for y := range g.rows {
		g.rows[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell value at (x, y). Coordinates must be inside the grid.
func (g *Grid) At(x, y int) Cell {
	return g.rows[y][x]
}

// IsOccupied reports whether the cell at (x, y) holds material.
// Coordinates must be inside the grid; callers working from piece
// coordinates go through Collides first.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.rows[y][x] != Empty
}

// Set writes a cell value. Used to build boards for puzzles and tests.
func (g *Grid) Set(x, y int, c Cell) {
	g.rows[y][x] = c
}

// Lock writes every occupied cell of the piece into the grid at pos.
// Cells above the top edge are skipped.
func (g *Grid) Lock(p Piece, pos Position) {
	shape := p.shape()
	for r, row := range shape {
		gy := pos.Y + r
		if gy < 0 {
			continue
		}
		for c, cell := range row {
			if cell == Empty {
				continue
			}
			g.rows[gy][pos.X+c] = cell
		}
	}
}

// Rows returns a deep copy of the cell matrix for renderers.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.height)
	for y, row := range g.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// rowFull reports whether every cell in row y is occupied.
func (g *Grid) rowFull(y int) bool {
	for _, c := range g.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}
