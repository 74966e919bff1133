package core

// Collides reports whether shape placed at pos overlaps the walls, the
// floor, or locked material. Cells above the top edge never hit grid
// contents but still count against the side walls.
func Collides(g *Grid, shape Shape, pos Position) bool {
	for r, row := range shape {
		for c, cell := range row {
			if cell == Empty {
				continue
			}
			gx := pos.X + c
			gy := pos.Y + r
			if gx < 0 || gx >= g.width || gy >= g.height {
				return true
			}
			if gy >= 0 && g.IsOccupied(gx, gy) {
				return true
			}
		}
	}
	return false
}

// Fits is the negation of Collides, for readability at call sites.
func Fits(g *Grid, p Piece, pos Position) bool {
	return !Collides(g, p.shape(), pos)
}
