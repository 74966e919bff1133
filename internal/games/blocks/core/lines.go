package core

// ClearLines removes every full row in one pass and compacts the rows above
// it downward, inserting empty rows at the top. Returns the number of rows
// removed. Non-full rows keep their relative order.
func ClearLines(g *Grid) int {
	write := g.height - 1
	cleared := 0

	for read := g.height - 1; read >= 0; read-- {
		if g.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			g.rows[write] = g.rows[read]
		}
		write--
	}

	if cleared == 0 {
		return 0
	}

	// Rows that moved down left their old slots aliased; give the top fresh storage.
	for y := 0; y < cleared; y++ {
		g.rows[y] = make([]Cell, g.width)
	}
	return cleared
}
