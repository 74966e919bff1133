package blocks

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/ranking"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// Layout of the side panel next to the board.
const (
	panelGap    = 2
	panelWidth  = 20
	panelHeight = 19
	previewSize = 4 // Largest piece matrix
)

// boardWidth is the framed board width: two characters per cell.
func boardWidth(r core.Rules) int {
	return r.Width*2 + 2
}

// boardHeight is the framed board height.
func boardHeight(r core.Rules) int {
	return r.Height + 2
}

// materialColor maps a locked cell's material to a screen color.
func materialColor(c core.Cell) platformcore.Color {
	switch core.Kind(c) {
	case core.KindI:
		return platformcore.ColorCyan
	case core.KindJ:
		return platformcore.ColorBlue
	case core.KindL:
		return platformcore.ColorOrange
	case core.KindO:
		return platformcore.ColorYellow
	case core.KindS:
		return platformcore.ColorGreen
	case core.KindT:
		return platformcore.ColorMagenta
	case core.KindZ:
		return platformcore.ColorRed
	default:
		return platformcore.ColorDefault
	}
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.session == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCenteredColored(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH), platformcore.ColorGray)
		return
	}

	snap := g.session.Snapshot()
	rules := g.session.Rules()

	bw, bh := boardWidth(rules), boardHeight(rules)
	total := bw + panelGap + panelWidth
	ox := max((dst.Width()-total)/2, 0)
	oy := max((dst.Height()-max(bh, panelHeight))/2, 0)

	board := platformcore.NewRect(ox, oy, bw, bh)
	g.drawBoard(dst, board, snap)
	g.drawPanel(dst, platformcore.NewRect(board.Right()+panelGap, oy, panelWidth, panelHeight), snap)

	if g.banner != "" {
		drawInBox(dst, board, board.Y+3, " "+g.banner+" ", platformcore.ColorBrightYellow)
	}
	g.drawOverlay(dst, board, snap)
}

// drawBoard draws the frame, locked cells, the ghost and the active piece.
func (g *Game) drawBoard(dst *platformcore.Screen, board platformcore.Rect, snap core.Snapshot) {
	frame := platformcore.ColorGray
	if g.blockedFrames > 0 {
		frame = platformcore.ColorRed
	}
	dst.DrawBoxColored(board, frame)

	inner := board.Inset(1)
	for y, row := range snap.Cells {
		for x, c := range row {
			sx, sy := inner.X+x*2, inner.Y+y
			if c == core.Empty {
				dst.SetColored(sx+1, sy, EmptyChar, platformcore.ColorGray)
				continue
			}
			setBlock(dst, sx, sy, BlockChar, materialColor(c))
		}
	}

	if snap.State == core.StateGameOver {
		return
	}

	if snap.State != core.StateIdle && snap.Ghost != snap.Position {
		eachCell(snap.Shape, snap.Ghost, func(x, y int) {
			if y >= 0 && y < len(snap.Cells) && snap.Cells[y][x] == core.Empty {
				setBlock(dst, inner.X+x*2, inner.Y+y, GhostChar, platformcore.ColorGray)
			}
		})
	}

	color := materialColor(snap.Active.Kind.Material())
	eachCell(snap.Shape, snap.Position, func(x, y int) {
		if y >= 0 {
			setBlock(dst, inner.X+x*2, inner.Y+y, BlockChar, color)
		}
	})
}

// drawPanel draws the title, the next piece preview and the HUD.
func (g *Game) drawPanel(dst *platformcore.Screen, panel platformcore.Rect, snap core.Snapshot) {
	x, y := panel.X, panel.Y

	dst.DrawTextColored(x, y, "BLOCKS", platformcore.ColorBrightYellow)

	dst.DrawText(x, y+2, "NEXT")
	preview := platformcore.NewRect(x, y+3, previewSize*2+2, previewSize+2)
	dst.DrawBoxColored(preview, platformcore.ColorGray)
	n := snap.NextShape.Size()
	px := preview.X + 1 + (previewSize-n)
	py := preview.Y + 1 + (previewSize-n)/2
	color := materialColor(snap.Next.Kind.Material())
	eachCell(snap.NextShape, core.Position{}, func(cx, cy int) {
		setBlock(dst, px+cx*2, py+cy, BlockChar, color)
	})

	dst.DrawText(x, y+10, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+11, fmt.Sprintf("Level  %d", snap.Level))
	dst.DrawText(x, y+12, fmt.Sprintf("Combos %d", snap.Combos))
	dst.DrawText(x, y+13, fmt.Sprintf("Time   %s", ranking.FormatElapsed(snap.Elapsed)))
	dst.DrawTextColored(x, y+14, fmt.Sprintf("Speed  %dms", snap.Interval.Milliseconds()), platformcore.ColorGray)

	label, labelColor := stateLabel(snap.State)
	dst.DrawTextColored(x, y+16, label, labelColor)

	dst.DrawTextColored(x, y+18, g.policy(), platformcore.ColorGray)
}

func stateLabel(s core.State) (string, platformcore.Color) {
	switch s {
	case core.StateRunning:
		return "RUNNING", platformcore.ColorGreen
	case core.StatePaused:
		return "PAUSED", platformcore.ColorYellow
	case core.StateGameOver:
		return "GAME OVER", platformcore.ColorRed
	default:
		return "READY", platformcore.ColorCyan
	}
}

// drawOverlay draws the ready, paused and game over messages on the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, board platformcore.Rect, snap core.Snapshot) {
	switch snap.State {
	case core.StateIdle:
		drawMessage(dst, board, "READY", "Enter to start", platformcore.ColorCyan)
	case core.StatePaused:
		drawMessage(dst, board, "PAUSED", "P to resume", platformcore.ColorYellow)
	case core.StateGameOver:
		drawMessage(dst, board, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), platformcore.ColorRed)
	}
}

// drawMessage draws a framed two-line message centered on the board.
func drawMessage(dst *platformcore.Screen, board platformcore.Rect, title, subtitle string, c platformcore.Color) {
	w := board.W - 2
	box := platformcore.CenteredIn(board, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	drawInBox(dst, box, box.Y+1, title, c)
	drawInBox(dst, box, box.Y+3, subtitle, platformcore.ColorDefault)
}

// drawInBox centers text horizontally inside r on row y.
func drawInBox(dst *platformcore.Screen, r platformcore.Rect, y int, text string, c platformcore.Color) {
	x := r.X + max((r.W-len([]rune(text)))/2, 0)
	dst.DrawTextColored(x, y, text, c)
}

// setBlock draws one grid cell as two screen columns.
func setBlock(dst *platformcore.Screen, x, y int, r rune, c platformcore.Color) {
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

// eachCell calls fn with the grid coordinates of every occupied cell of
// shape placed at pos.
func eachCell(shape core.Shape, pos core.Position, fn func(x, y int)) {
	n := shape.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if shape.Occupied(c, r) {
				fn(pos.X+c, pos.Y+r)
			}
		}
	}
}
