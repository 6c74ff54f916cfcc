package snakesweeper

import (
	"fmt"

	"github.com/vovakirdan/snakesweeper/internal/core"
)

const (
	cellWidth = 3 // Characters per board cell
	boardGap  = 4 // Columns between the two boards
)

// layout positions both boards on the screen.
type layout struct {
	snake    core.Rect // Board frames, borders included
	mine     core.Rect
	hudY     int
	tooSmall bool
}

func (g *Game) layout() layout {
	size := g.cfg.Grid.Size
	boardW := size*cellWidth + 2
	boardH := size + 2
	totalW := 2*boardW + boardGap
	totalH := boardH + 3 // HUD, titles, feedback

	if g.screenW < totalW || g.screenH < totalH {
		return layout{tooSmall: true}
	}

	x0 := (g.screenW - totalW) / 2
	y0 := (g.screenH - totalH) / 2
	return layout{
		hudY:  y0,
		snake: core.NewRect(x0, y0+2, boardW, boardH),
		mine:  core.NewRect(x0+boardW+boardGap, y0+2, boardW, boardH),
	}
}

// cellOrigin returns the screen column and row of a cell's left character.
func (l layout) cellOrigin(board core.Rect, p core.Point) (int, int) {
	return board.X + 1 + p.X*cellWidth, board.Y + 1 + p.Y
}

// cellAt maps a screen position inside a board to a grid cell.
func (l layout) cellAt(board core.Rect, x, y, size int) (core.Point, bool) {
	dx := x - board.X - 1
	dy := y - board.Y - 1
	if dx < 0 || dy < 0 {
		return core.Point{}, false
	}
	p := core.Point{X: dx / cellWidth, Y: dy}
	if !p.InBounds(size) {
		return core.Point{}, false
	}
	return p, true
}

// Render draws both boards, the HUD, feedback and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l := g.layout()
	if l.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	snap := g.ctrl.Snapshot()
	g.renderHUD(dst, l, snap)
	g.renderSnake(dst, l, snap)
	g.renderMines(dst, l, snap)

	switch {
	case snap.Phase == PhaseGameOver:
		g.renderOverlay(dst, []string{
			"Game Over",
			snap.Reason,
			fmt.Sprintf("Snake %d  Mine %d  Total %d", snap.Snake.Score, snap.Minesweeper.Score, snap.Total),
			"Press R to restart",
		}, core.ColorBrightRed)
	case snap.Paused:
		g.renderOverlay(dst, []string{"Paused", "Press P to continue"}, core.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, l layout, snap Snapshot) {
	hud := fmt.Sprintf("Snake: %d  Mine: %d  Total: %d  Speed: %.0fms",
		snap.Snake.Score, snap.Minesweeper.Score, snap.Total, snap.Snake.SpeedMS)
	dst.DrawTextColor(l.snake.X, l.hudY, hud, core.ColorWhite)
	if snap.Snake.Invincible {
		dst.DrawTextColor(l.snake.X+len(hud)+2, l.hudY, "INVINCIBLE", core.ColorBrightCyan)
	}

	dst.DrawTextColor(l.snake.X, l.hudY+1, "SNAKE", core.ColorBrightGreen)
	dst.DrawTextColor(l.mine.X, l.hudY+1, "MINEFIELD", core.ColorBrightYellow)

	dst.DrawTextColor(l.snake.X, l.snake.Bottom(), snap.Feedback.Snake, core.ColorBrightCyan)
	dst.DrawTextColor(l.mine.X, l.mine.Bottom(), snap.Feedback.Mine, core.ColorBrightYellow)
}

func (g *Game) renderSnake(dst *core.Screen, l layout, snap Snapshot) {
	size := g.cfg.Grid.Size
	frame := core.ColorGreen
	if snap.Snake.Invincible {
		frame = core.ColorBrightCyan
	}
	dst.DrawBox(l.snake, frame)

	for i := range size * size {
		x, y := l.cellOrigin(l.snake, core.PointFromIndex(i, size))
		dst.SetWithColor(x+1, y, '·', core.ColorGray)
	}

	if snap.Snake.Food != core.NoPoint {
		x, y := l.cellOrigin(l.snake, snap.Snake.Food)
		dst.SetWithColor(x+1, y, '●', core.ColorRed)
	}

	body := core.ColorGreen
	if snap.Snake.Invincible {
		body = core.ColorCyan
	}
	// Draw tail first so the head wins on overlapping segments
	for i := len(snap.Snake.Segments) - 1; i >= 0; i-- {
		x, y := l.cellOrigin(l.snake, snap.Snake.Segments[i])
		if i == 0 {
			dst.SetWithColor(x+1, y, '@', core.ColorBrightGreen)
		} else {
			dst.SetWithColor(x+1, y, 'o', body)
		}
	}
}

func (g *Game) renderMines(dst *core.Screen, l layout, snap Snapshot) {
	size := g.cfg.Grid.Size
	dst.DrawBox(l.mine, core.ColorYellow)

	v := snap.Minesweeper
	for i := range size * size {
		x, y := l.cellOrigin(l.mine, core.PointFromIndex(i, size))
		dst.SetWithColor(x+1, y, '■', core.ColorGray)
	}
	for _, cell := range v.Revealed {
		x, y := l.cellOrigin(l.mine, core.Point{X: cell.X, Y: cell.Y})
		if cell.Neighbors == 0 {
			dst.SetWithColor(x+1, y, ' ', core.ColorDefault)
			continue
		}
		dst.SetWithColor(x+1, y, rune('0'+cell.Neighbors), core.NumberColor(cell.Neighbors))
	}
	for _, idx := range v.Mines {
		x, y := l.cellOrigin(l.mine, core.PointFromIndex(idx, size))
		dst.SetWithColor(x+1, y, '*', core.ColorRed)
	}
	for _, idx := range v.Flagged {
		x, y := l.cellOrigin(l.mine, core.PointFromIndex(idx, size))
		dst.SetWithColor(x+1, y, 'F', core.ColorBrightRed)
	}

	if snap.Phase == PhasePlaying {
		x, y := l.cellOrigin(l.mine, g.cursor)
		dst.SetWithColor(x, y, '[', core.ColorBrightYellow)
		dst.SetWithColor(x+2, y, ']', core.ColorBrightYellow)
	}
}

// renderOverlay draws a centered box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line, c)
	}
}
