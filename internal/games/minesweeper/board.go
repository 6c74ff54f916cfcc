package minesweeper

import "github.com/vovakirdan/snakesweeper/internal/core"

// neighborOffsets lists the 8 surrounding cells.
var neighborOffsets = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// NeighborMines counts mines in the in-bounds 8-neighborhood of (x, y).
func (e *Engine) NeighborMines(x, y int) int {
	count := 0
	p := core.Point{X: x, Y: y}
	for _, off := range neighborOffsets {
		n := p.Add(off)
		if n.InBounds(e.size) && e.mines[n.Index(e.size)] {
			count++
		}
	}
	return count
}

// floodFill reveals start and cascades through cells with no neighboring mines.
// Numbered cells are revealed but stop the cascade. Flagged cells are skipped.
// It returns the number of newly revealed cells.
func (e *Engine) floodFill(start core.Point) int {
	count := 0
	stack := []core.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.InBounds(e.size) {
			continue
		}
		idx := p.Index(e.size)
		if e.revealed[idx] || e.flagged[idx] || e.mines[idx] {
			continue
		}

		e.reveal(idx)
		count++

		if e.NeighborMines(p.X, p.Y) == 0 {
			for _, off := range neighborOffsets {
				stack = append(stack, p.Add(off))
			}
		}
	}
	return count
}
