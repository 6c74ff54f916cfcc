package minesweeper

// RevealedCell is a revealed position with its neighboring mine count.
type RevealedCell struct {
	X         int `json:"x"`
	Y         int `json:"y"`
	Neighbors int `json:"n"`
}

// View is a read-only copy of the minefield for presentation and tests.
// Mines is only filled when the caller asks for it (at game over).
type View struct {
	Size     int            `json:"size"`
	Mines    []int          `json:"mines,omitempty"`
	Revealed []RevealedCell `json:"revealed"`
	Flagged  []int          `json:"flagged"`
	Score    int            `json:"score"`
	Cleared  bool           `json:"cleared"`
}

// View returns a snapshot of the board. Mine indices are included only if showMines is set.
func (e *Engine) View(showMines bool) View {
	v := View{
		Size:     e.size,
		Revealed: make([]RevealedCell, 0, e.revealedCount),
		Flagged:  []int{},
		Score:    e.score,
		Cleared:  e.cleared,
	}
	for idx := range e.mines {
		x, y := idx%e.size, idx/e.size
		if e.revealed[idx] {
			v.Revealed = append(v.Revealed, RevealedCell{X: x, Y: y, Neighbors: e.NeighborMines(x, y)})
		}
		if e.flagged[idx] {
			v.Flagged = append(v.Flagged, idx)
		}
		if showMines && e.mines[idx] {
			v.Mines = append(v.Mines, idx)
		}
	}
	return v
}
