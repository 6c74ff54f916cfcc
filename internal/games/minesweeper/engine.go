// Package minesweeper implements the minefield board: safe first click,
// flood-fill reveals, flag scoring, area reveals and board regeneration.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/core"
	"github.com/vovakirdan/snakesweeper/internal/events"
)

// HitReason is the game-over reason when a mine is revealed.
const HitReason = "stepped on a mine"

// sampleAttempts caps rejection sampling before the linear scan fallback.
const sampleAttempts = 1000

// RevealResult reports the outcome of RevealCell.
type RevealResult struct {
	Success  bool // At least one cell was revealed
	Revealed int  // Newly revealed cells
	HitMine  bool
}

// Engine owns the mine layout, the revealed and flagged cells and the score.
type Engine struct {
	cfg  config.GameConfig
	rng  *rand.Rand
	bus  *events.Bus
	size int

	mines    []bool // Indexed by y*size+x
	revealed []bool
	flagged  []bool

	mineCount     int
	revealedCount int
	score         int
	firstClick    bool // True until the first reveal of the current layout
	cleared       bool // Every safe cell revealed; reveals are locked until regeneration
}

// New creates a minesweeper engine with a fresh random layout.
func New(cfg config.GameConfig, rng *rand.Rand, bus *events.Bus) *Engine {
	e := &Engine{
		cfg:  cfg,
		rng:  rng,
		bus:  bus,
		size: cfg.Grid.Size,
	}
	e.Reset()
	return e
}

// Reset clears the score and lays out a new board.
func (e *Engine) Reset() {
	e.score = 0
	e.newLayout()
}

// RegenerateBoard lays out a new board and keeps the accumulated score.
func (e *Engine) RegenerateBoard() {
	e.newLayout()
	e.bus.Emit(events.MineBoardRegenerated, nil)
}

// newLayout places MineCount mines by sampling without replacement.
func (e *Engine) newLayout() {
	cells := e.size * e.size
	e.mines = make([]bool, cells)
	e.revealed = make([]bool, cells)
	e.flagged = make([]bool, cells)
	e.mineCount = 0
	e.revealedCount = 0
	e.firstClick = true
	e.cleared = false

	for e.mineCount < e.cfg.Minesweeper.MineCount {
		idx, err := core.SampleFree(e.rng, cells, sampleAttempts, func(i int) bool { return e.mines[i] })
		if err != nil {
			break
		}
		e.mines[idx] = true
		e.mineCount++
	}
}

// SetMines replaces the layout with the given cell indices and clears
// revealed and flagged cells. The score is kept. Used to load fixtures.
func (e *Engine) SetMines(indices []int) error {
	cells := e.size * e.size
	mines := make([]bool, cells)
	count := 0
	for _, idx := range indices {
		if idx < 0 || idx >= cells {
			return fmt.Errorf("minesweeper: mine index %d out of range", idx)
		}
		if !mines[idx] {
			mines[idx] = true
			count++
		}
	}
	if count >= cells {
		return fmt.Errorf("minesweeper: layout has no safe cell")
	}

	e.mines = mines
	e.mineCount = count
	e.revealed = make([]bool, cells)
	e.flagged = make([]bool, cells)
	e.revealedCount = 0
	e.firstClick = true
	e.cleared = false
	return nil
}

// ToggleFlag flags or unflags a cell. It fails on revealed cells and off-grid
// coordinates. Flags stay usable on a cleared board awaiting regeneration.
// Flagging a mine scores and emits mine:correct-flag; wrong flags are free.
func (e *Engine) ToggleFlag(x, y int) bool {
	idx, ok := e.index(x, y)
	if !ok || e.revealed[idx] {
		return false
	}

	if e.flagged[idx] {
		e.flagged[idx] = false
		return true
	}

	e.flagged[idx] = true
	if e.mines[idx] {
		e.score += e.cfg.Scoring.FlagCorrect
		e.bus.Emit(events.MineCorrectFlag, events.CorrectFlagPayload{X: x, Y: y, Score: e.score})
	}
	return true
}

// RevealCell reveals a cell, flood filling from cells without neighboring mines.
// The first reveal of a layout never hits a mine.
func (e *Engine) RevealCell(x, y int) RevealResult {
	idx, ok := e.index(x, y)
	if !ok || e.cleared || e.revealed[idx] || e.flagged[idx] {
		return RevealResult{}
	}

	if e.firstClick {
		e.ensureSafeStart(idx)
		e.firstClick = false
	}

	if e.mines[idx] {
		e.bus.Emit(events.MineHit, events.HitPayload{X: x, Y: y})
		return RevealResult{HitMine: true}
	}

	count := e.floodFill(core.Point{X: x, Y: y})
	e.bus.Emit(events.MineCellsRevealed, events.CellsRevealedPayload{Count: count, Total: e.revealedCount})
	e.checkWin()

	return RevealResult{Success: true, Revealed: count}
}

// RevealArea reveals every safe, unflagged cell in a size×size square centered
// at (cx, cy). It never cascades and never triggers a mine.
func (e *Engine) RevealArea(cx, cy, size int) int {
	if e.cleared {
		return 0
	}

	half := size / 2
	count := 0
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			idx, ok := e.index(cx+dx, cy+dy)
			if !ok || e.mines[idx] || e.revealed[idx] || e.flagged[idx] {
				continue
			}
			e.reveal(idx)
			count++
		}
	}

	e.bus.Emit(events.MineAreaRevealed, events.AreaRevealedPayload{CX: cx, CY: cy, Size: size, Count: count})
	e.checkWin()
	return count
}

// ensureSafeStart moves a mine off the clicked cell to a random cell that is
// not a mine, not the clicked cell and not already revealed.
func (e *Engine) ensureSafeStart(clicked int) {
	if !e.mines[clicked] {
		return
	}

	e.mines[clicked] = false
	taken := func(i int) bool { return i == clicked || e.mines[i] || e.revealed[i] }
	idx, err := core.SampleFree(e.rng, len(e.mines), sampleAttempts, taken)
	if err != nil {
		// No room left for the mine; the layout shrinks by one
		e.mineCount--
		return
	}
	e.mines[idx] = true
}

// checkWin pays the clear bonus once when every safe cell is revealed.
func (e *Engine) checkWin() {
	if e.cleared || e.revealedCount < len(e.mines)-e.mineCount {
		return
	}
	e.cleared = true
	e.score += e.cfg.Scoring.ClearBoardBonus
	e.bus.Emit(events.MineBoardCleared, events.BoardClearedPayload{Score: e.score})
}

func (e *Engine) reveal(idx int) {
	e.revealed[idx] = true
	e.revealedCount++
}

// index converts coordinates to a cell index, rejecting off-grid positions.
func (e *Engine) index(x, y int) (int, bool) {
	p := core.Point{X: x, Y: y}
	if !p.InBounds(e.size) {
		return 0, false
	}
	return p.Index(e.size), true
}

// IsMine reports whether (x, y) holds a mine.
func (e *Engine) IsMine(x, y int) bool {
	idx, ok := e.index(x, y)
	return ok && e.mines[idx]
}

// IsRevealed reports whether (x, y) has been revealed.
func (e *Engine) IsRevealed(x, y int) bool {
	idx, ok := e.index(x, y)
	return ok && e.revealed[idx]
}

// IsFlagged reports whether (x, y) carries a flag.
func (e *Engine) IsFlagged(x, y int) bool {
	idx, ok := e.index(x, y)
	return ok && e.flagged[idx]
}

// Score returns the minesweeper score.
func (e *Engine) Score() int {
	return e.score
}

// MineCount returns the number of mines in the current layout.
func (e *Engine) MineCount() int {
	return e.mineCount
}

// RevealedCount returns the number of revealed cells.
func (e *Engine) RevealedCount() int {
	return e.revealedCount
}

// Cleared reports whether the current layout has been cleared.
func (e *Engine) Cleared() bool {
	return e.cleared
}

// FirstClick reports whether the current layout is still waiting for its first reveal.
func (e *Engine) FirstClick() bool {
	return e.firstClick
}
