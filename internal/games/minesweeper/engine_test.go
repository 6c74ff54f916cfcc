package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/events"
)

type recorder struct {
	seen []events.Event
}

func (r *recorder) count(typ events.Type) int {
	n := 0
	for _, ev := range r.seen {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) last(typ events.Type) events.Event {
	for i := len(r.seen) - 1; i >= 0; i-- {
		if r.seen[i].Type == typ {
			return r.seen[i]
		}
	}
	return events.Event{}
}

func newEngine(t *testing.T, seed int64, mutate func(*config.GameConfig)) (*Engine, *recorder) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	bus := events.NewBus(nil)
	rec := &recorder{}
	for _, typ := range []events.Type{
		events.MineCorrectFlag, events.MineHit, events.MineCellsRevealed,
		events.MineAreaRevealed, events.MineBoardCleared, events.MineBoardRegenerated,
	} {
		bus.On(typ, func(ev events.Event) { rec.seen = append(rec.seen, ev) })
	}
	return New(cfg, rand.New(rand.NewSource(seed)), bus), rec
}

// assertBoardConsistent checks that revealed cells are never mines or flags.
func assertBoardConsistent(t *testing.T, e *Engine) {
	t.Helper()
	for idx := range e.mines {
		if e.revealed[idx] && e.mines[idx] {
			t.Errorf("cell %d is revealed and a mine", idx)
		}
		if e.revealed[idx] && e.flagged[idx] {
			t.Errorf("cell %d is revealed and flagged", idx)
		}
	}
}

func mineTotal(e *Engine) int {
	n := 0
	for _, m := range e.mines {
		if m {
			n++
		}
	}
	return n
}

func TestResetPlacesMineCount(t *testing.T) {
	for seed := range int64(20) {
		e, _ := newEngine(t, seed, nil)
		assert.Equal(t, 15, mineTotal(e))
		assert.Equal(t, 15, e.MineCount())
		assert.Equal(t, 0, e.RevealedCount())
		assert.True(t, e.FirstClick())
	}
}

func TestSafeStartRelocatesMine(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{12}))
	require.True(t, e.IsMine(2, 1))

	res := e.RevealCell(2, 1)

	assert.False(t, res.HitMine)
	assert.True(t, res.Success)
	assert.False(t, e.IsMine(2, 1))
	assert.True(t, e.IsRevealed(2, 1))
	assert.Equal(t, 1, mineTotal(e))
	assert.Equal(t, 0, rec.count(events.MineHit))
	assertBoardConsistent(t, e)
}

func TestFirstRevealNeverHits(t *testing.T) {
	for seed := range int64(10) {
		for idx := range 100 {
			e, rec := newEngine(t, seed, nil)
			res := e.RevealCell(idx%10, idx/10)
			if res.HitMine || rec.count(events.MineHit) != 0 {
				t.Fatalf("seed %d: first reveal at %d hit a mine", seed, idx)
			}
			require.Equal(t, 15, mineTotal(e))
			assertBoardConsistent(t, e)
		}
	}
}

func TestSecondRevealCanHit(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	// Mines wall off (9,9) so the first cascade cannot clear the board
	require.NoError(t, e.SetMines([]int{88, 89, 98}))
	e.RevealCell(0, 0)
	require.False(t, e.FirstClick())
	require.False(t, e.Cleared())

	res := e.RevealCell(8, 8)

	assert.True(t, res.HitMine)
	assert.False(t, res.Success)
	assert.Equal(t, events.HitPayload{X: 8, Y: 8}, rec.last(events.MineHit).Payload)
	assert.False(t, e.IsRevealed(8, 8))
}

func TestCorrectFlagScoresOnce(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{12, 50}))

	assert.True(t, e.ToggleFlag(2, 1))
	assert.Equal(t, 10, e.Score())
	assert.Equal(t, 1, rec.count(events.MineCorrectFlag))
	assert.Equal(t, events.CorrectFlagPayload{X: 2, Y: 1, Score: 10}, rec.last(events.MineCorrectFlag).Payload)

	// Removing the flag keeps the score
	assert.True(t, e.ToggleFlag(2, 1))
	assert.False(t, e.IsFlagged(2, 1))
	assert.Equal(t, 10, e.Score())
	assert.Equal(t, 1, rec.count(events.MineCorrectFlag))
}

func TestWrongFlagIsFree(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{12}))

	assert.True(t, e.ToggleFlag(5, 5))
	assert.True(t, e.IsFlagged(5, 5))
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, rec.count(events.MineCorrectFlag))
}

func TestFlagRejected(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{88, 89, 98}))
	e.RevealCell(0, 0)
	require.False(t, e.Cleared())

	assert.False(t, e.ToggleFlag(0, 0), "revealed cell")
	assert.True(t, e.ToggleFlag(9, 9), "walled-off safe cell")
	assert.False(t, e.ToggleFlag(-1, 0), "off grid")
	assert.False(t, e.ToggleFlag(0, 10), "off grid")
}

func TestRevealIgnoresFlaggedAndRevealed(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{0, 2, 20, 22}))

	require.True(t, e.ToggleFlag(1, 1))
	assert.Equal(t, RevealResult{}, e.RevealCell(1, 1))
	assert.True(t, e.FirstClick(), "no-op reveal keeps first-click state")

	res := e.RevealCell(1, 0)
	require.True(t, res.Success)
	assert.Equal(t, RevealResult{}, e.RevealCell(1, 0))
	assert.Equal(t, RevealResult{}, e.RevealCell(10, 10))
	assert.Equal(t, 1, rec.count(events.MineCellsRevealed))
}

func TestFloodFillRevealsRegion(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{20, 3}))

	res := e.RevealCell(0, 0)

	assert.Equal(t, RevealResult{Success: true, Revealed: 6}, res)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}, {2, 1}} {
		assert.True(t, e.IsRevealed(p[0], p[1]), "cell %v", p)
	}
	assert.Equal(t, events.CellsRevealedPayload{Count: 6, Total: 6}, rec.last(events.MineCellsRevealed).Payload)
}

func TestNumberedCellDoesNotCascade(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{20, 3}))

	res := e.RevealCell(2, 0) // next to the mine at (3,0)

	assert.Equal(t, 1, res.Revealed)
	assert.Equal(t, 1, e.NeighborMines(2, 0))
}

func TestFloodFillStopsAtFlags(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{99}))
	require.True(t, e.ToggleFlag(0, 0))

	e.RevealCell(5, 5)

	assert.False(t, e.IsRevealed(0, 0))
	assert.True(t, e.IsFlagged(0, 0))
	assert.Equal(t, 98, e.RevealedCount())
	assertBoardConsistent(t, e)
}

func TestNeighborMines(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{0, 1, 10, 11}))

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{2, 0, 2},
		{2, 2, 1},
		{5, 5, 0},
		{9, 9, 0},
	}
	for _, tt := range tests {
		if got := e.NeighborMines(tt.x, tt.y); got != tt.want {
			t.Errorf("NeighborMines(%d, %d) = %d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRevealArea(t *testing.T) {
	e, rec := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{44})) // (4,4)
	require.True(t, e.ToggleFlag(6, 6))

	n := e.RevealArea(5, 5, 3)

	// 9 cells minus the mine and the flag
	assert.Equal(t, 7, n)
	assert.False(t, e.IsRevealed(4, 4))
	assert.False(t, e.IsRevealed(6, 6))
	assert.True(t, e.FirstClick(), "area reveals are not clicks")
	assert.Equal(t, events.AreaRevealedPayload{CX: 5, CY: 5, Size: 3, Count: 7}, rec.last(events.MineAreaRevealed).Payload)
	assert.Equal(t, 0, rec.count(events.MineHit))

	// Overlapping area counts only new cells
	assert.Equal(t, 3, e.RevealArea(5, 6, 3))
	assertBoardConsistent(t, e)
}

func TestRevealAreaClipsToGrid(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{99}))

	assert.Equal(t, 4, e.RevealArea(0, 0, 3))
}

func TestSafeStartAvoidsRevealedCells(t *testing.T) {
	// 3x3 board: mine at the center, everything else but (0,0) revealed by area
	e, _ := newEngine(t, 1, func(c *config.GameConfig) {
		c.Grid.Size = 3
		c.Minesweeper.MineCount = 1
	})
	require.NoError(t, e.SetMines([]int{4}))
	for _, p := range [][2]int{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		e.revealed[p[1]*3+p[0]] = true
		e.revealedCount++
	}

	res := e.RevealCell(1, 1)

	// The only legal target is (0,0)
	assert.False(t, res.HitMine)
	assert.True(t, e.IsMine(0, 0))
	assertBoardConsistent(t, e)
}

func TestBoardClearedOnce(t *testing.T) {
	e, rec := newEngine(t, 1, func(c *config.GameConfig) {
		c.Grid.Size = 3
		c.Minesweeper.MineCount = 1
	})
	require.NoError(t, e.SetMines([]int{0}))

	res := e.RevealCell(2, 2)

	assert.Equal(t, 8, res.Revealed)
	assert.True(t, e.Cleared())
	assert.Equal(t, 50, e.Score())
	require.Equal(t, 1, rec.count(events.MineBoardCleared))
	assert.Equal(t, events.BoardClearedPayload{Score: 50}, rec.last(events.MineBoardCleared).Payload)

	// Reveals are locked until regeneration
	assert.Equal(t, 0, e.RevealArea(1, 1, 3))
	assert.Equal(t, RevealResult{}, e.RevealCell(0, 0))
	assert.Equal(t, 1, rec.count(events.MineBoardCleared))
	assert.Equal(t, 50, e.Score())

	// Flagging the remaining mine still pays
	assert.True(t, e.ToggleFlag(0, 0))
	assert.Equal(t, 1, rec.count(events.MineCorrectFlag))
	assert.Equal(t, 60, e.Score())
	assert.Equal(t, 1, rec.count(events.MineBoardCleared))
}

func TestWinNotBeforeAllSafeCells(t *testing.T) {
	e, rec := newEngine(t, 1, func(c *config.GameConfig) {
		c.Grid.Size = 3
		c.Minesweeper.MineCount = 1
	})
	require.NoError(t, e.SetMines([]int{0}))

	e.RevealCell(1, 0) // numbered, reveals only itself
	assert.Equal(t, 0, rec.count(events.MineBoardCleared))

	e.RevealArea(1, 1, 3)
	assert.Equal(t, 1, rec.count(events.MineBoardCleared))
}

func TestRegenerateBoardKeepsScore(t *testing.T) {
	e, rec := newEngine(t, 9, nil)
	require.NoError(t, e.SetMines([]int{12}))
	e.ToggleFlag(2, 1)
	e.RevealArea(7, 7, 3)
	require.Equal(t, 10, e.Score())

	e.RegenerateBoard()

	assert.Equal(t, 10, e.Score())
	assert.Equal(t, 15, mineTotal(e))
	assert.Equal(t, 0, e.RevealedCount())
	assert.False(t, e.IsFlagged(2, 1))
	assert.True(t, e.FirstClick())
	assert.False(t, e.Cleared())
	assert.Equal(t, 1, rec.count(events.MineBoardRegenerated))
}

func TestResetClearsScore(t *testing.T) {
	e, _ := newEngine(t, 9, nil)
	require.NoError(t, e.SetMines([]int{12}))
	e.ToggleFlag(2, 1)

	e.Reset()

	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 15, mineTotal(e))
}

func TestSetMinesValidation(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	assert.Error(t, e.SetMines([]int{100}))
	assert.Error(t, e.SetMines([]int{-1}))

	all := make([]int, 100)
	for i := range all {
		all[i] = i
	}
	assert.Error(t, e.SetMines(all))

	require.NoError(t, e.SetMines([]int{5, 5, 6}))
	assert.Equal(t, 2, e.MineCount())
}

func TestViewHidesMines(t *testing.T) {
	e, _ := newEngine(t, 1, nil)
	require.NoError(t, e.SetMines([]int{20, 3}))
	e.RevealCell(0, 0)
	e.ToggleFlag(3, 0)

	v := e.View(false)
	assert.Nil(t, v.Mines)
	assert.Len(t, v.Revealed, 6)
	assert.Equal(t, []int{3}, v.Flagged)
	assert.Contains(t, v.Revealed, RevealedCell{X: 2, Y: 0, Neighbors: 1})

	assert.Equal(t, []int{3, 20}, e.View(true).Mines)
}
