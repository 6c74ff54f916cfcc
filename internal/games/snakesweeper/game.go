package snakesweeper

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/core"
	"github.com/vovakirdan/snakesweeper/internal/games/snake"
)

// Game adapts the controller to the fixed-tick core.Game interface used by the terminal platform.
type Game struct {
	cfg    config.GameConfig
	logger *log.Logger
	ctrl   *Controller

	dt      time.Duration // Virtual time per Step
	screenW int
	screenH int
	cursor  core.Point // Keyboard cursor on the minefield
}

// NewGame creates a game. Reset must be called before Step.
func NewGame(cfg config.GameConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snakesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake + Minesweeper"
}

// Reset starts a new game with the seed from cfg. The controller and its
// engines are created once and reseeded afterwards.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.dt = cfg.TickInterval()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = core.Point{X: g.cfg.Grid.Size / 2, Y: g.cfg.Grid.Size / 2}

	if g.ctrl == nil {
		g.ctrl = NewController(g.cfg, cfg.Seed, g.logger)
		return
	}
	g.ctrl.Reseed(cfg.Seed)
}

// Resize updates the screen size used to map clicks to cells.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies one frame of input and advances virtual time by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	c := g.ctrl

	if in.Has(core.ActionRestart) && c.Phase() == PhaseGameOver {
		c.OnRestart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		c.TogglePause()
	}

	// Steering: first matching direction wins
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		if d, ok := snake.ActionDirection(a); ok {
			c.ChangeDirection(d)
		}
		break
	}

	g.moveCursor(in)
	if in.Has(core.ActionReveal) {
		c.OnCellPrimaryClick(g.cursor.X, g.cursor.Y)
	}
	if in.Has(core.ActionFlag) {
		c.OnCellSecondaryClick(g.cursor.X, g.cursor.Y)
	}

	for _, click := range in.Clicks {
		cell, ok := g.MineCellAt(click.X, click.Y)
		if !ok {
			continue
		}
		g.cursor = cell
		switch click.Button {
		case core.ButtonPrimary:
			c.OnCellPrimaryClick(cell.X, cell.Y)
		case core.ButtonSecondary:
			c.OnCellSecondaryClick(cell.X, cell.Y)
		}
	}

	c.Tick(g.dt)
	return core.StepResult{State: g.State()}
}

// moveCursor moves the minefield cursor, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	if g.ctrl.Phase() != PhasePlaying || g.ctrl.Paused() {
		return
	}
	last := g.cfg.Grid.Size - 1
	switch {
	case in.Has(core.ActionCursorUp):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, last)
	case in.Has(core.ActionCursorDown):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, last)
	case in.Has(core.ActionCursorLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, last)
	case in.Has(core.ActionCursorRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, last)
	}
}

// MineCellAt maps a screen position to a minefield cell.
func (g *Game) MineCellAt(x, y int) (core.Point, bool) {
	l := g.layout()
	if l.tooSmall {
		return core.Point{}, false
	}
	return l.cellAt(l.mine, x, y, g.cfg.Grid.Size)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.TotalScore(),
		GameOver: g.ctrl.Phase() == PhaseGameOver,
		Paused:   g.ctrl.Paused(),
	}
}

// Controller exposes the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Cursor returns the minefield keyboard cursor.
func (g *Game) Cursor() core.Point {
	return g.cursor
}
