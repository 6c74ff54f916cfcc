// Package snakesweeper couples the snake and minesweeper boards: it wires
// engine events into cross-board rewards, owns game over and restart, and
// adapts the pair to the platform Game interface.
package snakesweeper

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakesweeper/internal/clock"
	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/events"
	"github.com/vovakirdan/snakesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/snakesweeper/internal/games/snake"
)

// Phase is the controller's terminal state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Board names a side of the screen for feedback messages.
type Board string

const (
	BoardSnake Board = "snake"
	BoardMine  Board = "mine"
)

// Feedback messages shown under the boards.
const (
	MsgAteFood     = "Snake ate food! Revealed an area"
	MsgCorrectFlag = "Correct flag! +1 length, 3s invincible"
	MsgBigReveal   = "Big reveal! +1 length"
	MsgCleared     = "Board cleared! +50"
	MsgRegenerated = "Minefield regenerated"
)

// Controller owns both engines, the scheduler and the overall game state.
// All methods must be called from a single goroutine.
type Controller struct {
	cfg    config.GameConfig
	rng    *rand.Rand
	bus    *events.Bus
	sched  *clock.Scheduler
	logger *log.Logger

	snake *snake.Engine
	mines *minesweeper.Engine

	phase       Phase
	reason      string
	paused      bool
	moveElapsed time.Duration // Virtual time since the last snake move
	feedback    map[Board]string
}

// NewController creates both engines from cfg and wires their events.
// A nil logger discards log output.
func NewController(cfg config.GameConfig, seed int64, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		bus:      events.NewBus(logger),
		sched:    clock.NewScheduler(),
		logger:   logger,
		phase:    PhasePlaying,
		feedback: make(map[Board]string),
	}
	c.snake = snake.New(cfg, c.rng, c.bus, c.sched)
	c.mines = minesweeper.New(cfg, c.rng, c.bus)
	c.wire()
	return c
}

// wire subscribes the cross-board rules.
func (c *Controller) wire() {
	c.bus.On(events.SnakeAteFood, func(events.Event) {
		c.revealRandomArea()
		c.showFeedback(BoardMine, MsgAteFood)
	})
	c.bus.On(events.SnakeDied, func(ev events.Event) {
		reason := snake.DeathReason
		if p, ok := ev.Payload.(events.DiedPayload); ok {
			reason = p.Reason
		}
		c.endGame(reason)
	})
	c.bus.On(events.SnakeFault, func(ev events.Event) {
		if p, ok := ev.Payload.(events.FaultPayload); ok {
			c.logger.Error("snake fault", "err", p.Err)
		}
	})

	c.bus.On(events.MineCorrectFlag, func(events.Event) {
		c.snake.Grow(1)
		c.snake.ActivateInvincible()
		c.showFeedback(BoardSnake, MsgCorrectFlag)
	})
	c.bus.On(events.MineHit, func(events.Event) {
		c.endGame(minesweeper.HitReason)
	})
	c.bus.On(events.MineCellsRevealed, func(ev events.Event) {
		p, ok := ev.Payload.(events.CellsRevealedPayload)
		if ok && p.Count >= c.cfg.Scoring.RevealComboThreshold {
			c.snake.Grow(1)
			c.showFeedback(BoardSnake, MsgBigReveal)
		}
	})
	c.bus.On(events.MineBoardCleared, func(events.Event) {
		c.showFeedback(BoardMine, MsgCleared)
		c.sched.After(clock.KeyRegenerate, c.cfg.BoardRegenDelay(), c.mines.RegenerateBoard)
	})
	c.bus.On(events.MineBoardRegenerated, func(events.Event) {
		c.logger.Debug("minefield regenerated", "score", c.mines.Score())
		c.showFeedback(BoardMine, MsgRegenerated)
	})
}

// revealRandomArea reveals a square around a random interior cell, so the
// whole area stays on the grid.
func (c *Controller) revealRandomArea() {
	size := c.cfg.Effects.RevealAreaSize
	half := size / 2
	span := c.cfg.Grid.Size - 2*half
	cx := half + c.rng.Intn(span)
	cy := half + c.rng.Intn(span)
	c.mines.RevealArea(cx, cy, size)
}

// showFeedback sets a board message and replaces any pending clear of the same board.
func (c *Controller) showFeedback(board Board, msg string) {
	c.feedback[board] = msg
	key := clock.KeyFeedbackSnake
	if board == BoardMine {
		key = clock.KeyFeedbackMine
	}
	c.sched.After(key, c.cfg.FeedbackDuration(), func() {
		delete(c.feedback, board)
	})
}

// endGame freezes both boards. Later calls keep the first reason.
func (c *Controller) endGame(reason string) {
	if c.phase == PhaseGameOver {
		return
	}
	c.phase = PhaseGameOver
	c.reason = reason
	c.logger.Info("game over",
		"reason", reason,
		"snake", c.snake.Score(),
		"mine", c.mines.Score(),
		"total", c.TotalScore())
}

// Tick advances virtual time by dt: pending timers fire, then the snake
// moves if its interval has elapsed. No-op while paused or after game over.
func (c *Controller) Tick(dt time.Duration) {
	if !c.active() {
		return
	}
	c.sched.Advance(dt)
	if c.phase != PhasePlaying {
		return
	}

	c.moveElapsed += dt
	if c.moveElapsed >= c.snake.Speed() {
		c.moveElapsed = 0
		c.snake.Update()
	}
}

// OnDirectionKey steers the snake from a key name such as "ArrowUp" or "w".
// Unknown keys are ignored.
func (c *Controller) OnDirectionKey(key string) bool {
	d, ok := snake.ParseKey(key)
	if !ok {
		return false
	}
	return c.ChangeDirection(d)
}

// ChangeDirection steers the snake.
func (c *Controller) ChangeDirection(d snake.Direction) bool {
	if !c.active() {
		return false
	}
	return c.snake.ChangeDirection(d)
}

// OnCellPrimaryClick reveals a minefield cell.
func (c *Controller) OnCellPrimaryClick(x, y int) minesweeper.RevealResult {
	if !c.active() {
		return minesweeper.RevealResult{}
	}
	return c.mines.RevealCell(x, y)
}

// OnCellSecondaryClick toggles a flag on a minefield cell.
func (c *Controller) OnCellSecondaryClick(x, y int) bool {
	if !c.active() {
		return false
	}
	return c.mines.ToggleFlag(x, y)
}

// OnRestart resets both engines and returns to playing.
func (c *Controller) OnRestart() {
	c.sched.CancelAll()
	c.snake.Reset()
	c.mines.Reset()
	c.phase = PhasePlaying
	c.reason = ""
	c.paused = false
	c.moveElapsed = 0
	clear(c.feedback)
}

// Reseed restarts with a new random sequence.
func (c *Controller) Reseed(seed int64) {
	c.rng.Seed(seed)
	c.OnRestart()
}

// TogglePause pauses or resumes the game. Ignored after game over.
func (c *Controller) TogglePause() {
	if c.phase == PhaseGameOver {
		return
	}
	c.paused = !c.paused
}

func (c *Controller) active() bool {
	return c.phase == PhasePlaying && !c.paused
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Reason returns why the game ended, or "" while playing.
func (c *Controller) Reason() string {
	return c.reason
}

// Paused reports whether the game is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// TotalScore returns the combined score of both boards.
func (c *Controller) TotalScore() int {
	return c.snake.Score() + c.mines.Score()
}

// Feedback returns the current message for a board, or "".
func (c *Controller) Feedback(board Board) string {
	return c.feedback[board]
}

// Bus exposes the event bus so presentations can subscribe.
func (c *Controller) Bus() *events.Bus {
	return c.bus
}

// Config returns the configuration the engines were built with.
func (c *Controller) Config() config.GameConfig {
	return c.cfg
}
