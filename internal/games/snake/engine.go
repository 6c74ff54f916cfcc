// Package snake implements the snake board: a toroidal grid where the snake
// eats food, speeds up, and dies when it bites itself while vulnerable.
package snake

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/snakesweeper/internal/clock"
	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/core"
	"github.com/vovakirdan/snakesweeper/internal/events"
)

// DeathReason is reported with snake:died.
const DeathReason = "snake hit itself"

// foodAttempts caps rejection sampling before the linear scan fallback.
const foodAttempts = 1000

// Timer schedules keyed one-shot callbacks. *clock.Scheduler implements it.
type Timer interface {
	After(key string, d time.Duration, fn func())
	Cancel(key string) bool
}

// Engine owns the snake body, direction, food, score, speed and invincibility.
type Engine struct {
	cfg   config.GameConfig
	rng   *rand.Rand
	bus   *events.Bus
	timer Timer

	snake      []core.Point // Head at index 0
	direction  Direction
	nextDir    Direction // Buffered direction applied on next Update
	food       core.Point
	score      int
	speed      time.Duration
	invincible bool
	dead       bool
}

// New creates a snake engine in its initial state.
func New(cfg config.GameConfig, rng *rand.Rand, bus *events.Bus, timer Timer) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		bus:   bus,
		timer: timer,
	}
	e.Reset()
	return e
}

// Reset restores the initial state: one segment at the start position moving right.
func (e *Engine) Reset() {
	e.timer.Cancel(clock.KeyInvincible)

	start := core.Point{X: e.cfg.Snake.InitialPosition.X, Y: e.cfg.Snake.InitialPosition.Y}
	length := max(1, e.cfg.Snake.InitialLength)
	e.snake = make([]core.Point, 0, length)
	for i := range length {
		// Extra segments trail to the left of the head
		e.snake = append(e.snake, core.Point{X: start.X - i, Y: start.Y}.Wrap(e.cfg.Grid.Size))
	}

	e.direction = DirRight
	e.nextDir = DirRight
	e.score = 0
	e.speed = e.cfg.InitialSpeed()
	e.invincible = false
	e.dead = false
	e.food = core.NoPoint
	e.spawnFood()
}

// ChangeDirection buffers d for the next Update.
// A turn along the axis the snake already travels on is rejected, which rules out 180° reversals.
func (e *Engine) ChangeDirection(d Direction) bool {
	if e.dead || d.Horizontal() == e.direction.Horizontal() {
		return false
	}
	e.nextDir = d
	return true
}

// Update advances the snake one cell. It is a no-op once the snake is dead.
func (e *Engine) Update() {
	if e.dead {
		return
	}

	e.direction = e.nextDir
	newHead := e.snake[0].Add(e.direction.Delta()).Wrap(e.cfg.Grid.Size)

	if !e.invincible && e.occupied(newHead) {
		e.dead = true
		e.bus.Emit(events.SnakeDied, events.DiedPayload{Reason: DeathReason})
		return
	}

	e.snake = append(e.snake, core.Point{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = newHead

	if newHead == e.food {
		e.eatFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
		if e.food == core.NoPoint {
			// A previous spawn found no room; retry now that the tail moved
			e.spawnFood()
		}
	}

	e.bus.Emit(events.SnakeUpdated, nil)
}

// eatFood scores, respawns food and speeds the snake up.
func (e *Engine) eatFood() {
	e.score += e.cfg.Scoring.Food
	e.spawnFood()

	next := time.Duration(math.Round(float64(e.speed) * e.cfg.Snake.SpeedMultiplier))
	e.speed = max(e.cfg.MinSpeed(), next)

	e.bus.Emit(events.SnakeAteFood, events.AteFoodPayload{Score: e.score, Speed: e.speed})
}

// Grow appends n copies of the tail. The copies overlap until the snake moves past them.
func (e *Engine) Grow(n int) {
	if n <= 0 || e.dead {
		return
	}
	tail := e.snake[len(e.snake)-1]
	for range n {
		e.snake = append(e.snake, tail)
	}
	e.bus.Emit(events.SnakeGrew, events.GrewPayload{Segments: n})
}

// ActivateInvincible grants invincibility, restarting the timer if already active.
func (e *Engine) ActivateInvincible() {
	if e.dead {
		return
	}
	e.invincible = true
	e.timer.After(clock.KeyInvincible, e.cfg.InvincibleDuration(), func() {
		e.invincible = false
		e.bus.Emit(events.SnakeInvincibleEnded, nil)
	})
	e.bus.Emit(events.SnakeInvincibleActivated, nil)
}

// PlaceFood moves the food to p. Used to load fixtures; p must be free and on the grid.
func (e *Engine) PlaceFood(p core.Point) error {
	if !p.InBounds(e.cfg.Grid.Size) {
		return fmt.Errorf("snake: food %v is off the grid", p)
	}
	if e.occupied(p) {
		return fmt.Errorf("snake: food %v overlaps the snake", p)
	}
	e.food = p
	return nil
}

// spawnFood places food on a random cell not covered by the snake.
func (e *Engine) spawnFood() {
	size := e.cfg.Grid.Size
	taken := make(map[int]bool, len(e.snake))
	for _, seg := range e.snake {
		taken[seg.Index(size)] = true
	}

	idx, err := core.SampleFree(e.rng, size*size, foodAttempts, func(i int) bool { return taken[i] })
	if err != nil {
		e.food = core.NoPoint
		e.bus.Emit(events.SnakeFault, events.FaultPayload{Err: fmt.Errorf("snake: cannot place food: %w", err)})
		return
	}
	e.food = core.PointFromIndex(idx, size)
}

// occupied reports whether any segment, tail included, is at p.
func (e *Engine) occupied(p core.Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Alive reports whether the snake is still running.
func (e *Engine) Alive() bool {
	return !e.dead
}

// Score returns the snake score.
func (e *Engine) Score() int {
	return e.score
}

// Speed returns the current tick interval.
func (e *Engine) Speed() time.Duration {
	return e.speed
}

// Head returns the head position.
func (e *Engine) Head() core.Point {
	return e.snake[0]
}

// Len returns the number of segments, overlapping grown copies included.
func (e *Engine) Len() int {
	return len(e.snake)
}
