// Package events carries notifications between the snake engine, the
// minesweeper engine, the controller, and any presentation layer.
package events

import "time"

// Type names an event. Values are stable and appear on the wire.
type Type string

const (
	// SnakeUpdated fires after every move that did not kill the snake.
	// Payload: nil
	SnakeUpdated Type = "snake:updated"

	// SnakeAteFood fires when the head lands on the food cell.
	// Consumer: controller (reveals a minefield area) | Payload: AteFoodPayload
	SnakeAteFood Type = "snake:ate-food"

	// SnakeDied fires when the head hits the body while vulnerable.
	// Consumer: controller (game over) | Payload: DiedPayload
	SnakeDied Type = "snake:died"

	// SnakeGrew fires after segments are appended at the tail.
	// Payload: GrewPayload
	SnakeGrew Type = "snake:grew"

	// SnakeInvincibleActivated fires on every grant, including restarts of a running timer.
	// Payload: nil
	SnakeInvincibleActivated Type = "snake:invincible-activated"

	// SnakeInvincibleEnded fires when the invincibility timer expires.
	// Payload: nil
	SnakeInvincibleEnded Type = "snake:invincible-ended"

	// SnakeFault fires when no free cell is left for food.
	// Payload: FaultPayload
	SnakeFault Type = "snake:fault"

	// MineCorrectFlag fires when a flag is placed on a mine.
	// Consumer: controller (grow + invincibility) | Payload: CorrectFlagPayload
	MineCorrectFlag Type = "mine:correct-flag"

	// MineHit fires when a revealed cell is a mine.
	// Consumer: controller (game over) | Payload: HitPayload
	MineHit Type = "mine:hit"

	// MineCellsRevealed fires after a successful cell reveal.
	// Consumer: controller (combo growth) | Payload: CellsRevealedPayload
	MineCellsRevealed Type = "mine:cells-revealed"

	// MineAreaRevealed fires after an area reveal triggered by food.
	// Payload: AreaRevealedPayload
	MineAreaRevealed Type = "mine:area-revealed"

	// MineBoardCleared fires once per layout when every safe cell is revealed.
	// Consumer: controller (schedules regeneration) | Payload: BoardClearedPayload
	MineBoardCleared Type = "mine:board-cleared"

	// MineBoardRegenerated fires after a new mine layout replaces a cleared one.
	// Payload: nil
	MineBoardRegenerated Type = "mine:board-regenerated"
)

// Event is a single notification.
type Event struct {
	Type    Type
	Payload any
}

// DiedPayload carries the reason the snake died.
type DiedPayload struct {
	Reason string
}

// AteFoodPayload reports the snake score and tick interval after eating.
type AteFoodPayload struct {
	Score int
	Speed time.Duration
}

// GrewPayload reports how many segments were added.
type GrewPayload struct {
	Segments int
}

// FaultPayload wraps an internal sampling failure.
type FaultPayload struct {
	Err error
}

// CorrectFlagPayload identifies the flagged mine and the new minesweeper score.
type CorrectFlagPayload struct {
	X, Y  int
	Score int
}

// HitPayload identifies the mine that was revealed.
type HitPayload struct {
	X, Y int
}

// CellsRevealedPayload reports newly revealed cells for one action and the board total.
type CellsRevealedPayload struct {
	Count int
	Total int
}

// AreaRevealedPayload describes an area reveal.
type AreaRevealedPayload struct {
	CX, CY int
	Size   int
	Count  int
}

// BoardClearedPayload reports the minesweeper score including the clear bonus.
type BoardClearedPayload struct {
	Score int
}
