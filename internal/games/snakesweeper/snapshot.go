package snakesweeper

import (
	"github.com/vovakirdan/snakesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/snakesweeper/internal/games/snake"
)

// FeedbackView holds the transient message of each board.
type FeedbackView struct {
	Snake string `json:"snake,omitempty"`
	Mine  string `json:"mine,omitempty"`
}

// Snapshot is an immutable copy of the whole game for presentation.
type Snapshot struct {
	Snake       snake.View       `json:"snake"`
	Minesweeper minesweeper.View `json:"minesweeper"`
	Phase       Phase            `json:"state"`
	Paused      bool             `json:"paused"`
	Reason      string           `json:"reason,omitempty"`
	Total       int              `json:"total"`
	Feedback    FeedbackView     `json:"feedback"`
}

// Snapshot returns the current state. Mines are exposed only after game over.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Snake:       c.snake.View(),
		Minesweeper: c.mines.View(c.phase == PhaseGameOver),
		Phase:       c.phase,
		Paused:      c.paused,
		Reason:      c.reason,
		Total:       c.TotalScore(),
		Feedback: FeedbackView{
			Snake: c.feedback[BoardSnake],
			Mine:  c.feedback[BoardMine],
		},
	}
}
