package snake

import (
	"time"

	"github.com/vovakirdan/snakesweeper/internal/core"
)

// View is a read-only copy of the snake state for presentation and tests.
type View struct {
	Segments   []core.Point  `json:"segments"`
	Food       core.Point    `json:"food"`
	Score      int           `json:"score"`
	Speed      time.Duration `json:"-"`
	SpeedMS    float64       `json:"speed"`
	Invincible bool          `json:"invincible"`
	Direction  Direction     `json:"-"`
	Alive      bool          `json:"alive"`
}

// View returns a snapshot of the current state. The segment slice is a copy.
func (e *Engine) View() View {
	return View{
		Segments:   append([]core.Point(nil), e.snake...),
		Food:       e.food,
		Score:      e.score,
		Speed:      e.speed,
		SpeedMS:    float64(e.speed) / float64(time.Millisecond),
		Invincible: e.invincible,
		Direction:  e.direction,
		Alive:      !e.dead,
	}
}
