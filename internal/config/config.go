// Package config provides YAML-based game configuration loading and
// validation for the snake and minesweeper boards.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains every tunable constant of the game.
// All engines read it once at initialization.
type GameConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Snake       SnakeConfig       `yaml:"snake"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Effects     EffectsConfig     `yaml:"effects"`
}

// GridConfig defines the board dimensions shared by both boards.
type GridConfig struct {
	Size     int `yaml:"size"`      // Cells per side
	CellSize int `yaml:"cell_size"` // Pixel size for browser presentations
}

// Position is a configured grid coordinate.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig defines snake movement parameters.
type SnakeConfig struct {
	InitialSpeedMS  int      `yaml:"initial_speed_ms"` // Tick interval at start
	MinSpeedMS      int      `yaml:"min_speed_ms"`     // Fastest allowed tick interval
	SpeedMultiplier float64  `yaml:"speed_multiplier"` // Applied to the interval on each food
	InitialLength   int      `yaml:"initial_length"`
	InitialPosition Position `yaml:"initial_position"`
}

// MinesweeperConfig defines minefield parameters.
type MinesweeperConfig struct {
	MineCount         int `yaml:"mine_count"`
	BoardRegenDelayMS int `yaml:"board_regen_delay_ms"` // Pause between clear and new layout
}

// ScoringConfig defines point values and reward thresholds.
type ScoringConfig struct {
	Food                 int `yaml:"food"`
	FlagCorrect          int `yaml:"flag_correct"`
	ClearBoardBonus      int `yaml:"clear_board_bonus"`
	RevealComboThreshold int `yaml:"reveal_combo_threshold"` // Cells in one reveal that grow the snake
}

// EffectsConfig defines cross-board reward effects.
type EffectsConfig struct {
	InvincibleDurationMS int `yaml:"invincible_duration_ms"`
	FeedbackDurationMS   int `yaml:"feedback_duration_ms"`
	RevealAreaSize       int `yaml:"reveal_area_size"` // Side of the square revealed when food is eaten
}

// Cells returns the total number of cells on one board.
func (c GameConfig) Cells() int {
	return c.Grid.Size * c.Grid.Size
}

// InitialSpeed returns the starting snake tick interval.
func (c GameConfig) InitialSpeed() time.Duration {
	return ms(c.Snake.InitialSpeedMS)
}

// MinSpeed returns the fastest snake tick interval.
func (c GameConfig) MinSpeed() time.Duration {
	return ms(c.Snake.MinSpeedMS)
}

// InvincibleDuration returns how long one invincibility grant lasts.
func (c GameConfig) InvincibleDuration() time.Duration {
	return ms(c.Effects.InvincibleDurationMS)
}

// FeedbackDuration returns how long a feedback message stays visible.
func (c GameConfig) FeedbackDuration() time.Duration {
	return ms(c.Effects.FeedbackDurationMS)
}

// BoardRegenDelay returns the delay between clearing and regenerating the minefield.
func (c GameConfig) BoardRegenDelay() time.Duration {
	return ms(c.Minesweeper.BoardRegenDelayMS)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports configurations the engines cannot run with.
func (c GameConfig) Validate() error {
	var errs []error
	size := c.Grid.Size

	if size < 3 {
		errs = append(errs, fmt.Errorf("grid.size must be at least 3, got %d", size))
	}
	if c.Minesweeper.MineCount < 1 || c.Minesweeper.MineCount >= size*size {
		errs = append(errs, fmt.Errorf("minesweeper.mine_count must be in [1, %d), got %d", size*size, c.Minesweeper.MineCount))
	}
	if c.Snake.MinSpeedMS <= 0 || c.Snake.MinSpeedMS > c.Snake.InitialSpeedMS {
		errs = append(errs, fmt.Errorf("snake.min_speed_ms must be in (0, initial_speed_ms], got %d", c.Snake.MinSpeedMS))
	}
	if c.Snake.SpeedMultiplier <= 0 || c.Snake.SpeedMultiplier > 1 {
		errs = append(errs, fmt.Errorf("snake.speed_multiplier must be in (0, 1], got %g", c.Snake.SpeedMultiplier))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be positive, got %d", c.Snake.InitialLength))
	}
	p := c.Snake.InitialPosition
	if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
		errs = append(errs, fmt.Errorf("snake.initial_position (%d,%d) is off the grid", p.X, p.Y))
	}
	if a := c.Effects.RevealAreaSize; a < 1 || a%2 == 0 || a > size {
		errs = append(errs, fmt.Errorf("effects.reveal_area_size must be odd and in [1, %d], got %d", size, a))
	}
	if c.Effects.InvincibleDurationMS < 0 || c.Effects.FeedbackDurationMS < 0 || c.Minesweeper.BoardRegenDelayMS < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
