package config

import (
	_ "embed"
)

//go:embed defaults/snakesweeper.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/snakesweeper.yaml and is used if the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Size:     10,
			CellSize: 35,
		},
		Snake: SnakeConfig{
			InitialSpeedMS:  200,
			MinSpeedMS:      80,
			SpeedMultiplier: 0.98,
			InitialLength:   1,
			InitialPosition: Position{X: 5, Y: 5},
		},
		Minesweeper: MinesweeperConfig{
			MineCount:         15,
			BoardRegenDelayMS: 1000,
		},
		Scoring: ScoringConfig{
			Food:                 10,
			FlagCorrect:          10,
			ClearBoardBonus:      50,
			RevealComboThreshold: 5,
		},
		Effects: EffectsConfig{
			InvincibleDurationMS: 3000,
			FeedbackDurationMS:   2000,
			RevealAreaSize:       3,
		},
	}
}
