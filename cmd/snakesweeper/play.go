package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakesweeper/internal/core"
	"github.com/vovakirdan/snakesweeper/internal/games/snakesweeper"
	"github.com/vovakirdan/snakesweeper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD     - Steer the snake
  HJKL            - Move the minefield cursor
  Space/Enter     - Reveal the cell under the cursor
  F               - Flag the cell under the cursor
  Mouse           - Left click reveals, right click flags
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  snakesweeper play
  snakesweeper play --seed 42 --fps 30
  snakesweeper play --config ./my.yaml --log-file debug.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard, "snakesweeper")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := snakesweeper.NewGame(gameCfg, logger)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
