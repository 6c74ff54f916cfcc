// snakesweeper is a terminal game played on two boards at once: a snake
// board and a minefield, where progress on one board changes the other.
//
// Usage:
//
//	snakesweeper play      - Play in the terminal
//	snakesweeper serve     - Start SSH server for remote play
//	snakesweeper web       - Start WebSocket server for browser clients
//	snakesweeper config    - Print the effective game configuration
//
// Global flags:
//
//	--config <path>    - Custom game config YAML
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakesweeper/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakesweeper",
	Short: "Snake and Minesweeper on two linked boards",
	Long: `Snakesweeper runs a snake board and a minefield side by side.

Eating food reveals part of the minefield, correct flags make the snake
grow and turn invincible, and large reveals grow the snake. Hitting a
mine or biting yourself ends the game.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  web      - Start WebSocket server for browser clients
  config   - Print the effective game configuration

Examples:
  snakesweeper play
  snakesweeper play --seed 42
  snakesweeper serve --ssh :2222
  snakesweeper web --addr :8080
  snakesweeper config --config ./my.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from --config and the search path.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when
// the flag is empty. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
