package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakesweeper/internal/platform/web"
)

var (
	flagWebAddr string
	flagOrigins []string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the WebSocket server",
	Long: `Start an HTTP server that hosts one game per WebSocket connection.

Endpoints:
  GET /ws?seed=N  - Upgrade to a game session (seed is optional)
  GET /healthz    - Liveness probe

Clients send JSON messages such as {"type":"reveal","x":3,"y":4} and
receive a snapshot message whenever the game changes.

Examples:
  snakesweeper web
  snakesweeper web --addr :9000 --origin http://localhost:5173`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "origin", nil, "Allowed browser origins (default: any)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "snakesweeper-web")
	if err != nil {
		return err
	}
	defer closeLog()

	server := web.NewServer(web.Config{
		Address:        flagWebAddr,
		AllowedOrigins: flagOrigins,
		TickRate:       flagFPS,
		Game:           gameCfg,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
