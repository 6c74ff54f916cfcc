package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snakesweeper/internal/games/snakesweeper"
)

// session drives one controller over one WebSocket connection.
// The game loop goroutine is the only one touching the controller and writing to the socket.
type session struct {
	conn   *websocket.Conn
	ctrl   *snakesweeper.Controller
	logger *log.Logger
	step   time.Duration
	last   []byte // Last snapshot sent
}

func (s *session) run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	inbox := make(chan ClientMessage, 16)

	g.Go(func() error {
		defer close(inbox)
		return s.readLoop(gCtx, inbox)
	})
	g.Go(func() error {
		return s.gameLoop(gCtx, inbox)
	})
	g.Go(func() error {
		// Unblock the reader when the loop ends or the server shuts down
		<-gCtx.Done()
		return s.conn.Close()
	})

	err := g.Wait()
	if errors.Is(err, errClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var errClosed = errors.New("web: connection closed")

// readLoop forwards client messages to inbox. Messages that fail to decode
// (bad JSON, wrong field types) are logged and dropped; only transport
// errors end the session.
func (s *session) readLoop(ctx context.Context, inbox chan<- ClientMessage) error {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return errClosed
			}
			return fmt.Errorf("web: read: %w", err)
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("malformed message", "err", err)
			continue
		}

		select {
		case inbox <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *session) gameLoop(ctx context.Context, inbox <-chan ClientMessage) error {
	ticker := time.NewTicker(s.step)
	defer ticker.Stop()

	if err := s.push(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-inbox:
			if !ok {
				return errClosed
			}
			if !apply(s.ctrl, msg) {
				s.logger.Debug("unknown message", "type", msg.Type)
				continue
			}
		case <-ticker.C:
			s.ctrl.Tick(s.step)
		}
		if err := s.push(); err != nil {
			return err
		}
	}
}

// push sends the snapshot if it differs from the last one sent.
func (s *session) push() error {
	data, err := json.Marshal(SnapshotMessage{Type: "snapshot", Snapshot: s.ctrl.Snapshot()})
	if err != nil {
		return fmt.Errorf("web: encode snapshot: %w", err)
	}
	if bytes.Equal(data, s.last) {
		return nil
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("web: write: %w", err)
	}
	s.last = data
	return nil
}
