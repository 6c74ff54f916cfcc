package web

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vovakirdan/snakesweeper/internal/games/snakesweeper"
)

// Client message types.
const (
	MsgDirection = "direction"
	MsgReveal    = "reveal"
	MsgFlag      = "flag"
	MsgRestart   = "restart"
	MsgPause     = "pause"
)

// ClientMessage is an input sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"` // Direction key name, e.g. "ArrowUp"
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// SnapshotMessage is pushed to the browser whenever the game changes.
type SnapshotMessage struct {
	Type string `json:"type"`
	snakesweeper.Snapshot
}

// SessionParams are read from the /ws query string.
type SessionParams struct {
	Seed int64 `schema:"seed"` // 0 picks a time-based seed
}

func decodeSessionParams(src url.Values) (SessionParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var p SessionParams
	err := dec.Decode(&p, src)
	return p, err
}

// apply routes a client message to the controller. Unknown types are ignored.
func apply(c *snakesweeper.Controller, m ClientMessage) bool {
	switch m.Type {
	case MsgDirection:
		c.OnDirectionKey(m.Key)
	case MsgReveal:
		c.OnCellPrimaryClick(m.X, m.Y)
	case MsgFlag:
		c.OnCellSecondaryClick(m.X, m.Y)
	case MsgRestart:
		c.OnRestart()
	case MsgPause:
		c.TogglePause()
	default:
		return false
	}
	return true
}
