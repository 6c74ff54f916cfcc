package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - steer snake up
	ActionDown               // S, Down arrow - steer snake down
	ActionLeft               // A, Left arrow - steer snake left
	ActionRight              // D, Right arrow - steer snake right
	ActionCursorUp           // K - move minefield cursor
	ActionCursorDown         // J
	ActionCursorLeft         // H
	ActionCursorRight        // L
	ActionReveal             // Space, Enter - reveal cell under cursor
	ActionFlag               // F - flag cell under cursor
	ActionRestart            // R key - restart game after game over
	ActionPause              // P, Escape - pause/unpause game
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MouseButton identifies which pointer button produced a click.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
)

// Click is a pointer press in screen coordinates.
type Click struct {
	X, Y   int
	Button MouseButton
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions and clicks that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks are kept in arrival order; two clicks on the same cell are distinct.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a pointer press.
func (f *InputFrame) AddClick(c Click) {
	f.Clicks = append(f.Clicks, c)
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}
