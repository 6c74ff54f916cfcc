package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakesweeper/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"k", runeKey('k'), core.ActionCursorUp},
		{"j", runeKey('j'), core.ActionCursorDown},
		{"h", runeKey('h'), core.ActionCursorLeft},
		{"l", runeKey('l'), core.ActionCursorRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionReveal},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal},
		{"f", runeKey('f'), core.ActionFlag},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
		{"help is not a game action", runeKey('?'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Click
		ok   bool
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			core.Click{X: 3, Y: 4, Button: core.ButtonPrimary}, true,
		},
		{
			"right press",
			tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			core.Click{X: 5, Y: 6, Button: core.ButtonSecondary}, true,
		},
		{
			"release",
			tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			core.Click{}, false,
		},
		{
			"wheel",
			tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			core.Click{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapMouse(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("MapMouse() = %v, %v, expected %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
