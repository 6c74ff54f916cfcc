package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snakesweeper/internal/config"
	"github.com/vovakirdan/snakesweeper/internal/core"
	"github.com/vovakirdan/snakesweeper/internal/games/snakesweeper"
)

func newTestModel(t *testing.T) (Model, *snakesweeper.Game) {
	t.Helper()
	game := snakesweeper.NewGame(config.DefaultGameConfig(), nil)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 10, Seed: 1}, nil)
	require.NotNil(t, m.Init())
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModelKeysReachGame(t *testing.T) {
	m, game := newTestModel(t)
	require.Equal(t, core.Point{X: 5, Y: 5}, game.Cursor())

	m = update(t, m, runeKey('h'))
	m = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, core.Point{X: 4, Y: 5}, game.Cursor())
	assert.False(t, m.inputFrame.Has(core.ActionCursorLeft), "input cleared after tick")
}

func TestModelMouseClickReveals(t *testing.T) {
	m, game := newTestModel(t)
	// Screen is 80x24 after the help row; minefield cell (0,0) is at (44, 7)
	m = update(t, m, tea.MouseMsg{X: 44, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg(time.Now()))

	assert.NotEmpty(t, game.Controller().Snapshot().Minesweeper.Revealed)
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(time.Now()))

	assert.True(t, m.State().Paused)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t)
	m = update(t, m, runeKey('h'))
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30, m.screen.Height())
	assert.Equal(t, core.Point{X: 4, Y: 5}, game.Cursor(), "resize does not restart")
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "MINEFIELD")
	assert.Contains(t, out, "quit")
	assert.NotContains(t, out, "…", "short help fits 80 columns")
}

func TestModelHelpToggleShrinksScreen(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, 24, m.screen.Height())

	m = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 21, m.screen.Height(), "full help uses four rows")
	assert.Contains(t, m.View(), "snake down")

	m = update(t, m, runeKey('?'))
	assert.Equal(t, 24, m.screen.Height())
}

func TestModelScreenshotSaved(t *testing.T) {
	m, _ := newTestModel(t)
	m.shotDir = t.TempDir()

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.shotDir, "snakesweeper_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "MINEFIELD")
}

func TestModelScreenshotFailureIsLogged(t *testing.T) {
	m, _ := newTestModel(t)
	var buf bytes.Buffer
	m.logger = log.New(&buf)

	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	m.shotDir = filepath.Join(blocker, "shots")

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Contains(t, buf.String(), "screenshot failed")
}
