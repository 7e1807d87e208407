package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42, Player: "tester"}
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	return NewGameModel(store, blockfall.DefaultRules(), testConfig(), testLogger())
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// send delivers a message and returns the updated game model.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok, "Update returned %T", next)
	return gm, cmd
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestGameModelStartsIdle(t *testing.T) {
	m := newTestGame(t, nil)

	assert.Nil(t, m.Init())
	assert.Equal(t, blockfall.StatusIdle, m.Snapshot().Status)
	assert.Contains(t, m.View(), "Enter: start")
}

func TestGameModelStart(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := send(t, m, enter())
	assert.NotNil(t, cmd, "start should arm the drop timer")
	assert.True(t, m.Snapshot().IsPlaying)
	assert.NotEmpty(t, m.runID)
	assert.Equal(t, 1, m.gen)

	// A second start while playing is ignored.
	m, cmd = send(t, m, enter())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.gen)
}

func TestGameModelTick(t *testing.T) {
	m := newTestGame(t, nil)
	m, _ = send(t, m, enter())

	m, cmd := send(t, m, TickMsg{Run: m.runID, Gen: m.gen})
	assert.NotNil(t, cmd, "tick should re-arm the timer")
	assert.Equal(t, 1, m.Snapshot().Position.Y)
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newTestGame(t, nil)
	m, _ = send(t, m, enter())

	tests := []struct {
		name string
		msg  TickMsg
	}{
		{"old generation", TickMsg{Run: m.runID, Gen: m.gen - 1}},
		{"other run", TickMsg{Run: "another-run", Gen: m.gen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := send(t, m, tt.msg)
			assert.Nil(t, cmd)
			assert.Equal(t, 0, next.Snapshot().Position.Y)
		})
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestGame(t, nil)
	m, _ = send(t, m, enter())
	armed := m.gen

	m, cmd := send(t, m, runeKey('p'))
	assert.Nil(t, cmd, "pausing releases the timer")
	assert.True(t, m.Snapshot().Paused)

	m, cmd = send(t, m, TickMsg{Run: m.runID, Gen: armed})
	assert.Nil(t, cmd, "tick from before the pause must not re-arm")
	assert.Equal(t, 0, m.Snapshot().Position.Y)
	assert.Contains(t, m.View(), "PAUSED")

	m, cmd = send(t, m, runeKey('p'))
	assert.NotNil(t, cmd, "resuming arms a new timer")
	assert.False(t, m.Snapshot().Paused)
}

func TestGameModelMoves(t *testing.T) {
	m := newTestGame(t, nil)
	m, _ = send(t, m, enter())
	start := m.Snapshot().Position

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, start.X-1, m.Snapshot().Position.X)

	m, _ = send(t, m, runeKey('d'))
	assert.Equal(t, start.X, m.Snapshot().Position.X)

	m, _ = send(t, m, runeKey('s'))
	assert.Equal(t, start.Y+1, m.Snapshot().Position.Y)
}

func TestGameModelReset(t *testing.T) {
	m := newTestGame(t, nil)
	m, _ = send(t, m, enter())
	armed := m.gen

	m, cmd := send(t, m, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Equal(t, blockfall.StatusIdle, m.Snapshot().Status)

	_, cmd = send(t, m, TickMsg{Run: m.runID, Gen: armed})
	assert.Nil(t, cmd, "ticks after reset are ignored")
}

func TestGameModelDropUntilGameOver(t *testing.T) {
	store := openStore(t)
	m := newTestGame(t, store)
	m, _ = send(t, m, enter())

	for i := 0; i < 10000 && m.Snapshot().IsPlaying; i++ {
		m, _ = send(t, m, runeKey('s'))
	}
	require.True(t, m.Snapshot().IsGameOver, "stacking pieces in one column should end the game")

	_, cmd := send(t, m, TickMsg{Run: m.runID, Gen: m.gen})
	assert.Nil(t, cmd, "timer stops after game over")
	assert.Contains(t, m.View(), "GAME OVER")

	// Nothing cleared, so nothing to record.
	scores, err := store.AllScores()
	require.NoError(t, err)
	assert.Empty(t, scores)
}

// pressN sends the same key n times.
func pressN(t *testing.T, m GameModel, key tea.KeyMsg, n int) GameModel {
	t.Helper()
	for range n {
		m, _ = send(t, m, key)
	}
	return m
}

// softDropToLock presses down until the current piece locks.
func softDropToLock(t *testing.T, m GameModel) GameModel {
	t.Helper()
	locks := m.Snapshot().Locks
	for i := 0; i < 30 && m.Snapshot().Locks == locks; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, locks+1, m.Snapshot().Locks)
	return m
}

func TestGameModelLevelUpShortensTimer(t *testing.T) {
	rules := blockfall.DefaultRules()
	rules.LinesPerLevel = 1
	m := newTestGame(t, nil)
	m.engine = blockfall.NewWithSequence(rules, blockfall.KindI, blockfall.KindI, blockfall.KindO)

	m, cmd := send(t, m, enter())
	require.NotNil(t, cmd)
	assert.Equal(t, 500*time.Millisecond, m.interval)

	// Two flat I pieces cover columns 0-7 of the floor.
	m = pressN(t, m, tea.KeyMsg{Type: tea.KeyLeft}, 4)
	m = softDropToLock(t, m)
	m = softDropToLock(t, m)

	// The O fills columns 8-9; let the timer land it.
	m = pressN(t, m, tea.KeyMsg{Type: tea.KeyRight}, 4)
	locks := m.Snapshot().Locks
	for i := 0; i < 30 && m.Snapshot().Locks == locks; i++ {
		m, cmd = send(t, m, TickMsg{Run: m.runID, Gen: m.gen})
	}

	s := m.Snapshot()
	require.Equal(t, 1, s.Lines, "the floor row should clear")
	assert.Equal(t, 2, s.Level)
	require.NotNil(t, cmd, "timer keeps running after the clear")
	assert.Equal(t, 450*time.Millisecond, m.interval, "re-armed at the level 2 speed")
}

func TestGameModelSaveScoreOnce(t *testing.T) {
	store := openStore(t)
	m := newTestGame(t, store)
	m, _ = send(t, m, enter())

	final := blockfall.Snapshot{Score: 300, Lines: 3, Level: 1}
	m.saveScore(final)
	m.saveScore(final)

	scores, err := store.AllScores()
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "tester", scores[0].Player)
	assert.Equal(t, m.runID, scores[0].RunID)
	assert.Equal(t, 3, scores[0].Lines)
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := newTestGame(t, store)

	m.saveScore(blockfall.Snapshot{Score: 0})

	scores, err := store.AllScores()
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestGame(t, nil)

	back, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.Nil(t, cmd)

	m.quitOnBack = true
	back, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	quit, cmd := send(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, quit.View())
}

func TestGameModelResize(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.View(), "Window too small")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	assert.False(t, strings.Contains(view, "Window too small"))
	assert.Len(t, strings.Split(view, "\n"), 30)
}
