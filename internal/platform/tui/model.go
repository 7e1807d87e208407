package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// GameModel runs one blockfall engine inside Bubble Tea.
// It owns the drop timer: every state change that affects the cadence
// bumps gen, and every new run gets a fresh id, so ticks scheduled by an
// older timer are ignored.
type GameModel struct {
	engine *blockfall.Engine
	screen *core.Screen
	store  *storage.Store
	keys   KeyMap
	config core.RuntimeConfig
	logger *log.Logger

	runID      string
	gen        int
	interval   time.Duration // Delay of the last scheduled tick
	scoreSaved bool
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone play has no menu to return to
}

// NewGameModel creates an idle game. A zero seed picks a time-based one.
func NewGameModel(store *storage.Store, rules blockfall.Rules, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		engine: blockfall.New(rules, cfg.Seed),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   DefaultKeyMap(),
		config: cfg,
		logger: logger,
	}
}

// Init waits for the player to press start.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		m.gen++
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionStart:
		res := m.engine.Start()
		if !res.Changed {
			return m, nil
		}
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.logger.Debug("game started", "run", m.runID, "player", m.config.Player, "seed", m.config.Seed)
		cmd := m.restartTimer()
		return m, cmd

	case core.ActionPause:
		res := m.engine.TogglePause()
		if !res.Changed {
			return m, nil
		}
		if res.State.Paused {
			m.gen++
			return m, nil
		}
		cmd := m.restartTimer()
		return m, cmd

	case core.ActionReset:
		m.engine.Reset()
		m.gen++
		return m, nil

	case core.ActionLeft:
		m.apply(m.engine.Move(blockfall.DirLeft))
	case core.ActionRight:
		m.apply(m.engine.Move(blockfall.DirRight))
	case core.ActionDown:
		m.apply(m.engine.Move(blockfall.DirDown))
	case core.ActionRotate:
		m.apply(m.engine.Rotate())
	}

	return m, nil
}

// handleTick advances the piece and re-arms the timer at the current speed.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Run != m.runID || msg.Gen != m.gen {
		return m, nil
	}

	m.apply(m.engine.Tick())

	if m.engine.Status() != blockfall.StatusPlaying || m.engine.Paused() {
		return m, nil
	}
	cmd := m.armTimer()
	return m, cmd
}

// restartTimer invalidates any pending tick and schedules a fresh one.
func (m *GameModel) restartTimer() tea.Cmd {
	m.gen++
	return m.armTimer()
}

// armTimer schedules the next tick at the current level's speed.
func (m *GameModel) armTimer() tea.Cmd {
	m.interval = m.engine.DropInterval()
	return tickCmd(m.runID, m.gen, m.interval)
}

// apply reacts to the outcome of an engine command.
func (m *GameModel) apply(res blockfall.Result) {
	if res.Lines > 0 {
		m.logger.Debug("lines cleared", "run", m.runID, "lines", res.Lines, "points", res.Points, "level", res.State.Level)
	}
	if res.GameOver {
		m.logger.Info("game over", "run", m.runID, "player", m.config.Player,
			"score", res.State.Score, "lines", res.State.Lines, "level", res.State.Level)
		m.saveScore(res.State)
	}
}

// saveScore records the finished run once. Zero scores are not kept.
func (m *GameModel) saveScore(s blockfall.Snapshot) {
	if m.scoreSaved || s.Score <= 0 {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		Player: m.config.Player,
		Score:  s.Score,
		Lines:  s.Lines,
		Level:  s.Level,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Error("could not save score", "run", m.runID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	blockfall.Render(m.engine.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

// Snapshot returns the engine state.
func (m GameModel) Snapshot() blockfall.Snapshot {
	return m.engine.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(store *storage.Store, rules blockfall.Rules, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(store, rules, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
