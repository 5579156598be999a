package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kinetic-arcade/internal/config"
	"github.com/vovakirdan/kinetic-arcade/internal/core"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
)

var defaultViewport = core.Viewport{CellW: 8, CellH: 16}

// Options configures a game session.
type Options struct {
	ConfigPath string                  // Custom YAML config, empty for the search path
	Preset     config.DifficultyPreset // Difficulty preset, empty for the config's own
	Scores     core.HighScoreStore     // Score persistence, nil to play without it
	Logger     *log.Logger             // Session log, nil to discard
	HoldWindow time.Duration           // Key hold window, 0 for DefaultHoldWindow
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     core.HighScoreStore
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	now        func() time.Time
	fixedSeed  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current session
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is configured and reset, so it is ready to Step on return.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", game.ID())

	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	if c, ok := game.(registry.Configurable); ok {
		source, err := c.Configure(opts.ConfigPath, opts.Preset)
		if err != nil {
			logger.Warn("using built-in config", "path", opts.ConfigPath, "error", err)
		} else {
			logger.Debug("config loaded", "source", source)
		}
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     opts.Scores,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		fixedSeed:  fixedSeed,
	}
	m.config.HighScore = m.loadHighScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("session started", "seed", m.config.Seed, "high_score", m.config.HighScore)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.finish("quit")
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.finish("back")
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	m.holds.Press(action, m.now())
	return m, nil
}

// handleMouse queues left-button presses as world-space clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y := m.viewport().ToWorld(msg.X, msg.Y)
	m.inputFrame.AddClick(x, y)
	return m, nil
}

func (m Model) viewport() core.Viewport {
	if p, ok := m.game.(registry.Pointable); ok {
		if vp := p.Viewport(); vp.CellW > 0 && vp.CellH > 0 {
			return vp
		}
	}
	return defaultViewport
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The world is sized from the screen, so a running session restarts.
	if !m.gameState.GameOver {
		m.finish("resize")
		m.restart()
	}

	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame, now)

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "points", ev.Points, "x", ev.X, "y", ev.Y)
	}

	if m.gameState.GameOver {
		m.finish("game over")
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session with a fresh seed unless one was fixed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.config.HighScore = max(m.loadHighScore(), m.gameState.HighScore)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.holds.Release()
	m.scoreSaved = false
	m.logger.Info("session started", "seed", m.config.Seed, "high_score", m.config.HighScore)
}

// finish saves the session score once. Leaving a running session counts
// as its end, so endless modes still record their best.
func (m *Model) finish(reason string) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	state := m.game.State()
	m.logger.Info("session ended", "reason", reason, "score", state.Score, "high_score", state.HighScore)
	if m.scores == nil || state.Score <= 0 {
		return
	}
	if err := m.scores.SaveHighScore(state.Score); err != nil {
		m.logger.Warn("could not save score", "score", state.Score, "error", err)
	}
}

func (m *Model) loadHighScore() int {
	if m.scores == nil {
		return 0
	}
	high, err := m.scores.LoadHighScore()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return high
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
