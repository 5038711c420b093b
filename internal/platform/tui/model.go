package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gifteroids/internal/core"
	"github.com/vovakirdan/gifteroids/internal/registry"
	"github.com/vovakirdan/gifteroids/internal/storage"
)

// helpRows is the space under the playfield reserved for the key help.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tune how a game is hosted.
type Options struct {
	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes the screen.
	// Defaults to ~/.gifteroids/screenshots.
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// resizer is implemented by games that can follow the terminal size
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fixedSeed  bool
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int
	embedded   bool // inside a session; back returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. cfg holds the full terminal size;
// the bottom row is kept for key help.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = playfield(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		fixedSeed:  fixedSeed,
		opts:       opts,
		logger:     opts.logger().With("game", game.ID()),
		keys:       NewKeyMapper(),
		help:       h,
		held:       newHeldKeys(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// playfield shrinks a terminal-sized config to the area the game draws in.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(1, cfg.ScreenH-helpRows)
	return cfg
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed, "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Game.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}

	case holdable(action):
		m.held.press(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config = playfield(m.config)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	switch g := m.game.(type) {
	case resizer:
		g.Resize(m.config.ScreenW, m.config.ScreenH)
	default:
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.ticks = 0
		m.held.release()
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.held.fill(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	for _, note := range result.Notes {
		m.logger.Debug(note, "tick", m.ticks)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run once. A storage failure is logged and
// play continues.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	runID, err := m.store.SaveScore(storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Wave:   m.gameState.Wave,
		Won:    m.gameState.Won,
	})
	if err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.logger.Info("score saved", "run", runID, "score", m.gameState.Score, "wave", m.gameState.Wave, "won", m.gameState.Won)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("no home directory for screenshots", "err", err)
			return
		}
		dir = filepath.Join(home, ".gifteroids", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the key help below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Game))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the current terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
