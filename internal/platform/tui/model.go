package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vimkim/dodge/internal/core"
	"github.com/vimkim/dodge/internal/storage"
)

// Model is the Bubble Tea model running the game loop. It merges two
// independent triggers into the single-owner game state: key messages, which
// mutate state the moment they arrive, and tick messages, which advance the
// simulation on the fixed cadence. Bubble Tea re-renders after every message,
// so moves show up without waiting for the next tick.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick clock.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input. Actions apply immediately, independent
// of the tick cadence; several moves can land between two ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.gameState.GameOver {
			// Fresh seed for the new run
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.scoreSaved = false
		}

	case core.ActionLeft:
		m.game.Apply(core.ActionLeft)

	case core.ActionRight:
		m.game.Apply(core.ActionRight)

	case core.ActionPause:
		m.game.Apply(core.ActionPause)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The playfield is sized from the screen, so a resize starts a fresh run
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	// Keep ticking; Step is a no-op while paused or after game over, but the
	// clock must survive for a restart to resume the simulation.
	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// FinalState returns the last observed game state.
func (m Model) FinalState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and returns the final
// game state once the session ends. Bubble Tea enters the alternate screen in
// raw mode on start and restores the terminal on every exit path, including
// errors and panics.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig) (core.GameState, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}

	if m, ok := final.(Model); ok {
		return m.FinalState(), nil
	}
	return core.GameState{}, nil
}
