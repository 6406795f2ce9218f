package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(lg *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.lg = lg
	}
}

// WithLogger sets the logger for platform events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the Bubble Tea model that hosts one game session.
// Keys queue actions; each TickMsg steps the game once and renders the
// changes onto a persistent screen buffer, which View presents.
type Model struct {
	game       core.Game
	config     core.Config
	screen     *core.Screen
	keyMapper  *KeyMapper
	help       help.Model
	view       *Renderer
	lg         *lipgloss.Renderer
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game core.Game, cfg core.Config, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		screen:     core.NewScreen(cfg.Grid.Width, cfg.Grid.Height, cfg.Palette.Background),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.view = NewRenderer(m.lg, cfg.Palette)

	m.game.Reset(cfg)
	m.game.Render(m.screen)
	m.gameState = m.game.State()
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

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues directional input; quit keys end the program.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Debug("quit requested", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The board is frozen while the terminal cannot show it.
	if m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.game.Render(m.screen)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// tooSmall reports whether the last known terminal size cannot fit the board.
// Before the first WindowSizeMsg the size is unknown and assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	needW, needH := BoardSize(m.config.Grid)
	return m.width < needW || m.height < needH
}

// View presents the screen buffer with the HUD and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		needW, needH := BoardSize(m.config.Grid)
		return m.view.RenderTooSmall(m.width, m.height, needW, needH)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.view.RenderHUD(m.game.Title(), m.gameState),
		m.view.RenderBoard(m.screen),
		m.help.View(m.keyMapper.Keys()),
	)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.Config, logger *log.Logger) error {
	model := NewModel(game, cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
