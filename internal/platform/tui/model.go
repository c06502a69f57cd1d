// Package tui provides the Bubble Tea frontend for the runner.
// It drives the frame loop locally and over SSH.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/registry"
)

// DefaultTaskTimeout bounds a single background task.
const DefaultTaskTimeout = 10 * time.Second

// TickMsg is one frame of the loop.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TaskDoneMsg carries a finished background task back into the loop.
type TaskDoneMsg core.TaskResult

// AssetsLoadedMsg reports the end of sprite loading.
type AssetsLoadedMsg struct {
	Err error
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Config core.RuntimeConfig

	// Load fetches sprites in the background. Nil when they are preloaded.
	Load func(ctx context.Context) error

	// Context scopes background work; cancelled when the session ends.
	Context context.Context

	TaskTimeout time.Duration

	// Standalone quits the program on Back instead of returning to a menu.
	Standalone bool

	// Renderer styles the output; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// GameModel drives a registry.Game from the Bubble Tea loop: one Step per
// tick, tasks returned by Step run as commands, results are applied on
// the loop goroutine.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	painter    *Painter
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	load       func(ctx context.Context) error
	ctx        context.Context
	timeout    time.Duration
	standalone bool
	quitting   bool
	backToMenu bool
	loadErr    error
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := opts.TaskTimeout
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    NewPainter(opts.Renderer),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		load:       opts.Load,
		ctx:        ctx,
		timeout:    timeout,
		standalone: opts.Standalone,
	}
}

// Init resets the game, starts the tick loop and kicks off sprite loading.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.load != nil {
		load, ctx := m.load, m.ctx
		cmds = append(cmds, func() tea.Msg {
			return AssetsLoadedMsg{Err: load(ctx)}
		})
	}
	return tea.Batch(cmds...)
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

	case TaskDoneMsg:
		m.game.Apply(core.TaskResult(msg))
		return m, nil

	case AssetsLoadedMsg:
		m.loadErr = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game unless a run is in progress.
	if m.inputFrame.Has(core.ActionBack) && (!m.gameState.Started || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize keeps the run going at the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and schedules its tasks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := make([]tea.Cmd, 0, 1+len(result.Tasks))
	cmds = append(cmds, tickCmd(m.config.TickRate))
	for _, task := range result.Tasks {
		cmds = append(cmds, runTask(m.ctx, task, m.timeout))
	}
	return m, tea.Batch(cmds...)
}

// runTask executes task off the loop and reports back with a TaskDoneMsg.
func runTask(ctx context.Context, task core.Task, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return TaskDoneMsg(task.Execute(ctx))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserDataPath("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LoadErr returns the sprite loading error, if loading finished with one.
func (m GameModel) LoadErr() error {
	return m.loadErr
}

// Run starts the Bubble Tea program for a single game.
// Returns true if the player backed out to the menu rather than quitting.
func Run(game registry.Game, opts GameOptions) (backToMenu bool, err error) {
	opts.Standalone = true
	model := NewGameModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
