package desktop

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/registry"
)

// binding maps one key to a raw key name and an action.
type binding struct {
	key    ebiten.Key
	name   string
	action core.Action
}

var bindings = []binding{
	{ebiten.KeySpace, "space", core.ActionJump},
	{ebiten.KeyUp, "up", core.ActionJump},
	{ebiten.KeyW, "w", core.ActionJump},
	{ebiten.KeyEnter, "enter", core.ActionJump},
	{ebiten.KeyDown, "down", core.ActionNone},
	{ebiten.KeyLeft, "left", core.ActionNone},
	{ebiten.KeyRight, "right", core.ActionNone},
	{ebiten.KeyA, "a", core.ActionNone},
	{ebiten.KeyB, "b", core.ActionNone},
	{ebiten.KeyP, "p", core.ActionPause},
	{ebiten.KeyR, "r", core.ActionRestart},
	{ebiten.KeyEscape, "esc", core.ActionBack},
	{ebiten.KeyQ, "q", core.ActionQuit},
}

// collectInput builds a frame from keys that went down this tick.
func collectInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		if !justPressed(b.key) {
			continue
		}
		in.Press(b.name)
		if b.action != core.ActionNone {
			in.Set(b.action)
		}
	}
	return in
}

// Options configures the desktop frontend.
type Options struct {
	Width, Height int
	Title         string
	Seed          int64

	// Load fetches sprites in the background.
	Load func(ctx context.Context) error

	TaskTimeout time.Duration
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game    registry.Game
	canvas  *Canvas
	ctx     context.Context
	cancel  context.CancelFunc
	results chan core.TaskResult
	timeout time.Duration
	w, h    int
	state   core.GameState
}

var _ ebiten.Game = (*Game)(nil)

// NewGame resets game at the window size and starts sprite loading.
func NewGame(game registry.Game, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		game:    game,
		canvas:  NewCanvas(),
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan core.TaskResult, 8),
		timeout: opts.TaskTimeout,
		w:       opts.Width,
		h:       opts.Height,
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		CellW:    1,
		CellH:    1,
		TickRate: ebiten.DefaultTPS,
		Seed:     opts.Seed,
	})

	if opts.Load != nil {
		go func() {
			//nolint:errcheck // the provider logs failures and marks sprites failed
			opts.Load(ctx)
		}()
	}
	return g
}

// Update runs one simulation step per ebiten tick.
func (g *Game) Update() error {
	in := collectInput(inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionBack) && (!g.state.Started || g.state.Paused) {
		return ebiten.Termination
	}

	g.drainResults()

	result := g.game.Step(in)
	g.state = result.State
	for _, task := range result.Tasks {
		g.spawn(task)
	}
	return nil
}

func (g *Game) drainResults() {
	for {
		select {
		case res := <-g.results:
			g.game.Apply(res)
		default:
			return
		}
	}
}

// spawn runs a task in the background. Its result is applied on a later
// Update.
func (g *Game) spawn(task core.Task) {
	go func() {
		ctx, cancel := context.WithTimeout(g.ctx, g.timeout)
		defer cancel()
		res := task.Execute(ctx)
		select {
		case g.results <- res:
		case <-g.ctx.Done():
		}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.game.Draw(g.canvas)
}

// Layout follows the window size and resizes the world with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.game.Resize(g.w, g.h)
	}
	return g.w, g.h
}

// Close cancels background work.
func (g *Game) Close() {
	g.cancel()
}

// Run opens a window and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 400
	}
	if opts.Title == "" {
		opts.Title = game.Title()
	}

	g := NewGame(game, opts)
	defer g.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
