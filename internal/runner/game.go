// Package runner implements Palopsee, a side-scrolling endless runner.
//
// The player holds a fixed lane and jumps over asteroids and alien ships
// that scroll in from the right. Collisions with obstacles are resolved
// per pixel using sprite opacity masks; power-ups grant a few seconds of
// invincibility. The simulation advances exactly once per Step and runs
// in world pixels, independent of the frontend drawing it.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/registry"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

// ID is the registry identifier of the runner.
const ID = "palopsee"

// HUD and message texts.
const (
	msgReady        = "Ready to Fly!"
	msgCheatOn      = "Cheat Activated: Invincibility!"
	msgCheatOff     = "Cheat Deactivated!"
	msgTopScore     = "New top score added to your leaderboard!"
	msgSubmitted    = "High score saved to leaderboard!"
	msgSubmitFailed = "Failed to save high score."

	// FallbackFlavor replaces generated text when the remote service fails.
	FallbackFlavor = "My circuits are buzzing..."
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game is the simulation context: the single owner of all run state.
// It is driven by one frame loop and is not safe for concurrent use.
type Game struct {
	svc     core.Services
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	speed   *config.SpeedModel
	spawner *Spawner

	viewW, viewH float64
	cellW, cellH int

	player    *Player
	obstacles []*Obstacle
	powerUps  []*PowerUp

	phase       Phase
	score       int
	highScore   int
	baseSpeed   float64
	paused      bool
	tick        int
	epoch       uint64
	cheat       bool
	assetsReady bool
	scroll      float64 // background offset, drifts at half speed

	cheatCode     *CheatDetector
	invincibility deadline
	message       messageBox
	flavor        string
	tasks         []core.Task
	stars         []star
}

// New creates a runner wired to the given collaborators.
// Call Reset before the first Step.
func New(svc core.Services) *Game {
	return &Game{
		svc:       svc.WithDefaults(),
		cheatCode: NewCheatDetector(CheatCode),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Palopsee"
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.svc.Logger.Warn("using default runner config", "err", err)
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}

	g.Configure(cfg, runtime)
}

// Configure starts a fresh session with an explicit configuration.
func (g *Game) Configure(cfg config.RunnerConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.runtime = runtime
	g.speed = config.NewSpeedModel(cfg.Speed)
	g.spawner = NewSpawner(cfg.Obstacles, cfg.PowerUps, rand.New(rand.NewSource(runtime.Seed)))
	g.player = NewPlayer(cfg.Player)
	g.stars = newStarField(runtime.Seed)

	g.cellW, g.cellH = runtime.CellW, runtime.CellH
	if g.cellW <= 0 {
		g.cellW = cfg.Viewport.CellWidth
	}
	if g.cellH <= 0 {
		g.cellH = cfg.Viewport.CellHeight
	}

	g.cheat = false
	g.assetsReady = false
	g.highScore = g.svc.Scores.HighScore()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.reset()
}

// Resize adapts the viewport to a new screen size in cells.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.viewW = float64(screenW * g.cellW)
	g.viewH = float64(screenH * g.cellH)
	if g.player != nil {
		g.player.Layout(g.viewH)
	}
}

// reset returns to the ready phase and opens a new epoch. Timers and
// task results from the previous epoch can no longer affect the game.
func (g *Game) reset() {
	g.epoch++
	g.phase = PhaseReady
	g.score = 0
	g.baseSpeed = g.speed.Initial()
	g.paused = false
	g.tick = 0
	g.obstacles = nil
	g.powerUps = nil
	g.tasks = nil
	g.flavor = ""
	g.spawner.Reset()
	g.invincibility.Disarm()
	g.message.Hide()
	g.player.ResetMotion()
	g.player.Invincible = g.cheat
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.svc.Clock.Now()

	g.syncAssets(now)
	g.expireTimers(now)

	for _, key := range in.Keys {
		if g.cheatCode.Feed(key) {
			g.toggleCheat(now)
		}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
	}

	switch {
	case in.Has(core.ActionRestart) && g.phase == PhaseOver:
		g.reset()
	case in.Has(core.ActionJump):
		g.handleAction()
	}

	if g.phase == PhaseRunning && !g.paused {
		g.advance(now)
	}

	return core.StepResult{State: g.State(), Tasks: g.takeTasks()}
}

// syncAssets picks up the player sprite the first frame assets are ready.
func (g *Game) syncAssets(now time.Time) {
	if g.assetsReady || g.svc.Assets == nil || !g.svc.Assets.Ready() {
		return
	}
	g.assetsReady = true
	g.player.SetSprite(g.svc.Assets.Get(sprite.NamePlayer))
	g.player.Layout(g.viewH)
	if g.phase == PhaseReady {
		g.message.Show(now, msgReady, ms(g.cfg.Messages.ReadyMS))
	}
}

func (g *Game) expireTimers(now time.Time) {
	g.message.Expire(now)
	if g.invincibility.Fire(now) && !g.cheat {
		g.player.Invincible = false
	}
}

func (g *Game) toggleCheat(now time.Time) {
	g.cheat = !g.cheat
	g.player.Invincible = g.cheat
	text := msgCheatOff
	if g.cheat {
		text = msgCheatOn
	}
	g.message.Show(now, text, ms(g.cfg.Messages.CheatMS))
}

// handleAction interprets the single jump command for the current phase.
func (g *Game) handleAction() {
	switch g.phase {
	case PhaseOver:
		g.reset()
	case PhaseReady:
		if g.assetsReady {
			g.start()
		}
	case PhaseRunning:
		if !g.paused {
			g.jump()
		}
	}
}

func (g *Game) start() {
	g.phase = PhaseRunning
	g.score = 0
	g.baseSpeed = g.speed.Initial()
	g.message.Hide()
	g.jump()
}

func (g *Game) jump() {
	if g.phase == PhaseRunning && g.player.Jump() {
		g.svc.Audio.PlayJump()
	}
}

// advance runs one frame of simulation.
func (g *Game) advance(now time.Time) {
	g.tick++
	if g.player.Invincible {
		g.player.Blink++
	}
	g.scroll -= g.baseSpeed * 0.5

	current := g.CurrentSpeed()
	g.player.Update(current)

	if g.updateObstacles(now, current) {
		return
	}
	g.updatePowerUps(now, current)
	g.baseSpeed = g.speed.Creep(g.baseSpeed)
}

// updateObstacles spawns, moves, collides and retires obstacles.
// It reports whether the run ended this frame.
func (g *Game) updateObstacles(now time.Time, current float64) bool {
	last, hasLast := 0.0, len(g.obstacles) > 0
	if hasLast {
		last = g.obstacles[len(g.obstacles)-1].Bounds().X
	}
	if g.spawner.GapClear(hasLast, last, g.viewW, current) && g.spawner.RollObstacle(g.baseSpeed) {
		g.spawnObstacle()
	}

	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := g.obstacles[i]
		o.Update(current)

		if !g.player.Invincible && Collides(g.player, o) {
			g.endRun(now)
			return true
		}

		if o.OffScreen() {
			g.obstacles = slices.Delete(g.obstacles, i, i+1)
			g.addPoint()
		}
	}
	return false
}

// spawnObstacle places a new obstacle at the right edge. A sprite that is
// still loading skips the spawn for this frame.
func (g *Game) spawnObstacle() {
	variant := g.spawner.ChooseKind()
	s := g.svc.Assets.Get(variant.SpriteName())
	if !s.Usable() {
		return
	}

	var w, h, y float64
	switch variant {
	case Asteroid:
		w, h = s.ScaledSize(g.cfg.Obstacles.AsteroidHeight)
		y = g.viewH/2 + g.spawner.Float64()*g.player.Height*0.5
	case AlienShip:
		w, h = s.ScaledSize(g.cfg.Obstacles.AlienHeight)
		y = g.player.RestingY - g.cfg.Obstacles.AlienClearance - h
		if y < g.cfg.Obstacles.AlienMinY {
			y = g.cfg.Obstacles.AlienMinY
		}
	}

	g.obstacles = append(g.obstacles, NewObstacle(variant, core.NewRectF(g.viewW, y, w, h), s))
}

func (g *Game) addPoint() {
	g.score++
	if every := g.cfg.Scoring.SoundEvery; every > 0 && g.score%every == 0 {
		g.svc.Audio.PlayScore()
	}
}

// updatePowerUps runs the power-up pattern, moves power-ups and handles pickup.
func (g *Game) updatePowerUps(now time.Time, current float64) {
	if g.spawner.PowerUpDue(g.score, len(g.powerUps) > 0) && g.spawnPowerUp() {
		g.spawner.Advance()
	}

	for i := len(g.powerUps) - 1; i >= 0; i-- {
		u := g.powerUps[i]
		u.Update(current)

		if Touches(g.player, u) {
			g.collect(now)
			g.powerUps = slices.Delete(g.powerUps, i, i+1)
			continue
		}
		if u.OffScreen() {
			g.powerUps = slices.Delete(g.powerUps, i, i+1)
		}
	}
}

// spawnPowerUp places a power-up near the player's resting line and
// reports whether it did.
func (g *Game) spawnPowerUp() bool {
	s := g.svc.Assets.Get(sprite.NamePowerUp)
	if !s.Usable() {
		return false
	}
	w, h := s.ScaledSize(g.cfg.PowerUps.ScaleHeight)
	y := g.player.RestingY + g.player.Height/2 - h/2 + g.spawner.PowerUpJitter()
	y = core.ClampF(y, 0, g.viewH-h)

	g.powerUps = append(g.powerUps, NewPowerUp(core.NewRectF(g.viewW, y, w, h), s))
	return true
}

// collect grants invincibility. Collecting while already invincible
// restarts the expiry timer.
func (g *Game) collect(now time.Time) {
	g.player.Invincible = true
	g.player.Blink = 0
	g.invincibility.Arm(now, ms(g.cfg.PowerUps.InvincibilityMS))
	g.svc.Audio.PlayPowerUp()
}

// endRun moves to the over phase. Calling it again is a no-op.
func (g *Game) endRun(now time.Time) {
	if g.phase == PhaseOver {
		return
	}
	g.phase = PhaseOver
	g.paused = false
	g.player.Invincible = false
	g.invincibility.Disarm()

	top := g.svc.Scores.TopScores()
	lowest := 0
	if size := g.cfg.Scoring.LeaderboardSize; len(top) >= size && len(top) > 0 {
		lowest = top[len(top)-1]
	}

	newHigh := g.score > g.highScore
	if newHigh {
		g.highScore = g.score
		g.svc.Scores.SetHighScore(g.score)
	}

	if g.score > 0 && g.score > lowest {
		g.svc.Scores.AddScore(g.score)
		g.message.Show(now, msgTopScore, ms(g.cfg.Messages.LeaderboardMS))
	}

	g.svc.Audio.PlayGameOver()
	g.scheduleRemote(newHigh)

	g.svc.Logger.Info("run over", "score", g.score, "high", g.highScore, "epoch", g.epoch)
}

// scheduleRemote queues best-effort remote work for the finished run.
func (g *Game) scheduleRemote(newHigh bool) {
	remote := g.svc.Remote
	if remote == nil {
		return
	}
	score := g.score

	if newHigh {
		g.tasks = append(g.tasks, core.Task{
			Kind:  core.TaskSubmitScore,
			Epoch: g.epoch,
			Run: func(ctx context.Context) (string, error) {
				return "", remote.SubmitScore(ctx, score)
			},
		})
	}

	prompt := gameOverPrompt(score, newHigh)
	g.tasks = append(g.tasks, core.Task{
		Kind:  core.TaskFlavorText,
		Epoch: g.epoch,
		Run: func(ctx context.Context) (string, error) {
			return remote.FlavorText(ctx, prompt)
		},
	})
}

func gameOverPrompt(score int, newHigh bool) string {
	if newHigh {
		return fmt.Sprintf("Write a short, space-themed, celebratory game over line for a pilot who just set a new high score of %d. First person. Maximum 12 words.", score)
	}
	return fmt.Sprintf("Write a short, space-themed, teasing game over line for a pilot who crashed with a score of %d. First person. Maximum 12 words.", score)
}

func (g *Game) takeTasks() []core.Task {
	tasks := g.tasks
	g.tasks = nil
	return tasks
}

// Apply feeds a finished task back into the game. Results scheduled in an
// earlier epoch are dropped.
func (g *Game) Apply(res core.TaskResult) {
	if res.Epoch != g.epoch {
		g.svc.Logger.Debug("dropping stale task result", "kind", res.Kind, "epoch", res.Epoch, "current", g.epoch)
		return
	}
	now := g.svc.Clock.Now()

	switch res.Kind {
	case core.TaskSubmitScore:
		if res.Err != nil {
			g.svc.Logger.Warn("score submission failed", "err", res.Err)
			g.message.Show(now, msgSubmitFailed, ms(g.cfg.Messages.ErrorMS))
			return
		}
		g.message.Show(now, msgSubmitted, ms(g.cfg.Messages.LeaderboardMS))
	case core.TaskFlavorText:
		text := strings.TrimSpace(res.Text)
		if res.Err != nil || text == "" {
			if res.Err != nil {
				g.svc.Logger.Warn("flavor text failed", "err", res.Err)
			}
			text = FallbackFlavor
		}
		g.flavor = text
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Started:   g.phase == PhaseRunning,
		GameOver:  g.phase == PhaseOver,
		Paused:    g.paused,
	}
}

// CurrentSpeed returns the effective scroll speed, milestone bonus included.
func (g *Game) CurrentSpeed() float64 {
	return g.speed.Current(g.baseSpeed, g.score)
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Epoch returns the current session generation.
func (g *Game) Epoch() uint64 { return g.epoch }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Player returns the player avatar.
func (g *Game) Player() *Player { return g.player }

// Obstacles returns the live obstacles, oldest first.
func (g *Game) Obstacles() []*Obstacle { return g.obstacles }

// PowerUps returns the live power-ups.
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Message returns the visible HUD message, or "".
func (g *Game) Message() string { return g.message.Text() }

// Flavor returns the generated game over line, or "" while none arrived.
func (g *Game) Flavor() string { return g.flavor }

// Cheat reports whether cheat mode is on.
func (g *Game) Cheat() bool { return g.cheat }

// Viewport returns the world size in pixels.
func (g *Game) Viewport() (w, h float64) { return g.viewW, g.viewH }

// entities lists everything to draw, back to front.
func (g *Game) entities() []Entity {
	out := make([]Entity, 0, 1+len(g.obstacles)+len(g.powerUps))
	for _, o := range g.obstacles {
		out = append(out, o)
	}
	for _, u := range g.powerUps {
		out = append(out, u)
	}
	return append(out, g.player)
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(svc core.Services) registry.Game {
		return New(svc)
	})
}
