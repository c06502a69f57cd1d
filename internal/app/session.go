// Package app wires the runner's collaborators for the command-line and
// desktop frontends.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/palopsee/internal/assets"
	"github.com/vovakirdan/palopsee/internal/audio"
	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/platform/tui"
	"github.com/vovakirdan/palopsee/internal/remote"
	"github.com/vovakirdan/palopsee/internal/runner"
	"github.com/vovakirdan/palopsee/internal/sprite"
	"github.com/vovakirdan/palopsee/internal/storage"
)

// Options mirror the global command-line flags.
type Options struct {
	DBPath     string // Empty keeps scores in memory
	ConfigPath string
	Difficulty string
	AssetsDir  string // Overrides sprites.dir from the config
	LogPath    string // Empty means ~/.palopsee/palopsee.log
	Mute       bool

	// Logger replaces the log file when set.
	Logger *log.Logger
}

// Session holds everything a local run needs.
type Session struct {
	Config config.RunnerConfig
	Logger *log.Logger
	Store  *storage.Store // nil when the database could not be opened
	Assets *assets.Provider
	Remote core.Remote

	synth     *audio.Synth
	assetsDir string
	logFile   io.Closer
}

// Open loads config and opens the log file, score store and speaker.
// Failures degrade to in-memory or silent collaborators and are logged.
func Open(opts Options) *Session {
	ApplyGameFlags(opts)

	s := &Session{assetsDir: opts.AssetsDir}

	s.Logger = opts.Logger
	if s.Logger == nil {
		logger, closer, err := OpenLogger(opts.LogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
		s.Logger, s.logFile = logger, closer
	}

	s.Config = LoadConfig(opts, s.Logger)

	if opts.DBPath != "" {
		store, err := storage.Open(opts.DBPath)
		if err != nil {
			s.Logger.Warn("could not open scores database", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		} else {
			s.Store = store
		}
	}

	s.synth = audio.NewSynth(audio.Options{Muted: opts.Mute})
	if !opts.Mute {
		if err := s.synth.Start(); err != nil {
			s.Logger.Warn("audio disabled", "error", err)
		}
	}

	s.Assets = assets.NewProvider(sprite.BuiltinNames(), uint8(s.Config.Sprites.AlphaThreshold), s.Logger)
	s.Remote = remote.FromConfig(s.Config.Remote, s.Logger)
	return s
}

// Services builds the collaborators for one game.
func (s *Session) Services(gameID string) core.Services {
	svc := core.Services{
		Audio:  s.synth,
		Remote: s.Remote,
		Assets: s.Assets,
		Logger: s.Logger.With("game", gameID),
	}
	if s.Store != nil {
		svc.Scores = storage.NewScoreBook(s.Store, gameID, s.Config.Scoring.LeaderboardSize, s.Logger)
	} else {
		svc.Scores = core.NewMemoryScoreBook(s.Config.Scoring.LeaderboardSize)
	}
	return svc
}

// Load fetches sprites from the configured directory.
func (s *Session) Load(ctx context.Context) error {
	return s.Assets.LoadDir(ctx, s.SpriteDir(), sprite.BuiltinNames())
}

// SpriteDir is the --assets flag or, failing that, sprites.dir.
func (s *Session) SpriteDir() string {
	if s.assetsDir != "" {
		return s.assetsDir
	}
	return s.Config.Sprites.Dir
}

// HighScorer returns the store, or a nil interface without one.
func (s *Session) HighScorer() tui.HighScorer {
	if s.Store == nil {
		return nil
	}
	return s.Store
}

// Close stops audio and closes the store and log file.
func (s *Session) Close() {
	s.synth.Close()
	if s.Store != nil {
		s.Store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// ApplyGameFlags hands the config path and difficulty to the runner.
func ApplyGameFlags(opts Options) {
	runner.SetConfigPath(opts.ConfigPath)
	runner.SetDifficultyPreset(opts.Difficulty)
}

// LoadConfig resolves the effective runner config, preset included.
func LoadConfig(opts Options, logger *log.Logger) config.RunnerConfig {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		logger.Warn("using default runner config", "error", err)
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		logger.Warn("ignoring difficulty", "error", err)
		return cfg
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg
}

// OpenLogger logs to path, or ~/.palopsee/palopsee.log when empty. On
// failure it returns a logger that discards output.
func OpenLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		path = config.UserDataPath("palopsee.log")
	}
	path, err := storage.ExpandHome(path)
	if err != nil {
		return log.New(io.Discard), nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "palopsee",
		Level:           log.InfoLevel,
	})
	return logger, f, nil
}
