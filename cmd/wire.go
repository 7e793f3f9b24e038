package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/tstack/internal/adapters/random"
	boardadapter "github.com/bnema/tstack/internal/adapters/render/board"
	scripttoml "github.com/bnema/tstack/internal/adapters/script/toml"
	"github.com/bnema/tstack/internal/application"
	"github.com/bnema/tstack/internal/config"
	"github.com/bnema/tstack/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	viper         *viper.Viper
	configPath    string
	seed          int64
	verbose       bool
	cfg           config.Config
	logger        *zap.Logger
	scripts       *scripttoml.Store
	boardRenderer func(application.Snapshot, boardadapter.RenderOptions) (string, error)
	newSeed       func() (int64, error)
}

func newApp() *app {
	return &app{
		viper:         viper.New(),
		logger:        zap.NewNop(),
		scripts:       scripttoml.NewStore(),
		boardRenderer: boardadapter.Render,
		newSeed:       random.NewSeed,
	}
}

// load resolves config and logging once flags are parsed.
func (a *app) load(logOutput io.Writer) error {
	if a.seed != 0 {
		a.viper.Set(config.SeedKey, a.seed)
	}

	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Output:  logOutput,
		File:    cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	if cfg.File != "" {
		a.logger.Debug("config loaded", zap.String("file", cfg.File))
	}

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newSession starts a session. A non-zero seed wins over the configured one;
// with neither, a random seed is drawn.
func (a *app) newSession(seed int64) (*application.Session, int64, error) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	if seed == 0 {
		var err error
		seed, err = a.newSeed()
		if err != nil {
			return nil, 0, fmt.Errorf("resolve session seed: %w", err)
		}
	}

	session := application.NewSession(random.New(seed), a.logger.With(zap.Int64("seed", seed)))
	return session, seed, nil
}
