package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/config"
	"github.com/1129kyoto/sitecontent/internal/logging"
)

// Globals is the state shared by every subcommand. Init fills it before
// any command runs.
type Globals struct {
	EnvFile string
	Version string
	Verbose bool

	Config *config.Config
	Logger *zap.Logger
}

func (g *Globals) Init() error {
	cfg, err := config.Load(g.EnvFile)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if g.Verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.Log.Env, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	g.Config = cfg
	g.Logger = logger
	return nil
}

// Sync flushes buffered log entries.
func (g *Globals) Sync() {
	if g.Logger != nil {
		_ = g.Logger.Sync()
	}
}

func (g *Globals) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
