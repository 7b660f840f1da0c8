package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/audio"
	"github.com/lixenwraith/gamefeel/config"
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/game"
	"github.com/lixenwraith/gamefeel/host/headless"
	"github.com/lixenwraith/gamefeel/host/terminal"
	"github.com/lixenwraith/gamefeel/host/window"
	"github.com/lixenwraith/gamefeel/logging"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/replay"
	"github.com/lixenwraith/gamefeel/telemetry"
)

var (
	configFlag   = flag.String("config", "", "YAML config file")
	hostFlag     = flag.String("host", "", "Host override: window, terminal, headless")
	scriptFlag   = flag.String("script", "", "Replay script, required by the headless host")
	snapshotFlag = flag.String("snapshot", "", "Headless: write the final top-down view to this PNG")
	debugFlag    = flag.Bool("debug", false, "Enable file logging to logs/gamefeel.log")
)

var errScriptRequired = errors.New("headless host requires -script")

type options struct {
	configPath string
	host       string
	script     string
	snapshot   string
	debug      bool
	out        io.Writer
}

func main() {
	// Panic Recovery: the terminal host restores the screen during unwind, then the trace is printed
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAMEFEEL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, options{
		configPath: *configFlag,
		host:       *hostFlag,
		script:     *scriptFlag,
		snapshot:   *snapshotFlag,
		debug:      *debugFlag,
		out:        os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamefeel: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.host != "" {
		cfg.Host = o.host
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, logFile, err := logging.Setup(logging.Options{
		Enabled: o.debug || cfg.Log.File != "",
		Path:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("host", cfg.Host), zap.String("config", o.configPath))

	if cfg.Host == config.HostHeadless {
		return runHeadless(ctx, cfg, o, logger)
	}

	var cues engine.CuePlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the sandbox runs without sound
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			cues = sm
		}
	}

	switch cfg.Host {
	case config.HostTerminal:
		h := terminal.New(terminal.Options{Logger: logger})
		g, err := game.New(game.Options{Config: cfg, Logger: logger, Cursor: h, Audio: cues})
		if err != nil {
			return err
		}
		shutdown, err := startDebug(cfg, g, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		return h.Run(ctx, g)

	default:
		h := window.New(window.Options{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
			Logger: logger,
		})
		g, err := game.New(game.Options{Config: cfg, Logger: logger, Cursor: h, Audio: cues})
		if err != nil {
			return err
		}
		shutdown, err := startDebug(cfg, g, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		return h.Run(ctx, g)
	}
}

func runHeadless(ctx context.Context, cfg config.Config, o options, logger *zap.Logger) error {
	if o.script == "" {
		return errScriptRequired
	}
	script, err := replay.Load(o.script)
	if err != nil {
		return err
	}
	frames, err := script.Expand()
	if err != nil {
		return fmt.Errorf("script %s: %w", o.script, err)
	}

	g, err := game.New(game.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	shutdown, err := startDebug(cfg, g, logger)
	if err != nil {
		return err
	}
	defer shutdown()

	snap, err := headless.Run(ctx, g, frames, headless.Options{
		SnapshotPath: o.snapshot,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if o.out != nil {
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	return nil
}

// startDebug serves /state, /metrics and /ws when an address is configured
// The returned func performs a bounded graceful shutdown
func startDebug(cfg config.Config, g *game.Game, logger *zap.Logger) (func(), error) {
	if cfg.Debug.Addr == "" {
		return func() {}, nil
	}

	metrics := telemetry.NewMetrics(g.World.Resources.Status)
	g.Scheduler.OnFrame(metrics.Hook())
	hub := telemetry.NewHub(g, parameter.DebugStreamInterval, logger.Named("hub"))

	srv, err := telemetry.Start(cfg.Debug.Addr, telemetry.RouterConfig{
		Source:  g,
		Metrics: metrics,
		Hub:     hub,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), parameter.DebugShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("debug server shutdown", zap.Error(err))
		}
	}, nil
}
