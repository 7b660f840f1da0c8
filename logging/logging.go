// Package logging builds the file-backed zap logger
// Hosts own stdout and the terminal, so logs never go to either
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/gamefeel/parameter"
)

// Options selects the log destination and encoding
type Options struct {
	Enabled    bool
	Path       string // Defaults to logs/gamefeel.log
	Level      string
	Format     string // console | json
	MaxSizeMB  int    // Rotate once the file reaches this size
	MaxBackups int
}

// DefaultPath is the log file used when Options.Path is empty
func DefaultPath() string {
	return filepath.Join(parameter.LogDir, parameter.LogFileName)
}

// Setup returns a session-tagged logger and the rotating file to close on exit
// Disabled logging returns a no-op logger and a nil closer
func Setup(opts Options) (*zap.Logger, io.Closer, error) {
	if !opts.Enabled {
		return zap.NewNop(), nil, nil
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = parameter.MaxLogSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = parameter.MaxLogBackups
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	// Fail at startup rather than on the first write
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}

	core := zapcore.NewCore(newEncoder(opts.Format), zapcore.AddSync(file), zap.NewAtomicLevelAt(level))
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).With(zap.String("session", uuid.NewString()))

	return logger, file, nil
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
