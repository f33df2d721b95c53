// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the CLI and the pipeline.
// Library packages never log; they return errors and let these callers
// decide what to record.
package logging

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/simmap/matrix"
)

// Encodings accepted in Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Rotation defaults for file sinks.
const (
	DefaultMaxSize    = 64 // megabytes
	DefaultMaxBackups = 3
)

var (
	// ErrUnknownLevel is returned for a level zap does not know.
	ErrUnknownLevel = matrix.NewValidation("logging: unknown level")

	// ErrUnknownFormat is returned for a format other than console or json.
	ErrUnknownFormat = matrix.NewValidation("logging: unknown format")
)

// Config selects level, encoding and destination of log output.
// With an empty Filename records go to stderr; otherwise to a file rotated
// by size.
type Config struct {
	Level      string `yaml:"level" toml:"level"`
	Format     string `yaml:"format" toml:"format"`
	Filename   string `yaml:"filename" toml:"filename"`
	MaxSize    int    `yaml:"max_size" toml:"max_size"`
	MaxDays    int    `yaml:"max_days" toml:"max_days"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: zapcore.InfoLevel.String(), Format: FormatConsole}
}

// Validate checks level and format.
func (c Config) Validate() error {
	if _, err := c.getLevel(); err != nil {
		return err
	}
	if c.Format != FormatConsole && c.Format != FormatJSON {
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, c.Format, FormatConsole, FormatJSON)
	}

	return nil
}

func (c Config) getLevel() (zap.AtomicLevel, error) {
	lvl, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w %q", ErrUnknownLevel, c.Level)
	}

	return lvl, nil
}

func (c Config) getEncoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if c.Format == FormatJSON {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(ec)
}

func (c Config) getSyncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	size, backups := c.MaxSize, c.MaxBackups
	if size <= 0 {
		size = DefaultMaxSize
	}
	if backups <= 0 {
		backups = DefaultMaxBackups
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    size,
		MaxAge:     c.MaxDays,
		MaxBackups: backups,
	})
}

// Build returns a logger for c without touching the global one.
// Errors: ErrUnknownLevel, ErrUnknownFormat.
func Build(c Config) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := c.getLevel()
	core := zapcore.NewCore(c.getEncoder(), c.getSyncer(), lvl)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

var global atomic.Pointer[zap.Logger]

// Init builds a logger for c and installs it as the one returned by L.
func Init(c Config) (*zap.Logger, error) {
	l, err := Build(c)
	if err != nil {
		return nil, err
	}
	global.Store(l)

	return l, nil
}

// L returns the logger installed by Init, or a no-op logger before that.
func L() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}

	return zap.NewNop()
}

// New returns L named after a component, e.g. "pipeline".
func New(component string) *zap.Logger { return L().Named(component) }

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
