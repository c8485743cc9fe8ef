// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects level, format and destination of log output.
type Config struct {
	// debug|info|warn|error (default: info)
	Level string `toml:"level" envconfig:"LEVEL"`
	// console|json (default: console)
	Format string `toml:"format" envconfig:"FORMAT"`
	// Rotating log file; empty logs to stderr.
	File       string `toml:"file" envconfig:"FILE"`
	MaxSizeMB  int    `toml:"max_log_size" envconfig:"MAX_SIZE_MB"`
	MaxAgeDays int    `toml:"max_log_age" envconfig:"MAX_AGE_DAYS"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		MaxSizeMB:  10,
		MaxAgeDays: 30,
	}
}

// Logger is the configured process logger.
var Logger = zerolog.Nop()

// New builds a logger from cfg without touching global state.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}

	var (
		output io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		l := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxSizeMB,  // megabytes
			MaxAge:   cfg.MaxAgeDays, // days
		}
		output = l
		closer = l
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.File != "",
		}
	case "json":
	default:
		return zerolog.Nop(), nil, fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return l, closer, nil
}

// Init configures the global logger and returns a closer for its output.
func Init(cfg Config) (io.Closer, error) {
	l, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}
	Logger = l
	log.Logger = l
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
