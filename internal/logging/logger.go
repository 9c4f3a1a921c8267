// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging builds the zap logger used across blueprints.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/janderssonse/blueprints/internal/platform"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr is the LogFile value that sends records to standard error.
const Stderr = "-"

// Config selects level and destination.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string

	// File is the rotated log file, or Stderr. Empty disables logging.
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays tune rotation.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig logs info and above to file with modest rotation.
func DefaultConfig(file string) Config {
	return Config{
		Level:      "info",
		File:       file,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 14,
	}
}

// New creates a logger. The returned closer flushes and releases the file.
func New(cfg Config) (*zap.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return zap.NewNop(), nopCloser{}, nil
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if cfg.File == Stderr {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)

		return zap.New(core), nopCloser{}, nil
	}

	if err := platform.EnsureDir(filepath.Dir(cfg.File)); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), level)
	logger := zap.New(core, zap.AddCaller())

	return logger, closer{logger: logger, file: writer}, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", name)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closer struct {
	logger *zap.Logger
	file   *lumberjack.Logger
}

func (c closer) Close() error {
	_ = c.logger.Sync()

	return c.file.Close()
}
