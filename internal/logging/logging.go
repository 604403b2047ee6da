// Package logging builds the zap logger used by the CLI.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log level and the optional rotating file sink.
type Config struct {
	Level      string `mapstructure:"level" default:"warn" validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size" default:"10" validate:"gte=1"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" default:"3" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age" default:"7" validate:"gte=0"` // days
}

// ZapLevel parses Level, defaulting to warn.
func (c Config) ZapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// New returns a logger writing human-readable lines to stderr and, when
// File is set, JSON lines to a lumberjack-rotated file.
func New(cfg Config) *zap.Logger {
	level := zap.NewAtomicLevelAt(cfg.ZapLevel())

	consoleEnc := zap.NewDevelopmentEncoderConfig()
	consoleEnc.TimeKey = ""
	consoleEnc.NameKey = "logger"
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			LocalTime:  true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, level))
	}

	return zap.New(zapcore.NewTee(cores...)).Named("imgc")
}
