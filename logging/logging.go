// Package logging builds zap loggers from preset names or config files.
package logging

import (
	"fmt"
	"os"

	"github.com/academe-go/academe/jsoncfg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a zap logger from the given preset name, or, if conf
// does not name a preset, from the JSON zap configuration file at that path.
// The level argument only applies to the console and systemd presets.
func NewZapLogger(conf string, level zapcore.Level) (*zap.Logger, error) {
	switch conf {
	case "console", "":
		return NewConsoleLogger(level, true, true), nil
	case "console-nocolor":
		return NewConsoleLogger(level, false, true), nil
	case "console-notime":
		return NewConsoleLogger(level, true, false), nil
	case "systemd":
		// journald supplies timestamps and strips color codes anyway.
		return NewConsoleLogger(level, false, false), nil
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		var cfg zap.Config
		if err := jsoncfg.Open(conf, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load zap config %s: %w", conf, err)
		}
		return cfg.Build()
	}
}

// NewConsoleLogger creates a console logger that writes to stderr.
func NewConsoleLogger(level zapcore.Level, color, timestamp bool) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if !timestamp {
		cfg.TimeKey = zapcore.OmitKey
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level))
}
