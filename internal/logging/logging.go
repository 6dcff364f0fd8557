// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// stdout carries only the report.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"switchports/internal/config"
)

func Level(cfg config.Config, verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

func New(cfg config.Config, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		if cfg.LogColor {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zc.Level = zap.NewAtomicLevelAt(Level(cfg, verbose))
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
