package main

import (
	"io"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a development-style console logger writing to w.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.Level = zap.NewAtomicLevelAt(lo.Ternary(debug, zapcore.DebugLevel, zapcore.WarnLevel))

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg.EncoderConfig), zapcore.AddSync(w), cfg.Level)
	return zap.New(core)
}
