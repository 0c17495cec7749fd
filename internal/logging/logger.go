// Package logging provides the leveled logger used across the pipeline:
// a colored console core plus an optional rotating file sink.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/duskfield/skysampler/internal/config"
	"github.com/duskfield/skysampler/internal/term"
)

// Logger wraps a sugared zap logger. The extra Successf level marks
// milestones (files written, batch done) in console output.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger configures terminal colors from cfg and builds the logger.
// Debug entries require Verbose; a non-empty LogFile adds a rotating,
// color-free file sink. Call Sync before exit.
func NewLogger(cfg *config.Config) *Logger {
	term.Configure(cfg.ColorMode)

	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	if term.Enabled() {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		fileEnc := zap.NewDevelopmentEncoderConfig()
		fileEnc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		fileEnc.EncodeLevel = zapcore.CapitalLevelEncoder
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			LocalTime:  true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileEnc), sink, level))
	}

	return &Logger{sugar: zap.New(zapcore.NewTee(cores...)).Sugar()}
}

// Sync flushes buffered entries. Safe to defer from main.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// Debugf logs at DEBUG level; dropped unless Verbose was set.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs at INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Successf logs a milestone at INFO level with a check mark prefix.
func (l *Logger) Successf(format string, args ...interface{}) {
	l.sugar.Infof("✓ "+format, args...)
}

// Warnf logs at WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs at ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
