// Package logging wraps zap with a process-wide logger shared by every
// component. Init is called once from the CLI; library code reaches the
// logger through L or Named and gets a sane default when Init never ran.
package logging

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// Init configures the process-wide logger. level is one of debug, info,
// warn, error. format is "console" or "json". outputPath is "stderr",
// "stdout", or a file path; empty means stderr.
func Init(level, format, outputPath string) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var encoderConfig zapcore.EncoderConfig
	if format == "json" {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var writer zapcore.WriteSyncer
	switch outputPath {
	case "", "stderr":
		writer = zapcore.AddSync(os.Stderr)
	case "stdout":
		writer = zapcore.AddSync(os.Stdout)
	default:
		file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		writer = zapcore.AddSync(file)
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, writer, zapLevel)

	mu.Lock()
	defer mu.Unlock()
	global = zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	return nil
}

// L returns the process-wide logger, building a default console logger on
// first use when Init has not been called.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			zapcore.InfoLevel,
		)
		global = zap.New(core)
	}

	return global
}

// Named returns a child of the process-wide logger with the given name
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync flushes buffered log entries; call before process exit
func Sync() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return global.Sync()
	}
	return nil
}
