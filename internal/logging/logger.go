// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

type Options struct {
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose bool
	// Output receives JSON lines; os.Stderr when nil.
	Output io.Writer
	// File, when set, also receives JSON lines through a rotating writer.
	File string
}

// New builds a logger with zap's production encoding on Output, teed into a
// rotating file when File is set.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionConfig().EncoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), level),
	}
	if opts.File != "" {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(newRotatingFile(opts.File)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.WarnLevel, nil
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return parsed, nil
}
