package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Set bundles the loggers of a running server.
type Set struct {
	// App logs to the console, the info file and the error file.
	App *zap.Logger
	// Access receives one entry per failed (status >= 400) request.
	Access *zap.Logger
	// Exceptions receives recovered panics, echoed to the console.
	Exceptions *zap.Logger

	files []*lumberjack.Logger
}

// Open creates the log directory and builds the logger set.
// debug forces the console to debug level regardless of cfg.Level.
func Open(cfg *Config, debug bool) (*Set, error) {
	consoleCfg := *cfg
	if debug {
		consoleCfg.Level = "debug"
	}
	console, err := New(&consoleCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build console logger: %w", err)
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	s := &Set{}
	enc := zapcore.NewJSONEncoder(fileEncoderConfig())

	infoCore := zapcore.NewCore(enc, s.rotating(cfg, dir, InfoFile), zapcore.InfoLevel)
	errorCore := zapcore.NewCore(enc, s.rotating(cfg, dir, ErrorFile), zapcore.ErrorLevel)
	exceptionsCore := zapcore.NewCore(enc, s.rotating(cfg, dir, ExceptionsFile), zapcore.ErrorLevel)
	accessCore := zapcore.NewCore(enc, s.rotating(cfg, dir, AccessFile), zapcore.InfoLevel)

	s.App = zap.New(zapcore.NewTee(console.Core(), infoCore, errorCore), zap.AddCaller())
	s.Exceptions = zap.New(zapcore.NewTee(console.Core(), exceptionsCore))
	s.Access = zap.New(accessCore)

	return s, nil
}

// Sync flushes every logger of the set.
func (s *Set) Sync() error {
	return errors.Join(s.App.Sync(), s.Access.Sync(), s.Exceptions.Sync())
}

// Close flushes the loggers and closes the log files.
func (s *Set) Close() error {
	// Console sinks return EINVAL on Sync when attached to a terminal.
	_ = s.Sync()

	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

// rotating returns an append-mode writer that rotates by size.
func (s *Set) rotating(cfg *Config, dir, name string) zapcore.WriteSyncer {
	f := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	s.files = append(s.files, f)
	return zapcore.AddSync(f)
}

func fileEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.LevelKey = "level"
	ec.TimeKey = "time"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return ec
}
