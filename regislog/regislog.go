// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

// Package regislog wraps zap with the logging setup shared by the
// regis tools: leveled console output on stderr plus a rotated log
// file.
package regislog

import (
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	DebugLevelStr   string = "debug"
	InfoLevelStr    string = "info"
	WarningLevelStr string = "warning"
	ErrorLevelStr   string = "error"
)

type Logger struct {
	Logger *zap.SugaredLogger
}

// ParseLevel maps a level name from config or flags to its zap
// level.
func ParseLevel(logLevel string) (zapcore.Level, error) {
	switch logLevel {
	case DebugLevelStr:
		return zap.DebugLevel, nil
	case InfoLevelStr:
		return zap.InfoLevel, nil
	case WarningLevelStr:
		return zap.WarnLevel, nil
	case ErrorLevelStr:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %s", logLevel)
	}
}

func NewLogger(name string, logLevel string, logFile string, dev bool) (*Logger, error) {
	l, err := initLogger(logLevel, logFile, dev)
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: l.Named(name).Sugar(),
	}, nil
}

// registerSinkOnce guards the process-wide sink registration; zap
// rejects a second registration of the same scheme.
var registerSinkOnce sync.Once

func initLogger(logLevel string, logFile string, dev bool) (*zap.Logger, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	registerSinkOnce.Do(func() {
		zap.RegisterSink("lumberjack", func(u *url.URL) (zap.Sink, error) {
			filename := u.Opaque
			if filename == "" {
				filename = u.Path
			}
			return lumberjackSink{
				Logger: &lumberjack.Logger{
					Filename:   filename,
					MaxSize:    1024, //MB
					MaxBackups: 30,
					MaxAge:     90, //days
					Compress:   true,
				},
			}, nil
		})
	})

	loggerConfig := zap.Config{
		Level:         zap.NewAtomicLevelAt(level),
		Development:   dev,
		Encoding:      "console",
		EncoderConfig: encoderConfig,
		OutputPaths:   []string{fmt.Sprintf("lumberjack:%s", logFile), "stderr"},
	}

	builtLogger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger from config: %w", err)
	}

	zap.ReplaceGlobals(builtLogger)

	return builtLogger, nil
}

type lumberjackSink struct {
	*lumberjack.Logger
}

func (lumberjackSink) Sync() error {
	return nil
}
