// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogConfig serializes file log related config.
type FileLogConfig struct {
	// Log filename, leave empty to disable file log.
	Filename string
	// Max size for a single file, in MB.
	MaxSize int
	// Max log keep days, default is never deleting.
	MaxDays int
	// Maximum number of old log files to retain.
	MaxBackups int
}

// Config serializes log related config.
type Config struct {
	// Log level.
	Level string
	// Log format, one of json or text.
	Format string
	// File log config.
	File FileLogConfig
	// Output receives the log when no file is configured, default os.Stdout.
	Output io.Writer
}

var (
	mu      sync.RWMutex
	_global = zap.NewNop()
)

// Init builds the process-wide logger from cfg and installs it.
func Init(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	SetLevel(level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	var output zapcore.WriteSyncer
	if cfg.File.Filename != "" {
		output = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File.Filename,
			MaxSize:    cfg.File.MaxSize,
			MaxAge:     cfg.File.MaxDays,
			MaxBackups: cfg.File.MaxBackups,
			LocalTime:  true,
		})
	} else if cfg.Output != nil {
		output = zapcore.Lock(zapcore.AddSync(cfg.Output))
	} else {
		output = zapcore.Lock(os.Stdout)
	}

	ReplaceGlobals(zap.New(zapcore.NewCore(encoder, output, GetAtomicLevel()), zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// ReplaceGlobals replaces the global Logger.
func ReplaceGlobals(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	_global = logger
}

// L returns the global Logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return _global
}

// With creates a child logger and adds structured context to it.
func With(fields ...zap.Field) *zap.Logger {
	return L().WithOptions(zap.AddCallerSkip(-1)).With(fields...)
}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit(1).
func Fatal(msg string, fields ...zap.Field) {
	L().Fatal(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return L().Sync()
}
