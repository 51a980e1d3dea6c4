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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is an alias for zapcore.Level
type Level = zapcore.Level

// Re-export level constants
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// globalLevel allows runtime level changes
var globalLevel = zap.NewAtomicLevelAt(InfoLevel)

// SetLevel changes the log level at runtime.
// Loggers installed through ReplaceGlobals manage their own level.
func SetLevel(level Level) {
	globalLevel.SetLevel(level)
}

// GetLevel returns the current log level.
func GetLevel() Level {
	return globalLevel.Level()
}

// GetAtomicLevel returns the AtomicLevel shared by loggers built in Init.
func GetAtomicLevel() zap.AtomicLevel {
	return globalLevel
}
