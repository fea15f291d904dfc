// Copyright 2025 The HashSuite Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the leveled, structured Logger used across
// hashsuite, a DefaultLogger implementation and pluggable Formatters.
//
// Log output goes to stderr by default; stdout is reserved for command
// results so that digests can be piped.
package logging

import (
	"io"
	"strings"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for conditions worth a user's attention.
	LevelWarn
	// LevelError is for failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the lowercase level name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses s into a LogLevel, defaulting to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat selects how entries are rendered.
type LogFormat int

const (
	// FormatText renders human-readable lines.
	FormatText LogFormat = iota
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// String returns the lowercase format name.
func (f LogFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseLogFormat parses s into a LogFormat, defaulting to FormatText.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is a leveled logger with printf-style and line variants and
// attached structured fields.
type Logger interface {
	Debug(format string, args ...interface{})
	Debugln(msg string)
	Info(format string, args ...interface{})
	Infoln(msg string)
	Warn(format string, args ...interface{})
	Warnln(msg string)
	Error(format string, args ...interface{})
	Errorln(msg string)

	// GetLevel returns the minimum level that produces output.
	GetLevel() LogLevel

	// WithField returns a derived Logger carrying key=value.
	WithField(key string, value interface{}) Logger
	// WithFields returns a derived Logger carrying all of fields.
	WithFields(fields map[string]interface{}) Logger
}

// Default returns an info-level text logger writing to stderr.
func Default() Logger {
	return NewLogger(false)
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return NewLoggerWithOptions(LoggerOptions{Level: LevelSilent, Output: io.Discard})
}

// EnsureLogger returns l, or Default if l is nil.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
