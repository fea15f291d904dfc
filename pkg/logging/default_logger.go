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

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// LoggerOptions configures NewLoggerWithOptions.
type LoggerOptions struct {
	Level LogLevel
	// Format is ignored when Formatter is set.
	Format LogFormat
	// Formatter overrides Format, TimeFormat and ShowLevel.
	Formatter Formatter
	// Output defaults to os.Stderr.
	Output io.Writer
	// TimeFormat applies to the built-in formatters.
	TimeFormat string
	// ShowLevel applies to the text formatter.
	ShowLevel bool
}

// sink is shared by a logger and everything derived from it with WithFields,
// so that writes to one output are serialized.
type sink struct {
	mu        sync.Mutex
	level     LogLevel
	formatter Formatter
	out       io.Writer
}

// DefaultLogger is the built-in Logger. It is safe for concurrent use.
type DefaultLogger struct {
	s      *sink
	fields map[string]interface{}
}

// NewLogger returns a text logger on stderr at LevelDebug when verbose and
// LevelInfo otherwise.
func NewLogger(verbose bool) *DefaultLogger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return NewLoggerWithOptions(LoggerOptions{Level: level})
}

// NewLoggerWithOptions returns a logger built from opts.
func NewLoggerWithOptions(opts LoggerOptions) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	formatter := opts.Formatter
	if formatter == nil {
		switch opts.Format {
		case FormatJSON:
			formatter = &JSONFormatter{TimeFormat: opts.TimeFormat}
		default:
			formatter = &TextFormatter{
				TimeFormat: opts.TimeFormat,
				ShowLevel:  opts.ShowLevel,
			}
		}
	}

	return &DefaultLogger{
		s: &sink{
			level:     opts.Level,
			formatter: formatter,
			out:       out,
		},
	}
}

// WithFields returns a logger that adds fields to every entry. The receiver
// is not modified.
func (l *DefaultLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{s: l.s, fields: merged}
}

// WithField returns a logger that adds key=value to every entry.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// SetLevel changes the minimum level for this logger and its derivatives.
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.level = level
}

// GetLevel returns the minimum level.
func (l *DefaultLogger) GetLevel() LogLevel {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.level
}

// SetOutput redirects output.
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.out = w
}

// IsLevelEnabled reports whether level would produce output.
func (l *DefaultLogger) IsLevelEnabled(level LogLevel) bool {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return level >= l.s.level && level < LevelSilent
}

func (l *DefaultLogger) log(level LogLevel, format string, args ...interface{}) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	if level < l.s.level || l.s.level == LevelSilent {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
		Fields:    l.fields,
	}

	data, err := l.s.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(l.s.out, "logging error: %v\n", err)
		return
	}
	_, _ = l.s.out.Write(data)
}

// Debug logs at debug level.
func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Debugln logs msg at debug level.
func (l *DefaultLogger) Debugln(msg string) {
	l.log(LevelDebug, "%s", msg)
}

// Info logs at info level.
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Infoln logs msg at info level.
func (l *DefaultLogger) Infoln(msg string) {
	l.log(LevelInfo, "%s", msg)
}

// Warn logs at warn level.
func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Warnln logs msg at warn level.
func (l *DefaultLogger) Warnln(msg string) {
	l.log(LevelWarn, "%s", msg)
}

// Error logs at error level.
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Errorln logs msg at error level.
func (l *DefaultLogger) Errorln(msg string) {
	l.log(LevelError, "%s", msg)
}
