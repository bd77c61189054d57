// Copyright (c) 2025, the podbox authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// levelEnvVar controls the default log level when no explicit level is given.
const levelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level string to a slog.Level.
// Recognized values (case-insensitive): debug, info, warn, warning, error.
// Unknown or empty strings default to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a JSON slog.Logger writing to stderr with
// module and version attributes attached to every record. Source location
// is included when the level is debug.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		"module", module,
		"version", version,
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog default,
// taking the level from the LOG_LEVEL environment variable (INFO if unset).
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(levelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the slog
// default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if level == "" {
		level = os.Getenv(levelEnvVar)
	}
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger returns a standard library *log.Logger that forwards to the
// default slog handler at the given level. Useful for libraries that only
// accept a *log.Logger.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}
