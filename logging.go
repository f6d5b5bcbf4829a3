// logging.go
// Copyright (C) 2024 Yahia Zakaria
// This file wraps log/slog with sokosolve-specific context, following
// the teacher's own wrapped-logger pattern.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package sokosolve

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sokosolve-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger around handler. A nil handler falls back
// to a text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that emits JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that emits human-readable text lines
// to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards everything logged through it.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithRequestID tags every subsequent record with a request correlation
// ID, typically a google/uuid value rendered by the HTTP layer.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{Logger: l.Logger.With("request_id", id)}
}

// LogParse logs the outcome of parsing a level.
func (l *Logger) LogParse(ctx context.Context, levelName string, compilable, potentiallySolvable bool) {
	if !compilable {
		l.WarnContext(ctx, "level failed to compile", "level", levelName)
		return
	}
	l.DebugContext(ctx, "level parsed", "level", levelName, "potentially_solvable", potentiallySolvable)
}

// LogSolve logs the outcome of a search run.
func (l *Logger) LogSolve(ctx context.Context, algorithm, levelName string, r Result, elapsedMs int64) {
	if r.Solved {
		l.InfoContext(ctx, "solve completed",
			"algorithm", algorithm,
			"level", levelName,
			"iterations", r.Iterations,
			"moves", len(r.Actions),
			"elapsed_ms", elapsedMs,
		)
		return
	}
	l.WarnContext(ctx, "solve did not find a solution",
		"algorithm", algorithm,
		"level", levelName,
		"iterations", r.Iterations,
		"limit_exceeded", r.LimitExceeded,
		"elapsed_ms", elapsedMs,
	)
}
