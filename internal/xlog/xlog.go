// Copyright 2024 The boringevm Authors
// This file is part of the boringevm library.
//
// The boringevm library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The boringevm library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the boringevm library. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is a thin wrapper around log/slog that picks a colorable,
// terminal-aware handler when stderr is a tty and a plain one otherwise —
// the same split go-ethereum's own log package makes for its CLI tools.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var root *slog.Logger

func init() {
	root = slog.New(newHandler(os.Stderr))
}

func newHandler(w io.Writer) slog.Handler {
	out := w
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = colorable.NewColorable(f)
	}
	return slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
}

// SetLevel adjusts the root logger's minimum level. The CLI does not call
// it, so its runs log at the default Info level.
func SetLevel(level slog.Level) {
	root = slog.New(slog.NewTextHandler(stderrWriter(), &slog.HandlerOptions{Level: level}))
}

func stderrWriter() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return colorable.NewColorable(os.Stderr)
	}
	return os.Stderr
}

func Debug(msg string, args ...any) { root.Log(context.Background(), slog.LevelDebug, msg, args...) }
func Info(msg string, args ...any)  { root.Log(context.Background(), slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { root.Log(context.Background(), slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { root.Log(context.Background(), slog.LevelError, msg, args...) }
