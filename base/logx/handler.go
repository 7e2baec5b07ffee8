// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the ANSI colors of the level names.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "4",
	slog.LevelInfo:  "6",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// NewHandler returns a text handler writing to w at [UserLevel], without
// timestamps and with level names colored when w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, ok := levelColors[lvl]
				if !ok {
					return a
				}
				return slog.String(a.Key, out.String(lvl.String()).Foreground(out.Color(c)).String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one writing to stderr
// at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
