// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"cogentcore.org/journalfig/base/logx"
	"cogentcore.org/journalfig/cmd/journalfig/config"
	"cogentcore.org/journalfig/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := newRoot(config.Default())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestColormapsCommand(t *testing.T) {
	assert.Contains(t, run(t, "colormaps"), "blue_red\n")
}

func TestStylesCommand(t *testing.T) {
	out := run(t, "styles", "grid")
	assert.Equal(t, "grid:\n  pretty_style_v1\n", out)
}

func TestExampleCommand(t *testing.T) {
	t.Cleanup(style.Reset)
	old := logx.UserLevel
	t.Cleanup(func() { logx.UserLevel = old })

	out := filepath.Join(t.TempDir(), "fig.png")
	run(t, "example", "-o", out, "--dpi", "30", "--units", "inch", "--width", "6", "--height", "3", "-v")
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)
	assert.FileExists(t, out)
}

func TestBadArgs(t *testing.T) {
	root := newRoot(config.Default())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"colormaps", "extra"})
	assert.Error(t, root.Execute())
}
