// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the version of the style sheet format understood by
// this package. Sheets may constrain it with a top level "requires" key.
const FormatVersion = "1.1.0"

// EnvStyleLib is the environment variable naming an additional
// style sheet directory, searched before all others.
const EnvStyleLib = "JOURNALFIG_STYLELIB"

// sheetExts are the recognized style sheet file extensions, in lookup order.
var sheetExts = []string{".toml", ".yaml", ".yml"}

//go:embed stylelib
var stylelib embed.FS

// Paths are the user style sheet directories, searched in order before
// the embedded sheets. Each directory has one subdirectory per [Element]
// holding <name>.toml or <name>.yaml files.
var Paths = defaultPaths()

func defaultPaths() []string {
	var ps []string
	if dir := os.Getenv(EnvStyleLib); dir != "" {
		ps = append(ps, dir)
	}
	if dir, err := homedir.Expand("~/.config/journalfig/stylelib"); err == nil {
		ps = append(ps, dir)
	}
	return ps
}

// sheet is a located style sheet file.
type sheet struct {
	fsys fs.FS
	file string

	// where is a human readable location used in messages.
	where string
}

// sources returns the file systems searched for sheets, in order.
func sources() []sheet {
	var ss []sheet
	for _, dir := range Paths {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			continue
		}
		ss = append(ss, sheet{fsys: os.DirFS(dir), where: dir})
	}
	sub, err := fs.Sub(stylelib, "stylelib")
	if err == nil {
		ss = append(ss, sheet{fsys: sub, where: "embedded"})
	}
	return ss
}

// find locates the sheet with the given name for el.
func find(name string, el Element) (sheet, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return sheet{}, fmt.Errorf("sheet name %q: %w", name, ErrInvalid)
	}
	for _, src := range sources() {
		for _, ext := range sheetExts {
			file := path.Join(el.String(), name+ext)
			if _, err := fs.Stat(src.fsys, file); err == nil {
				src.file = file
				return src, nil
			}
		}
	}
	msg := fmt.Sprintf("no %s sheet %q (looked for %s/%s.toml in %s)", el, name, el, name, strings.Join(searched(), ", "))
	if s := suggest(name, Names(el)); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return sheet{}, fmt.Errorf("%s: %w", msg, ErrNotFound)
}

func searched() []string {
	var ws []string
	for _, src := range sources() {
		ws = append(ws, src.where)
	}
	return ws
}

// suggest returns the name most similar to name, if any is close enough.
func suggest(name string, names []string) string {
	best, score := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, n := range names {
		if s := strutil.Similarity(name, n, lev); s > score {
			best, score = n, s
		}
	}
	return best
}

// header holds the keys common to all sheets.
type header struct {
	Requires string `toml:"requires" yaml:"requires"`
}

// applySheet decodes the named sheet of el onto the matching group of p.
func applySheet(p *Params, name string, el Element) error {
	sh, err := find(name, el)
	if err != nil {
		return err
	}
	data, err := fs.ReadFile(sh.fsys, sh.file)
	if err != nil {
		return err
	}
	ext := filepath.Ext(sh.file)
	var hd header
	if err := decode(data, ext, &hd); err != nil {
		return fmt.Errorf("%s: %s: %w: %w", sh.where, sh.file, ErrInvalid, err)
	}
	if hd.Requires != "" {
		if err := checkRequires(hd.Requires); err != nil {
			return fmt.Errorf("%s: %s: %w", sh.where, sh.file, err)
		}
	}
	if err := decode(data, ext, p.group(el)); err != nil {
		return fmt.Errorf("%s: %s: %w: %w", sh.where, sh.file, ErrInvalid, err)
	}
	slog.Debug("loaded style sheet", "element", el, "file", sh.file, "from", sh.where)
	return nil
}

func decode(data []byte, ext string, v any) error {
	switch ext {
	case ".toml":
		return toml.Unmarshal(data, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("unsupported sheet extension %q", ext)
}

// checkRequires checks a sheet's format constraint against [FormatVersion].
func checkRequires(req string) error {
	c, err := semver.NewConstraint(req)
	if err != nil {
		return fmt.Errorf("requires %q: %w: %w", req, ErrInvalid, err)
	}
	if !c.Check(semver.MustParse(FormatVersion)) {
		return fmt.Errorf("sheet requires format %s, have %s: %w", req, FormatVersion, ErrInvalid)
	}
	return nil
}

// Names returns the sorted names of all sheets available for el.
func Names(el Element) []string {
	var ns []string
	for _, src := range sources() {
		ents, err := fs.ReadDir(src.fsys, el.String())
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("reading style sheets", "dir", src.where, "err", err)
			}
			continue
		}
		for _, e := range ents {
			ext := filepath.Ext(e.Name())
			if e.IsDir() || !slices.Contains(sheetExts, ext) {
				continue
			}
			ns = append(ns, strings.TrimSuffix(e.Name(), ext))
		}
	}
	slices.Sort(ns)
	return slices.Compact(ns)
}
