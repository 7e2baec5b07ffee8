// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "strings"

// escaper escapes the LaTeX special characters of label texts.
var escaper = strings.NewReplacer(
	`%`, `\%`,
	`$`, `\$`,
	`&`, `\&`,
	`"`, `\"`,
	`'`, `\'`,
)

// Escape escapes the characters % $ & " and ' of s with a backslash.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Latexify returns s escaped and wrapped in math mode, for use as a
// label with a LaTeX text handler.
func Latexify(s string) string {
	return "$" + Escape(s) + "$"
}
