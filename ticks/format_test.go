// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		arg    any
		want   string
	}{
		{"{0:.3f}", 1.5, "1.500"},
		{"{0:.0f}", 45.0, "45"},
		{"{0:.1f}", -0.4, "-0.4"},
		{"{:.1f} V", 0.3, "0.3 V"},
		{"{0!s}", "a", "a"},
		{"{0!s}", 0.4, "0.4"},
		{"{0!s}", 5, "5"},
		{"{0!r}", "a", "'a'"},
		{"{0}", 1.0, "1.0"},
		{"{0}", 7, "7"},
		{"{0}", 1e20, "1e+20"},
		{"{0:,.0f}", 1234567.0, "1,234,567"},
		{"{0:_.0f}", 1234567.0, "1_234_567"},
		{"{0:,}", 1234567.5, "1,234,567.5"},
		{"{0:,d}", 1234567, "1,234,567"},
		{"{0:+.2e}", 12345.0, "+1.23e+04"},
		{"{0:.2E}", 12345.0, "1.23E+04"},
		{"{0:.0%}", 0.25, "25%"},
		{"{0:d}", 5.0, "5"},
		{"{0:g}", 1.5, "1.5"},
		{"{0:.3g}", 1234.0, "1.23e+03"},
		{"{0:>6.1f}", 1.0, "   1.0"},
		{"{0:<6.1f}|", 1.0, "1.0   |"},
		{"{0:*^7}", "ab", "**ab***"},
		{"{0:08.2f}", -3.14159, "-0003.14"},
		{"{0: .1f}", 2.0, " 2.0"},
		{"{0:z.1f}", -0.01, "0.0"},
		{"{0:.1f}", -0.01, "-0.0"},
		{"{0:.1f}", math.Inf(1), "inf"},
		{"{0:.1F}", math.NaN(), "NAN"},
		{"{{{0}}}", 1, "{1}"},
		{"{0:.2}", "abc", "ab"},
		{"{0:.1f}", "−0.5", "-0.5"},
		{"{0:.0f}", " 12 ", "12"},
		{"%.2f", 3.14159, "3.14"},
		{"no fields", 1.0, "no fields"},
		{"100%", 1.0, "100%"},
		{"%5.1f%%", 2.0, "  2.0%"},
		{"$\\bf{{{0}}}$", "e", "$\\bf{e}$"},
	}
	for _, tt := range tests {
		got, err := Format(tt.format, tt.arg)
		if assert.NoError(t, err, tt.format) {
			assert.Equal(t, tt.want, got, "%s with %v", tt.format, tt.arg)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		format string
		arg    any
	}{
		{"{1}", 1.0},
		{"{0", 1.0},
		{"}", 1.0},
		{"{0!x}", 1.0},
		{"{0:.f}", 1.0},
		{"{0:q}", 1.0},
		{"{0:.1f}", "abc"},
		{"{0:s}", 1.0},
		{"{0:d}", 5.5},
		{"{0:+}", "a"},
		{"%d", "a"},
		{"%f %f", 1.0},
	}
	for _, tt := range tests {
		_, err := Format(tt.format, tt.arg)
		assert.ErrorIs(t, err, ErrFormat, tt.format)
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `50\% of \$5 \& more`, Escape(`50% of $5 & more`))
	assert.Equal(t, `$\"a\'$`, Latexify(`"a'`))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestMultiple(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45}, Multiple{5}.Values(-0.5, 49.5))
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, Multiple{0.5}.Values(-1.1, 1.1))
	assert.Equal(t, []float64{0, 1}, Multiple{1}.Values(1, 0))
	assert.Nil(t, Multiple{0}.Values(0, 1))
	assert.Nil(t, Multiple{-1}.Values(0, 1))

	vs := Multiple{0.4}.Values(-1.1, 1.1)
	require.Len(t, vs, 5)
	for i, want := range []float64{-0.8, -0.4, 0, 0.4, 0.8} {
		assert.InDelta(t, want, vs[i], 1e-12)
	}
	assert.False(t, math.Signbit(vs[2]))
	assert.Equal(t, 0.3, Multiple{0.1}.Values(0, 1)[3])
	assert.Equal(t, 0.7, Multiple{0.1}.Values(0, 1)[7])

	ts := Multiple{2}.Ticks(0, 4)
	require.Len(t, ts, 3)
	assert.Equal(t, "4", ts[2].Label)
}
