// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrFormat is returned for invalid label formats and for values
// a format cannot be applied to.
var ErrFormat = errors.New("invalid label format")

// grouper formats numbers with thousands separators.
var grouper = message.NewPrinter(language.English)

// Format formats arg with a label format. Replacement fields of the form
// {[0][!s|!r][:spec]} are replaced by arg formatted according to spec, and
// "{{" and "}}" stand for literal braces. The spec is
//
//	[[fill]align][sign][z][#][0][width][,|_][.precision][type]
//
// with align one of < > ^ =, sign one of + - or space, and type one of
// f F e E g G d n % s. A format without any replacement field but
// holding a printf verb is used as a printf format; one without a verb
// is literal text.
//
// A string arg formatted with a number type is parsed as a number first,
// accepting the Unicode minus sign.
func Format(format string, arg any) (string, error) {
	var b strings.Builder
	fields := 0
	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '{' && strings.HasPrefix(format[i:], "{{"):
			b.WriteByte('{')
			i += 2
		case c == '}' && strings.HasPrefix(format[i:], "}}"):
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("format %q: unclosed '{': %w", format, ErrFormat)
			}
			s, err := formatField(format[i+1:i+1+end], arg)
			if err != nil {
				return "", fmt.Errorf("format %q: %w", format, err)
			}
			b.WriteString(s)
			fields++
			i += end + 2
		case c == '}':
			return "", fmt.Errorf("format %q: single '}': %w", format, ErrFormat)
		default:
			b.WriteByte(c)
			i++
		}
	}
	if fields == 0 && hasVerb(format) {
		s := fmt.Sprintf(format, arg)
		if strings.Contains(s, "%!") {
			return "", fmt.Errorf("format %q cannot format %v: %w", format, arg, ErrFormat)
		}
		return s, nil
	}
	return b.String(), nil
}

// hasVerb reports whether the printf format holds a verb other than %%.
func hasVerb(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		j := i + 1
		for j < len(format) && strings.IndexByte("+-# 0123456789.*[]", format[j]) >= 0 {
			j++
		}
		if j == len(format) {
			return false
		}
		if format[j] != '%' {
			return true
		}
		i = j
	}
	return false
}

// formatField formats arg for the contents of one replacement field.
func formatField(field string, arg any) (string, error) {
	head, spec, _ := strings.Cut(field, ":")
	name, conv, hasConv := strings.Cut(head, "!")
	if name != "" && name != "0" {
		return "", fmt.Errorf("field %q: only argument 0 is available: %w", name, ErrFormat)
	}
	if hasConv {
		switch conv {
		case "s":
			arg = str(arg)
		case "r", "a":
			arg = repr(arg)
		default:
			return "", fmt.Errorf("conversion %q: %w", conv, ErrFormat)
		}
	}
	sp, err := parseSpec(spec)
	if err != nil {
		return "", err
	}
	return sp.format(arg)
}

// str returns the plain string form of v.
func str(v any) string {
	f, isInt, ok := number(v)
	switch {
	case !ok:
		return fmt.Sprint(v)
	case isInt:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return floatRepr(f)
}

// repr returns the quoted form of strings and the plain form of numbers.
func repr(v any) string {
	if s, ok := v.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
	}
	return str(v)
}

// floatRepr formats f with the shortest exact digits, always showing
// it as a float ("1.0" rather than "1").
func floatRepr(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	var s string
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s = strconv.FormatFloat(f, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
	}
	return s
}

// number returns v as a float64, and whether it is an integer type.
func number(v any) (f float64, isInt, ok bool) {
	switch x := v.(type) {
	case float64:
		return x, false, true
	case float32:
		return float64(x), false, true
	case int:
		return float64(x), true, true
	case int8:
		return float64(x), true, true
	case int16:
		return float64(x), true, true
	case int32:
		return float64(x), true, true
	case int64:
		return float64(x), true, true
	case uint:
		return float64(x), true, true
	case uint8:
		return float64(x), true, true
	case uint16:
		return float64(x), true, true
	case uint32:
		return float64(x), true, true
	case uint64:
		return float64(x), true, true
	}
	return 0, false, false
}

// formatSpec is a parsed format spec.
type formatSpec struct {
	fill     rune
	align    byte
	sign     byte
	z        bool
	alt      bool
	width    int
	grouping byte

	// prec is -1 when absent.
	prec int
	typ  byte
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func parseSpec(s string) (formatSpec, error) {
	sp := formatSpec{fill: ' ', prec: -1}
	rs := []rune(s)
	i := 0
	switch {
	case len(rs) >= 2 && isAlign(rs[1]):
		sp.fill, sp.align = rs[0], byte(rs[1])
		i = 2
	case len(rs) >= 1 && isAlign(rs[0]):
		sp.align = byte(rs[0])
		i = 1
	}
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		sp.sign = byte(rs[i])
		i++
	}
	if i < len(rs) && rs[i] == 'z' {
		sp.z = true
		i++
	}
	if i < len(rs) && rs[i] == '#' {
		sp.alt = true
		i++
	}
	if i < len(rs) && rs[i] == '0' {
		if sp.align == 0 {
			sp.fill, sp.align = '0', '='
		}
		i++
	}
	digits := func() (int, bool) {
		n, any := 0, false
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			n = n*10 + int(rs[i]-'0')
			i++
			any = true
		}
		return n, any
	}
	sp.width, _ = digits()
	if i < len(rs) && (rs[i] == ',' || rs[i] == '_') {
		sp.grouping = byte(rs[i])
		i++
	}
	if i < len(rs) && rs[i] == '.' {
		i++
		p, ok := digits()
		if !ok {
			return sp, fmt.Errorf("spec %q: missing precision: %w", s, ErrFormat)
		}
		sp.prec = p
	}
	if i < len(rs) {
		if !strings.ContainsRune("fFeEgGdn%s", rs[i]) {
			return sp, fmt.Errorf("spec %q: unknown type %q: %w", s, rs[i], ErrFormat)
		}
		sp.typ = byte(rs[i])
		i++
	}
	if i != len(rs) {
		return sp, fmt.Errorf("spec %q: %w", s, ErrFormat)
	}
	return sp, nil
}

// format formats v according to the spec.
func (sp formatSpec) format(v any) (string, error) {
	f, isInt, isNum := number(v)
	if !isNum {
		s := fmt.Sprint(v)
		if sp.typ == 0 || sp.typ == 's' {
			if sp.sign != 0 || sp.grouping != 0 || sp.align == '=' {
				return "", fmt.Errorf("number options for string %q: %w", s, ErrFormat)
			}
			if sp.prec >= 0 && utf8.RuneCountInString(s) > sp.prec {
				s = string([]rune(s)[:sp.prec])
			}
			return sp.pad("", s, '<'), nil
		}
		var err error
		f, err = strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), "−", "-"), 64)
		if err != nil {
			return "", fmt.Errorf("label %q is not a number for type %q: %w", s, sp.typ, ErrFormat)
		}
		isInt = false
	}
	if sp.typ == 's' {
		return "", fmt.Errorf("type 's' for number %v: %w", v, ErrFormat)
	}
	body, err := sp.number(math.Abs(f), isInt)
	if err != nil {
		return "", err
	}
	neg := math.Signbit(f) && !math.IsNaN(f)
	if neg && sp.z && strings.Trim(body, "0.%") == "" {
		neg = false
	}
	sign := ""
	switch {
	case neg:
		sign = "-"
	case sp.sign == '+':
		sign = "+"
	case sp.sign == ' ':
		sign = " "
	}
	return sp.pad(sign, body, '>'), nil
}

// number formats the absolute value f without sign.
func (sp formatSpec) number(f float64, isInt bool) (string, error) {
	typ := sp.typ
	if typ == 0 {
		switch {
		case isInt:
			typ = 'd'
		case sp.prec >= 0:
			typ = 'g'
		default:
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return floatRepr(f), nil
			}
			return sp.group(floatRepr(f)), nil
		}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		s := floatRepr(f)
		if typ == 'F' || typ == 'E' || typ == 'G' {
			s = strings.ToUpper(s)
		}
		if typ == '%' {
			s += "%"
		}
		return s, nil
	}
	prec := sp.prec
	if prec < 0 {
		prec = 6
	}
	var s string
	switch typ {
	case 'f', 'F':
		s = sp.fixed(f, prec)
	case 'e', 'E':
		s = strconv.FormatFloat(f, 'e', prec, 64)
	case 'g', 'G', 'n':
		s = strconv.FormatFloat(f, 'g', max(prec, 1), 64)
	case '%':
		s = sp.fixed(f*100, prec) + "%"
	case 'd':
		if f != math.Trunc(f) {
			return "", fmt.Errorf("type 'd' for non-integer %v: %w", f, ErrFormat)
		}
		s = sp.fixed(f, 0)
	}
	if typ == 'E' || typ == 'G' {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// fixed formats f with prec decimals, grouping thousands if requested.
func (sp formatSpec) fixed(f float64, prec int) string {
	if sp.grouping == 0 {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	s := grouper.Sprintf(fmt.Sprintf("%%.%df", prec), f)
	if sp.grouping == '_' {
		s = strings.ReplaceAll(s, ",", "_")
	}
	return s
}

// group groups the thousands of the integer part of a plain number.
func (sp formatSpec) group(s string) string {
	if sp.grouping == 0 || strings.ContainsAny(s, "e") {
		return s
	}
	ip, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(ip, 10, 64)
	if err != nil {
		return s
	}
	g := grouper.Sprintf("%d", n)
	if sp.grouping == '_' {
		g = strings.ReplaceAll(g, ",", "_")
	}
	if hasFrac {
		g += "." + frac
	}
	return g
}

// pad pads sign+body to the spec width. def is the default alignment.
func (sp formatSpec) pad(sign, body string, def byte) string {
	n := sp.width - utf8.RuneCountInString(sign) - utf8.RuneCountInString(body)
	if n <= 0 {
		return sign + body
	}
	align := sp.align
	if align == 0 {
		align = def
	}
	fill := func(k int) string { return strings.Repeat(string(sp.fill), k) }
	switch align {
	case '<':
		return sign + body + fill(n)
	case '^':
		return fill(n/2) + sign + body + fill(n-n/2)
	case '=':
		return sign + fill(n) + body
	}
	return fill(n) + sign + body
}
