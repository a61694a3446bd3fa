package tabprint

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidStyle is returned when a style setting cannot be parsed.
var ErrInvalidStyle = errors.New("invalid style")

// Line terminators.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// NativeNewline returns CRLF on Windows and LF everywhere else.
func NativeNewline() string {
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}

// ParseNewline maps "lf", "crlf" and "native" to a line terminator.
func ParseNewline(s string) (string, error) {
	switch strings.ToLower(s) {
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "native":
		return NativeNewline(), nil
	default:
		return "", fmt.Errorf("%w: newline %q", ErrInvalidStyle, s)
	}
}

// Measure is the length metric used to size columns.
type Measure int

const (
	// MeasureBytes counts UTF-8 bytes. Multi-byte text is over-measured
	// and will not line up visually with ASCII text.
	MeasureBytes Measure = iota
	// MeasureRunes counts Unicode code points.
	MeasureRunes
	// MeasureCells counts terminal display cells, so wide characters
	// count twice and combining marks not at all.
	MeasureCells
)

var measureNames = [...]string{
	MeasureBytes: "bytes",
	MeasureRunes: "runes",
	MeasureCells: "cells",
}

// String returns the measure name.
func (m Measure) String() string {
	if m < 0 || int(m) >= len(measureNames) {
		return fmt.Sprintf("Measure(%d)", int(m))
	}
	return measureNames[m]
}

// ParseMeasure parses "bytes", "runes" or "cells".
func ParseMeasure(s string) (Measure, error) {
	for i, name := range measureNames {
		if strings.EqualFold(s, name) {
			return Measure(i), nil
		}
	}
	return 0, fmt.Errorf("%w: measure %q", ErrInvalidStyle, s)
}

// Len returns the length of s under m.
func (m Measure) Len(s string) int {
	switch m {
	case MeasureRunes:
		return utf8.RuneCountInString(s)
	case MeasureCells:
		return runewidth.StringWidth(s)
	default:
		return len(s)
	}
}

// Style holds the characters and settings used to render a table.
type Style struct {
	Column  rune    // drawn between cells
	Rule    rune    // fills rule lines
	Cross   rune    // drawn where a rule meets a column boundary
	Newline string  // line terminator
	Measure Measure // column width metric
}

// DefaultStyle returns the "|", "-", "+" style with LF line endings and
// byte-length measuring.
func DefaultStyle() Style {
	return Style{
		Column:  '|',
		Rule:    '-',
		Cross:   '+',
		Newline: LF,
		Measure: MeasureBytes,
	}
}

// ParseChar returns the single character in s.
func ParseChar(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidStyle, s)
	}
	return r, nil
}
