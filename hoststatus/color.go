/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package hoststatus implements the per (host, test) status state machine:
// the color lifecycle, modifier stack, flap damping, delayed-color policy,
// acknowledgement and cookie handling.
package hoststatus

import "strings"

// Color is one of the six status severities, ordered by increasing
// severity: Green < Blue < Clear < Yellow < Red < Purple.
type Color uint8

const (
	ColorNone Color = iota
	Green
	Blue
	Clear
	Yellow
	Red
	Purple
)

var colorNames = map[Color]string{
	Green:  "green",
	Blue:   "blue",
	Clear:  "clear",
	Yellow: "yellow",
	Red:    "red",
	Purple: "purple",
}

// ParseColor maps a wire color token, case-insensitively, to a Color.
// Unknown tokens return ColorNone, treated as "undecided" by the state
// machine: present on the wire but not itself altering alert lifecycle.
func ParseColor(s string) Color {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range colorNames {
		if n == s {
			return c
		}
	}
	return ColorNone
}

func (c Color) String() string {
	return colorNames[c]
}

func (c Color) valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Severity orders colors for worse-than/better-than comparisons; higher is
// worse. ColorNone sorts below every named color.
func (c Color) Severity() int {
	return int(c)
}

// Worse reports whether c is strictly more severe than other.
func (c Color) Worse(other Color) bool {
	return c.Severity() > other.Severity()
}

// ColorSet is an unordered membership set used for the configurable
// alertColors and okColors policies.
type ColorSet map[Color]struct{}

// NewColorSet builds a ColorSet from the given colors.
func NewColorSet(colors ...Color) ColorSet {
	s := make(ColorSet, len(colors))
	for _, c := range colors {
		s[c] = struct{}{}
	}
	return s
}

// DefaultAlertColors is {red, yellow, purple}, per spec default.
func DefaultAlertColors() ColorSet {
	return NewColorSet(Red, Yellow, Purple)
}

// DefaultOKColors is {green}, per spec default.
func DefaultOKColors() ColorSet {
	return NewColorSet(Green)
}

func (s ColorSet) Has(c Color) bool {
	_, ok := s[c]
	return ok
}
