/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package size

import "fmt"

// scale picks the largest binary prefix that s is at least one unit of,
// returning the scaled value and its prefix letter ("" for plain bytes).
func (s Size) scale() (float64, string) {
	switch {
	case s >= SizeExa:
		return float64(s) / float64(SizeExa), "E"
	case s >= SizePeta:
		return float64(s) / float64(SizePeta), "P"
	case s >= SizeTera:
		return float64(s) / float64(SizeTera), "T"
	case s >= SizeGiga:
		return float64(s) / float64(SizeGiga), "G"
	case s >= SizeMega:
		return float64(s) / float64(SizeMega), "M"
	case s >= SizeKilo:
		return float64(s) / float64(SizeKilo), "K"
	default:
		return float64(s), ""
	}
}

// Unit returns the scale prefix for s suffixed with unit ('B' when unit
// is 0), e.g. "KB", "Mi", "GB".
func (s Size) Unit(unit rune) string {
	if unit == 0 {
		unit = 'B'
	}
	_, prefix := s.scale()
	return prefix + string(unit)
}

// Code is Unit using the package default unit (see SetDefaultUnit) when
// called with 0.
func (s Size) Code(unit rune) string {
	if unit == 0 {
		unit = defaultUnit
	}
	return s.Unit(unit)
}

// Format renders s scaled to its largest binary prefix using the given
// printf float verb (e.g. FormatRound2).
func (s Size) Format(format string) string {
	value, _ := s.scale()
	return fmt.Sprintf(format, value)
}

// String renders s to two decimals with its unit, e.g. "5.00MB".
func (s Size) String() string {
	return s.Format(FormatRound2) + s.Unit(0)
}

// KiloBytes returns s expressed as a whole number of kilobytes.
func (s Size) KiloBytes() uint64 { return uint64(s) / uint64(SizeKilo) }

// MegaBytes returns s expressed as a whole number of megabytes.
func (s Size) MegaBytes() uint64 { return uint64(s) / uint64(SizeMega) }

// GigaBytes returns s expressed as a whole number of gigabytes.
func (s Size) GigaBytes() uint64 { return uint64(s) / uint64(SizeGiga) }

// TeraBytes returns s expressed as a whole number of terabytes.
func (s Size) TeraBytes() uint64 { return uint64(s) / uint64(SizeTera) }

// PetaBytes returns s expressed as a whole number of petabytes.
func (s Size) PetaBytes() uint64 { return uint64(s) / uint64(SizePeta) }

// ExaBytes returns s expressed as a whole number of exabytes.
func (s Size) ExaBytes() uint64 { return uint64(s) / uint64(SizeExa) }
