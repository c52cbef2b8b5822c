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

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reSize = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]*)$`)
var reDigitsOnly = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)

var unitMultiplier = map[string]Size{
	"B":  SizeUnit,
	"K":  SizeKilo,
	"KB": SizeKilo,
	"M":  SizeMega,
	"MB": SizeMega,
	"G":  SizeGiga,
	"GB": SizeGiga,
	"T":  SizeTera,
	"TB": SizeTera,
	"P":  SizePeta,
	"PB": SizePeta,
	"E":  SizeExa,
	"EB": SizeExa,
}

// Parse parses a human size such as "512KB" or "2.5GB" into a Size.
func Parse(s string) (Size, error) {
	return parseString(s)
}

// ParseSize is a deprecated alias for Parse.
func ParseSize(s string) (Size, error) {
	return Parse(s)
}

// ParseByte is Parse over a byte slice.
func ParseByte(b []byte) (Size, error) {
	return parseString(string(b))
}

// ParseByteAsSize is a deprecated alias for ParseByte.
func ParseByteAsSize(b []byte) (Size, error) {
	return ParseByte(b)
}

// GetSize is a deprecated Parse that reports success instead of an error.
func GetSize(s string) (Size, bool) {
	v, err := Parse(s)
	if err != nil {
		return SizeNul, false
	}
	return v, true
}

func parseString(raw string) (Size, error) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	if s == "" {
		return SizeNul, fmt.Errorf("size: invalid size %q", raw)
	}

	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		return SizeNul, fmt.Errorf("size: negative size not allowed: %q", raw)
	}

	m := reSize.FindStringSubmatch(s)
	if m == nil {
		if reDigitsOnly.MatchString(s) {
			return SizeNul, fmt.Errorf("size: missing unit in %q", raw)
		}
		return SizeNul, fmt.Errorf("size: invalid size %q", raw)
	}

	numPart, unitPart := m[1], strings.ToUpper(m[2])
	if unitPart == "" {
		return SizeNul, fmt.Errorf("size: missing unit in %q", raw)
	}

	mult, ok := unitMultiplier[unitPart]
	if !ok {
		return SizeNul, fmt.Errorf("size: unknown unit %q in %q", unitPart, raw)
	}

	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return SizeNul, fmt.Errorf("size: invalid size %q", raw)
	}

	res := f * float64(mult)
	if res > maxUint64Float {
		return SizeNul, fmt.Errorf("size: value %q overflows size", raw)
	}

	return Size(res), nil
}

// ParseInt64 converts an int64 byte count to a Size, taking the
// absolute value of negative inputs.
func ParseInt64(i int64) Size {
	if i < 0 {
		i = -i
	}
	return Size(uint64(i))
}

// SizeFromInt64 is an alias for ParseInt64.
func SizeFromInt64(i int64) Size { return ParseInt64(i) }

// ParseUint64 converts a uint64 byte count to a Size.
func ParseUint64(u uint64) Size { return Size(u) }

// ParseFloat64 converts a float64 byte count to a Size, flooring
// fractional values and taking the absolute value of negative inputs.
// Out-of-range inputs saturate at the maximum Size.
func ParseFloat64(f float64) Size {
	f = math.Floor(f)
	if f < 0 {
		f = -f
	}
	if f > maxUint64Float {
		return Size(math.MaxUint64)
	}
	return Size(f)
}

// SizeFromFloat64 is an alias for ParseFloat64.
func SizeFromFloat64(f float64) Size { return ParseFloat64(f) }
