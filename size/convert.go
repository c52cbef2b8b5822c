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
	"encoding/binary"
	"fmt"
	"math"
)

// Uint64 returns s as a uint64.
func (s Size) Uint64() uint64 { return uint64(s) }

// Uint32 returns s as a uint32, saturating at math.MaxUint32 on overflow.
func (s Size) Uint32() uint32 {
	if uint64(s) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}

// Uint returns s as a uint, saturating at the platform's maximum uint
// on overflow.
func (s Size) Uint() uint {
	if u := uint64(s); u > uint64(^uint(0)) {
		return ^uint(0)
	}
	return uint(s)
}

// Int64 returns s as an int64, saturating at math.MaxInt64 on overflow.
func (s Size) Int64() int64 {
	if uint64(s) > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(s)
}

// Int32 returns s as an int32, saturating at math.MaxInt32 on overflow.
func (s Size) Int32() int32 {
	if uint64(s) > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(s)
}

// Int returns s as an int, saturating at the platform's maximum int on
// overflow.
func (s Size) Int() int {
	if uint64(s) > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(s)
}

// Float64 returns s as a float64.
func (s Size) Float64() float64 { return float64(s) }

// Float32 returns s as a float32, saturating at math.MaxFloat32 on
// overflow.
func (s Size) Float32() float32 {
	if f := float64(s); f > math.MaxFloat32 {
		return math.MaxFloat32
	}
	return float32(s)
}

// MarshalBinary encodes s as a big-endian uint64.
func (s Size) MarshalBinary() ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(s))
	return b, nil
}

// UnmarshalBinary decodes a big-endian uint64 encoded by MarshalBinary.
func (s *Size) UnmarshalBinary(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("size: invalid binary encoding length %d", len(b))
	}
	*s = Size(binary.BigEndian.Uint64(b))
	return nil
}
