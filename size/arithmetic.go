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
)

// Mul multiplies s in place by x, rounding fractional results up. A
// non-positive multiplier zeroes s. Overflow saturates at the maximum
// Size without error; use MulErr to be told about it.
func (s *Size) Mul(x float64) {
	_ = s.MulErr(x)
}

// MulErr is Mul, returning an error when the result saturates.
func (s *Size) MulErr(x float64) error {
	if x <= 0 {
		*s = SizeNul
		return nil
	}

	cur := float64(*s)
	if cur != 0 && x > maxUint64Float/cur {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: multiplication overflow: %d * %g exceeds maximum size", uint64(*s), x)
	}

	res := math.Ceil(cur * x)
	if res > maxUint64Float {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: multiplication overflow: %d * %g exceeds maximum size", uint64(cur), x)
	}

	*s = Size(res)
	return nil
}

// Div divides s in place by x, rounding fractional results up. An
// invalid (non-positive) divisor leaves s unchanged; use DivErr to be
// told about it.
func (s *Size) Div(x float64) {
	_ = s.DivErr(x)
}

// DivErr is Div, returning an error for a non-positive divisor.
func (s *Size) DivErr(x float64) error {
	if x <= 0 {
		return fmt.Errorf("size: invalid diviser %g", x)
	}

	res := math.Ceil(float64(*s) / x)
	if res > maxUint64Float {
		res = maxUint64Float
	}

	*s = Size(res)
	return nil
}

// Add adds x to s in place, saturating at the maximum Size on overflow.
func (s *Size) Add(x uint64) {
	_ = s.AddErr(x)
}

// AddErr is Add, returning an error when the result saturates.
func (s *Size) AddErr(x uint64) error {
	cur := uint64(*s)
	if x > math.MaxUint64-cur {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size: addition overflow: %d + %d exceeds maximum size", cur, x)
	}

	*s = Size(cur + x)
	return nil
}

// Sub subtracts x from s in place, saturating at SizeNul on underflow.
func (s *Size) Sub(x uint64) {
	_ = s.SubErr(x)
}

// SubErr is Sub, returning an error when the result saturates at zero.
func (s *Size) SubErr(x uint64) error {
	cur := uint64(*s)
	if x > cur {
		*s = SizeNul
		return fmt.Errorf("size: invalid substractor %d for size %d", x, cur)
	}

	*s = Size(cur - x)
	return nil
}
