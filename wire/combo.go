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

package wire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// SplitCombo splits a `combo\n`-prefixed buffer into its sub-messages. Per
// spec.md §4.1, sub-messages are separated by a blank line followed by the
// next sub-message's own leading keyword (e.g. "\n\nstatus", "\n\ndata");
// the synthetic leading "combo" line is dropped.
func SplitCombo(buf []byte) [][]byte {
	s := string(buf)
	if i := strings.IndexByte(s, '\n'); i >= 0 && strings.TrimSpace(s[:i]) == "combo" {
		s = s[i+1:]
	}

	parts := strings.Split(s, "\n\n")
	out := make([][]byte, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, []byte(p))
	}
	return out
}

// SplitExtCombo parses an `extcombo <startOff> <endOff1> <endOff2>…\n`
// header and slices buf into the named byte ranges. Each returned slice is
// byte-for-byte equal to the corresponding range of the input (spec.md §8
// "extcombo unpacking preserves byte-for-byte equality").
func SplitExtCombo(buf []byte) ([][]byte, error) {
	nl := bytes.IndexByte(buf, '\n')
	if nl < 0 {
		return nil, fmt.Errorf("%w: extcombo header has no newline", ErrProtocol)
	}

	header := strings.Fields(string(buf[:nl]))
	if len(header) < 3 || header[0] != "extcombo" {
		return nil, fmt.Errorf("%w: not an extcombo header", ErrProtocol)
	}

	offsets := make([]int, 0, len(header)-1)
	for _, tok := range header[1:] {
		n, e := strconv.Atoi(tok)
		if e != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid extcombo offset %q", ErrProtocol, tok)
		}
		offsets = append(offsets, n)
	}

	body := buf[nl+1:]
	out := make([][]byte, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		if start < 0 || end > len(body) || start > end {
			return nil, fmt.Errorf("%w: extcombo offset out of range", ErrProtocol)
		}
		sub := make([]byte, end-start)
		copy(sub, body[start:end])
		out = append(out, sub)
	}

	return out, nil
}
