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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	libcmp "github.com/nabbar/xymond/archive/compress"
)

// ReadFrame reads one logical message from r. It recognizes, on the first
// line, a `size:N` header (read exactly N more bytes) or a
// `compress:<algo> N` header (read N compressed bytes, then inflate to the
// returned payload). Absent either prefix, it reads until io.EOF (the
// connection's half-close, per spec.md §4.1(a)).
//
// ceiling bounds the declared or observed size; exceeding it returns
// ErrOversize without consuming more than necessary to report the error.
func ReadFrame(r *bufio.Reader, ceiling int) ([]byte, error) {
	first, err := r.ReadString('\n')
	if err != nil && first == "" {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}

	trimmed := strings.TrimRight(first, "\r\n")

	if n, ok := parseSizePrefix(trimmed); ok {
		if n > ceiling {
			_, _ = io.CopyN(io.Discard, r, int64(n))
			return nil, ErrOversize
		}
		buf := make([]byte, n)
		if _, e := io.ReadFull(r, buf); e != nil {
			return nil, e
		}
		return buf, nil
	}

	if algo, n, ok := parseCompressPrefix(trimmed); ok {
		if n > ceiling {
			return nil, ErrOversize
		}

		// n names the decompressed length, not the bytes on the wire: the
		// compressed stream is self-delimiting (its own algorithm-specific
		// end marker), so it is decoded straight off r rather than read into
		// an intermediate buffer of known size.
		alg := libcmp.Parse(algo)
		rc, e := alg.Reader(r)
		if e != nil {
			return nil, fmt.Errorf("%w: %v", ErrProtocol, e)
		}
		defer func() { _ = rc.Close() }()

		out, e := io.ReadAll(io.LimitReader(rc, int64(n)+1))
		if e != nil {
			return nil, e
		}
		if len(out) != n {
			return nil, fmt.Errorf("%w: compressed payload expanded to %d bytes, declared %d", ErrProtocol, len(out), n)
		}
		return out, nil
	}

	// No framing prefix: this first line is already message content: read
	// the remainder until EOF (half-close) and prepend it back.
	rest, e := io.ReadAll(r)
	if e != nil && e != io.EOF {
		return nil, e
	}

	buf := make([]byte, 0, len(trimmed)+1+len(rest))
	buf = append(buf, []byte(first)...)
	buf = append(buf, rest...)

	if len(buf) > ceiling {
		return nil, ErrOversize
	}
	return buf, nil
}

func parseSizePrefix(line string) (int, bool) {
	const p = "size:"
	if !strings.HasPrefix(line, p) {
		return 0, false
	}
	n, e := strconv.Atoi(strings.TrimSpace(line[len(p):]))
	if e != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseCompressPrefix(line string) (algo string, n int, ok bool) {
	const p = "compress:"
	if !strings.HasPrefix(line, p) {
		return "", 0, false
	}
	fields := strings.Fields(line[len(p):])
	if len(fields) != 2 {
		return "", 0, false
	}
	v, e := strconv.Atoi(fields[1])
	if e != nil || v < 0 {
		return "", 0, false
	}
	return fields[0], v, true
}
