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
	"regexp"
	"strings"
)

// Message is one decoded logical message: the verb, the resolved host.test
// address (if any), any [flags:XYZ] marker carried on a status line, and the
// raw body. Sender/CN are not part of the wire bytes; the caller (listener)
// attaches them from the connection.
type Message struct {
	Verb  string
	Addr  string
	Flags string
	Body  []byte
}

var flagsMarker = regexp.MustCompile(`\[flags:([^\]]*)\]`)

// Parse extracts the verb and, for verbs that carry one, the host.test
// address from buf's first line. Per spec.md §4.1 the address arrives with
// commas standing in for the dots in the hostname; Parse reverses that
// before returning. On a status line it also lifts the first [flags:XYZ]
// marker out of the body, leaving the rest of the body untouched.
func Parse(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return Message{}, ErrEmptyMessage
	}

	s := string(buf)
	line := s
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		line = s[:i]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Message{}, ErrEmptyMessage
	}

	m := Message{
		Verb: fields[0],
		Body: buf,
	}

	if len(fields) > 1 {
		m.Addr = CommaToDot(fields[1])
	}

	if m.Verb == "status" {
		if match := flagsMarker.FindSubmatch(buf); match != nil {
			m.Flags = string(match[1])
		}
	}

	return m, nil
}

// CommaToDot reverses the wire's comma-for-dot hostname encoding: any comma
// in s becomes a dot. Test names (after the last dot) are left untouched,
// matching the original separator rule of one address token "host,name.test".
func CommaToDot(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// DotToComma is the inverse of CommaToDot, used when re-serializing an
// address token back onto the wire (e.g. proxy forwarding, combo encoding).
func DotToComma(host string) string {
	return strings.ReplaceAll(host, ".", ",")
}
