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

// Package protocol enumerates the net.Dial/net.Listen network strings used
// throughout httpcli, mail/smtp and logger/hooksyslog so configuration
// structs can carry a typed, validated value instead of a raw string.
package protocol

import "strings"

type NetworkProtocol uint8

const (
	NetworkEmpty NetworkProtocol = iota
	NetworkUnix
	NetworkUnixGram
	NetworkTCP
	NetworkTCP4
	NetworkTCP6
	NetworkUDP
	NetworkUDP4
	NetworkUDP6
	NetworkIP
	NetworkIP4
	NetworkIP6
)

var names = map[NetworkProtocol]string{
	NetworkUnix:     "unix",
	NetworkUnixGram: "unixgram",
	NetworkTCP:      "tcp",
	NetworkTCP4:     "tcp4",
	NetworkTCP6:     "tcp6",
	NetworkUDP:      "udp",
	NetworkUDP4:     "udp4",
	NetworkUDP6:     "udp6",
	NetworkIP:       "ip",
	NetworkIP4:      "ip4",
	NetworkIP6:      "ip6",
}

// Parse maps a net.Dial/net.Listen network string, case-insensitively, to
// a NetworkProtocol. Unknown input returns NetworkEmpty.
func Parse(s string) NetworkProtocol {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, n := range names {
		if n == s {
			return p
		}
	}
	return NetworkEmpty
}

// String returns the net.Dial/net.Listen network string for this protocol,
// or "" if the value is invalid.
func (p NetworkProtocol) String() string {
	return names[p]
}

// Code returns the same network string as String(); kept as a distinct
// method name for call sites that key maps/log fields on the protocol's
// wire code rather than display string.
func (p NetworkProtocol) Code() string {
	return p.String()
}

func (p NetworkProtocol) valid() bool {
	_, ok := names[p]
	return ok
}

func (p NetworkProtocol) Int() int {
	if !p.valid() {
		return 0
	}
	return int(p)
}

func (p NetworkProtocol) Int64() int64 {
	if !p.valid() {
		return 0
	}
	return int64(p)
}

func (p NetworkProtocol) Uint() uint {
	if !p.valid() {
		return 0
	}
	return uint(p)
}

func (p NetworkProtocol) Uint64() uint64 {
	if !p.valid() {
		return 0
	}
	return uint64(p)
}

func (p NetworkProtocol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *NetworkProtocol) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*p = Parse(s)
	return nil
}

func (p NetworkProtocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *NetworkProtocol) UnmarshalText(data []byte) error {
	*p = Parse(string(data))
	return nil
}
