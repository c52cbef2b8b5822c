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

// Package class enumerates the sender authorization classes of spec.md
// §4.2/§4.11 (status, maint, admin, www, any) and matches a peer address
// against the configured per-class allow-lists.
package class

import (
	"net"
	"strconv"
	"strings"
)

// Class is one authorization class a verb's dispatch row requires.
type Class uint8

const (
	Any Class = iota
	Status
	Maint
	Admin
	WWW
)

var names = map[Class]string{
	Any:    "any",
	Status: "status",
	Maint:  "maint",
	Admin:  "admin",
	WWW:    "www",
}

// Parse maps a config token, case-insensitively, to a Class. Unknown
// input returns Any, the least restrictive class.
func Parse(s string) Class {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range names {
		if n == s {
			return c
		}
	}
	return Any
}

func (c Class) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "any"
}

// List is a CIDR-based allow-list for one Class; an empty List permits
// every address, matching the original's "no restriction configured"
// default for a class nobody set up.
type List struct {
	nets []*net.IPNet
}

// NewList builds a List from dotted-decimal/CIDR entries (a bare address
// is treated as a /32 or /128). Malformed entries are skipped.
func NewList(entries ...string) *List {
	l := &List{}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			if ip := net.ParseIP(e); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				e = e + "/" + strconv.Itoa(bits)
			}
		}
		if _, n, err := net.ParseCIDR(e); err == nil {
			l.nets = append(l.nets, n)
		}
	}
	return l
}

// Allow reports whether ip is covered by the list, or the list is empty.
func (l *List) Allow(ip string) bool {
	if l == nil || len(l.nets) == 0 {
		return true
	}
	addr := net.ParseIP(ip)
	if addr == nil {
		return false
	}
	for _, n := range l.nets {
		if n.Contains(addr) {
			return true
		}
	}
	return false
}

// AllowList maps each Class to its own List, consulted by router/ before
// dispatching a verb to its handler.
type AllowList map[Class]*List

// Allow reports whether ip is permitted for class c. A class absent from
// the map permits every address.
func (a AllowList) Allow(c Class, ip string) bool {
	l, ok := a[c]
	if !ok {
		return true
	}
	return l.Allow(ip)
}
