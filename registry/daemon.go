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

package registry

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/nabbar/xymond/hoststatus"
)

// Daemon is the single process-wide aggregate holding every registry this
// package owns: the host-name → HostRecord map, the test-name → TestRecord
// intern table, the origin-name intern table, the cookie → StatusRecord
// index, and the ghost table. Rehoming these into one struct (rather than
// several package-level globals, as the daemon this is modeled on does)
// keeps the state testable and lets a process host more than one daemon
// instance if ever needed.
//
// Per spec.md §5 "Shared-resource policy", every map here is touched only
// from the single-threaded event loop the caller drives; Daemon itself
// takes a lock only to protect the cookie table and senderstats counters,
// which the query surface (boardhttp) may read concurrently with the main
// loop.
type Daemon struct {
	mu sync.Mutex

	Hosts   map[string]*HostRecord
	Tests   map[string]*TestRecord
	Origins map[string]string

	cookies map[string]*hoststatus.StatusRecord

	Ghosts *GhostTable
	Ghost  GhostPolicy

	senderStats map[string]int
}

// NewDaemon creates an empty Daemon aggregate.
func NewDaemon(ctx context.Context, ghostPolicy GhostPolicy, ghostRetention time.Duration) *Daemon {
	return &Daemon{
		Hosts:       make(map[string]*HostRecord),
		Tests:       make(map[string]*TestRecord),
		Origins:     make(map[string]string),
		cookies:     make(map[string]*hoststatus.StatusRecord),
		Ghosts:      NewGhostTable(ctx, ghostRetention),
		Ghost:       ghostPolicy,
		senderStats: make(map[string]int),
	}
}

// InternTest returns the TestRecord for name, creating it on first
// reference (spec.md §3 "TestRecord": created on first reference, never
// deleted during a run).
func (d *Daemon) InternTest(name string) *TestRecord {
	if t, ok := d.Tests[name]; ok {
		return t
	}
	t := &TestRecord{Name: name}
	d.Tests[name] = t
	return t
}

// InternOrigin returns the canonical interned string for an origin token.
func (d *Daemon) InternOrigin(name string) string {
	if s, ok := d.Origins[name]; ok {
		return s
	}
	d.Origins[name] = name
	return name
}

// RecordSend increments the per-sender message counter consulted by the
// `senderstats` query verb (spec.md §4.6 table; payload per
// original_source/xymond.c, see SUPPLEMENTED FEATURES).
func (d *Daemon) RecordSend(sender string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.senderStats[sender]++
}

// SenderStats returns a snapshot of per-sender message counts.
func (d *Daemon) SenderStats() map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]int, len(d.senderStats))
	for k, v := range d.senderStats {
		out[k] = v
	}
	return out
}

// NewCookie implements hoststatus.CookieAllocator: a fresh random numeric
// cookie, unique across all live status records (spec.md §4.3 step 8, §3
// invariants).
func (d *Daemon) NewCookie() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	for {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
		if err != nil {
			continue
		}
		c := strconv.FormatInt(n.Int64(), 10)
		if _, taken := d.cookies[c]; !taken {
			return c
		}
	}
}

// BindCookie associates cookie with rec in the live cookie index, so
// ResolveCookie (the `xymondack`/`ackinfo` entry point) can find it.
func (d *Daemon) BindCookie(cookie string, rec *hoststatus.StatusRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cookies[cookie] = rec
}

// ResolveCookie resolves a cookie to a live StatusRecord.
func (d *Daemon) ResolveCookie(cookie string) (*hoststatus.StatusRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.cookies[cookie]
	return r, ok
}

// UnbindCookie removes a cookie from the live index once it clears.
func (d *Daemon) UnbindCookie(cookie string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.cookies, cookie)
}
