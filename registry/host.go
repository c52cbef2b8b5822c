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

// Package registry holds the host/test/origin registries, the ghost table,
// the purple sweeper, and the Daemon aggregate that ties them to the
// hoststatus state machine (spec.md §3, "Host/test registry" in §2).
package registry

import (
	"time"

	"github.com/nabbar/xymond/hoststatus"
)

// HostKind distinguishes a regular monitored host from a write-expiring
// Summary host (spec.md §3 "HostRecord").
type HostKind uint8

const (
	HostNormal HostKind = iota
	HostSummary
)

// ClientBlob is one sub-client message blob keyed by collector id
// (spec.md §3 "list of sub-client message blobs").
type ClientBlob struct {
	CollectorID string
	Body        []byte
	Received    time.Time
}

// HostRecord is the per-host entity of spec.md §3. It is created on first
// reference from a valid host and removed on drophost or when a reload
// shows the host is no longer configured.
type HostRecord struct {
	Name string
	IP   string
	Kind HostKind

	// PingColor caches the host's own `conn`/ping test color, consulted
	// by the purple sweeper (spec.md §4.3 "Purple sweeper").
	PingColor hoststatus.Color

	Dialup     bool
	NoClear    bool
	NoFlap     bool
	MultiHomed bool

	Statuses map[string]*hoststatus.StatusRecord

	ClientBlobs   map[string]*ClientBlob
	LastClientMsg time.Time
}

// NewHostRecord creates an empty HostRecord ready to accept test statuses.
func NewHostRecord(name, ip string, kind HostKind) *HostRecord {
	return &HostRecord{
		Name:        name,
		IP:          ip,
		Kind:        kind,
		Statuses:    make(map[string]*hoststatus.StatusRecord),
		ClientBlobs: make(map[string]*ClientBlob),
	}
}

// Status returns the StatusRecord for test, creating it on first
// reference with the given flap-count ring size.
func (h *HostRecord) Status(test string, flapCount int) (*hoststatus.StatusRecord, bool) {
	if s, ok := h.Statuses[test]; ok {
		return s, false
	}
	s := hoststatus.NewStatusRecord(h.Name, test, flapCount)
	h.Statuses[test] = s
	return s, true
}

// TestRecord is the per-test entity of spec.md §3: created on first
// reference, never deleted during a run.
type TestRecord struct {
	Name       string
	ClientSave bool
	NoClient   bool
}
