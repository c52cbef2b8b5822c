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

// Package checkpoint persists the daemon's and the alert manager's live
// state so a restart can rehydrate without waiting for every client to
// report in again (spec.md §4.13, §4.12 "Checkpointing"). The original's
// flat `@@XYMONDCHK-V1|...` text file plus temp-write/atomic-rename is
// replaced by an embedded transactional store (nutsdb/), keeping the same
// one-entry-per-record shape the loader expects.
package checkpoint

import "time"

// StatusSnapshot is one StatusRecord's persisted fields, corresponding to
// a `@@XYMONDCHK-V1|...` status line in the original format.
type StatusSnapshot struct {
	Origin       string
	Host         string
	Test         string
	Sender       string
	Color        string
	TestFlags    string
	PriorColor   string
	LogTime      time.Time
	LastChange   time.Time
	ValidTime    time.Time
	EnableTime   time.Time
	AckTime      time.Time
	Cookie       string
	CookieExpiry time.Time
	Message      string
	DisableMsg   string
	AckMsg       string
	RedStart     time.Time
	YellowStart  time.Time
}

// AckSnapshot corresponds to a `.acklist.` line.
type AckSnapshot struct {
	Host       string
	Test       string
	ReceivedAt time.Time
	ValidUntil time.Time
	Level      int
	AckedBy    string
	Message    string
}

// TaskSnapshot corresponds to a `.task.` line (a scheduled drop/rename/
// disable command queued for a future time).
type TaskSnapshot struct {
	ID      string
	When    time.Time
	Sender  string
	Command string
}

// AlertSnapshot is one alertmgr alert-list entry, checkpointed per
// spec.md §4.12's "periodic save of the alert list".
type AlertSnapshot struct {
	Host          string
	Test          string
	Color         string
	MaxColor      string
	EventStart    time.Time
	NextAlertTime time.Time
	PageMessage   string
	AckMessage    string
	State         string
	Cookie        string
}

// Snapshot is the full checkpoint payload, one instance written/loaded at
// a time by the daemon, a structurally identical but separately-keyed one
// used by the alert manager for its own alert list (§4.12).
type Snapshot struct {
	Statuses []StatusSnapshot
	Acks     []AckSnapshot
	Tasks    []TaskSnapshot
	Alerts   []AlertSnapshot
}
