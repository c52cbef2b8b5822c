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

import "github.com/nabbar/xymond/hoststatus"

// HostSnapshot is a read-only view of one host's live statuses, handed to
// the checkpoint writer (spec.md §4.13) without exposing the Daemon's
// internal maps directly.
type HostSnapshot struct {
	Host     string
	Statuses []*hoststatus.StatusRecord
}

// Snapshot returns a point-in-time view of every host's live statuses.
// The caller must not mutate the returned StatusRecords outside their own
// locking methods.
func (d *Daemon) Snapshot() []HostSnapshot {
	out := make([]HostSnapshot, 0, len(d.Hosts))
	for name, hr := range d.Hosts {
		hs := HostSnapshot{Host: name, Statuses: make([]*hoststatus.StatusRecord, 0, len(hr.Statuses))}
		for _, rec := range hr.Statuses {
			hs.Statuses = append(hs.Statuses, rec)
		}
		out = append(out, hs)
	}
	return out
}
