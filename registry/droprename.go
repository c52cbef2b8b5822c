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

// DropHost frees every status for host and the host record itself
// (spec.md §4.5 `drophost`).
func (d *Daemon) DropHost(host string) {
	delete(d.Hosts, host)
}

// DropTest frees one status (spec.md §4.5 `droptest`).
func (d *Daemon) DropTest(host, test string) {
	if hr, ok := d.Hosts[host]; ok {
		delete(hr.Statuses, test)
	}
}

// DropState frees every status for host but preserves the host record and
// its client buffers (spec.md §4.5 `dropstate`).
func (d *Daemon) DropState(host string) {
	if hr, ok := d.Hosts[host]; ok {
		hr.Statuses = make(map[string]*hoststatus.StatusRecord)
	}
}

// RenameHost renames a host in place, preserving its statuses and client
// buffers (spec.md §4.5 `renamehost`).
func (d *Daemon) RenameHost(oldName, newName string) bool {
	hr, ok := d.Hosts[oldName]
	if !ok {
		return false
	}
	hr.Name = newName
	delete(d.Hosts, oldName)
	d.Hosts[newName] = hr
	return true
}

// RenameTest renames a single status' test key on its host in place
// (spec.md §4.5 `renametest`).
func (d *Daemon) RenameTest(host, oldTest, newTest string) bool {
	hr, ok := d.Hosts[host]
	if !ok {
		return false
	}
	rec, ok := hr.Statuses[oldTest]
	if !ok {
		return false
	}
	delete(hr.Statuses, oldTest)
	rec.Test = newTest
	hr.Statuses[newTest] = rec
	return true
}
