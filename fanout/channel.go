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

// Package fanout re-expresses the shared-memory-ring + semaphore-triplet
// channel bus of spec.md §4.7 as subjects on an embedded nats/.Server: one
// subject per channel, multicast delivery standing in for the
// busy/clientCount/goClient worker handoff, and a per-channel Sem guarding
// the synchronous post against a stuck subscriber.
package fanout

// Channel names the nine independent publication channels of spec.md
// §4.7. The same status update may be posted to several.
type Channel string

const (
	Status Channel = "status"
	Stachg Channel = "stachg"
	Page   Channel = "page"
	Data   Channel = "data"
	Notes  Channel = "notes"
	Enadis Channel = "enadis"
	Client Channel = "client"
	Clichg Channel = "clichg"
	User   Channel = "user"
)

// Channels lists every channel, for callers that need to attach to all of
// them (e.g. a checkpoint writer observing everything).
var Channels = []Channel{Status, Stachg, Page, Data, Notes, Enadis, Client, Clichg, User}

func (c Channel) subject() string {
	return "xymond." + string(c)
}
