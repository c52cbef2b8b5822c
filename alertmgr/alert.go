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

// Package alertmgr consumes the fan-out bus's page channel into an
// in-memory list of active alerts and dispatches them through configured
// send_alert hooks (spec.md §4.12).
package alertmgr

import (
	"time"

	"github.com/nabbar/xymond/hoststatus"
)

// State is one of the six alert lifecycle states of spec.md §4.12.
type State uint8

const (
	Paging State = iota
	NoRecip
	Acked
	Recovered
	Notify
	Dead
)

var stateNames = map[State]string{
	Paging:    "paging",
	NoRecip:   "norecip",
	Acked:     "acked",
	Recovered: "recovered",
	Notify:    "notify",
	Dead:      "dead",
}

func (s State) String() string { return stateNames[s] }

// Alert is the per (host, test) entity the evaluator tracks while a page
// is outstanding, keyed the same way a StatusRecord is.
type Alert struct {
	Host     string
	Test     string
	Location string
	IP       string

	Color    hoststatus.Color
	MaxColor hoststatus.Color

	PageMessage string
	AckMessage  string

	EventStart    time.Time
	NextAlertTime time.Time

	State State
	Cookie string

	AckList []string

	recipients int
}

func key(host, test string) string { return host + "." + test }

// newAlert starts a fresh Paging alert for a page-channel arrival.
func newAlert(host, test, location, ip string, c hoststatus.Color, msg string, now time.Time) *Alert {
	return &Alert{
		Host:          host,
		Test:          test,
		Location:      location,
		IP:            ip,
		Color:         c,
		MaxColor:      c,
		PageMessage:   msg,
		EventStart:    now,
		NextAlertTime: now,
		State:         Paging,
	}
}

// touch folds a later page-channel arrival for the same (host, test) into
// the live alert: the color and message track the latest report, MaxColor
// only ever worsens, and a Recovered/Acked alert re-pages on a fresh
// non-OK color.
func (a *Alert) touch(c hoststatus.Color, msg string, now time.Time, okColors hoststatus.ColorSet) {
	a.Color = c
	a.PageMessage = msg
	if c.Worse(a.MaxColor) {
		a.MaxColor = c
	}

	if okColors.Has(c) {
		if a.State != Dead {
			a.State = Recovered
		}
		return
	}

	switch a.State {
	case Recovered, NoRecip, Dead:
		a.State = Paging
		a.NextAlertTime = now
		a.EventStart = now
	}
}

// ack transitions a Paging or NoRecip alert to Acked, pinning
// NextAlertTime to the ack's expiry (spec.md §4.12 "Ack events").
func (a *Alert) ack(by, msg string, until time.Time) {
	a.State = Acked
	a.NextAlertTime = until
	a.AckMessage = msg
	a.AckList = append(a.AckList, by)
}

// expire un-acks an Acked alert whose ack window has passed, putting it
// back in the paging rotation immediately.
func (a *Alert) expireAck(now time.Time) {
	if a.State == Acked && !a.NextAlertTime.After(now) {
		a.State = Paging
		a.NextAlertTime = now
	}
}

// drop marks an alert Dead following a drop/rename event (spec.md §4.12
// "Drop/rename events transition all affected alerts to Dead").
func (a *Alert) drop() { a.State = Dead }
