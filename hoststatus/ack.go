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

package hoststatus

import "time"

// AckClearDelay is the grace period used to schedule clearing of acks that
// survive a recovery (spec.md §4.3 step 7, §4.9).
const AckClearDelay = 30 * time.Minute

// Ack is one entry in a status' acklist (spec.md §3, §4.9). ClearTime is
// set to ValidUntil on acknowledgement and shortened to now+AckClearDelay
// once the status recovers, so lingering acks self-clean.
type Ack struct {
	ReceivedTime time.Time
	ValidUntil   time.Time
	ClearTime    time.Time
	Level        int
	AckedBy      string
	Message      string
}

// AckAllYearSeconds is the "negative VALIDSECS means one year" sentinel
// duration used by ackinfo (spec.md §4.9).
const AckAllYearSeconds = 365 * 24 * 3600

// Acknowledge resolves `xymondack`/legacy `ack`: it sets ackTime, extends
// validTime to at least ackTime, records the ack message, and returns the
// page-channel "ack" event.
func (r *StatusRecord) Acknowledge(now time.Time, durationMinutes int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.AckTime = now.Add(time.Duration(durationMinutes) * time.Minute)
	if r.ValidTime.Before(r.AckTime) {
		r.ValidTime = r.AckTime
	}
	r.AckMessage = text
}

// AckInfo appends or replaces (by AckedBy) an Ack entry in rec's acklist
// (spec.md §4.9's `ackinfo`). A negative validSeconds means one year.
func (r *StatusRecord) AckInfo(now time.Time, level int, validSeconds int, ackedBy, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if validSeconds < 0 {
		validSeconds = AckAllYearSeconds
	}
	until := now.Add(time.Duration(validSeconds) * time.Second)

	a := &Ack{
		ReceivedTime: now,
		ValidUntil:   until,
		ClearTime:    until,
		Level:        level,
		AckedBy:      ackedBy,
		Message:      msg,
	}

	for i, existing := range r.Acks {
		if existing.AckedBy == ackedBy {
			r.Acks[i] = a
			return
		}
	}
	r.Acks = append(r.Acks, a)
}

// pruneAcks drops acks whose ClearTime has passed.
func pruneAcks(acks []*Ack, now time.Time) []*Ack {
	live := acks[:0]
	for _, a := range acks {
		if a.ClearTime.After(now) {
			live = append(live, a)
		}
	}
	return live
}

// scheduleAckClear implements spec.md §4.3 step 7's OK-transition half: all
// active acks are scheduled to clear AckClearDelay from now, unless the
// status is in downtime.
func scheduleAckClear(acks []*Ack, now time.Time, downtime bool) {
	if downtime {
		return
	}
	clear := now.Add(AckClearDelay)
	for _, a := range acks {
		a.ClearTime = clear
	}
}

// reviveAcks implements step 7's non-OK-transition half: acks are revived
// by resetting ClearTime back to ValidUntil.
func reviveAcks(acks []*Ack) {
	for _, a := range acks {
		a.ClearTime = a.ValidUntil
	}
}
