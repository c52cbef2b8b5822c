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

import (
	"sync"
	"time"
)

// Channel names one of the fan-out bus channels a status update may be
// posted to (spec.md §4.7).
type Channel uint8

const (
	ChannelStatus Channel = iota
	ChannelStatusChange
	ChannelPage
	ChannelClientChange
)

// StatusRecord is the central per (host, test) entity of spec.md §3. A
// StatusRecord is created on first status arrival for (host, test) and
// lives for the run's duration except on an explicit drop/rename; Dead
// marks it garbage for later sweep rather than freeing it immediately.
type StatusRecord struct {
	mu sync.Mutex

	Host   string
	Test   string
	Origin string

	Color          Color
	PriorColor     Color
	ActiveAlert    bool
	HistSynced     bool
	DowntimeActive bool
	Flapping       bool
	FlapColor      Color

	TestFlags string
	Groups    string

	SenderIP string
	SenderCN string

	// LastChange is a ring buffer of the most recent transition
	// wall-clocks; index 0 is the most recent. Its capacity is the
	// configured flap-count (minimum 1).
	LastChange []time.Time

	LogTime   time.Time
	ValidTime time.Time

	EnableUntilOK bool
	EnableTime    time.Time

	AckTime time.Time

	RedStart    time.Time
	YellowStart time.Time

	MaxAckedColor Color

	Message []byte
	Line1   string

	DisableMessage string

	AckCookie       string
	AckCookieExpiry time.Time

	Modifiers          []*Modifier
	ModifierCauseCache string

	Acks []*Ack

	StatusChangeCount int
	Dead              bool
}

// NewStatusRecord creates a StatusRecord for a first arrival, sizing the
// lastChange ring to flapCount (minimum 1).
func NewStatusRecord(host, test string, flapCount int) *StatusRecord {
	if flapCount < 1 {
		flapCount = 1
	}
	return &StatusRecord{
		Host:       host,
		Test:       test,
		LastChange: make([]time.Time, 0, flapCount),
	}
}

func (r *StatusRecord) pushChange(now time.Time, cap int) {
	if cap < 1 {
		cap = 1
	}
	r.LastChange = append([]time.Time{now}, r.LastChange...)
	if len(r.LastChange) > cap {
		r.LastChange = r.LastChange[:cap]
	}
}

// Policy bundles the per-host/per-test configuration the state machine
// needs: the alert/OK color sets, flap damping parameters, delayed-color
// durations, and ack/cookie behavior. Callers (the registry) resolve this
// once per update from host configuration.
type Policy struct {
	AlertColors ColorSet
	OKColors    ColorSet

	FlapCount     int
	FlapThreshold time.Duration
	NoFlap        bool

	DelayRed    time.Duration
	DelayYellow time.Duration

	AckEachColor   bool
	CookieLifetime time.Duration

	// DowntimeCovers reports whether a configured downtime window covers
	// `now` for this (host, test); CauseText is the configured disable
	// message to attach if so (spec.md §4.3 step 2).
	DowntimeCovers bool
	DowntimeCause  string

	// MultiHomed and InternalWriter/NullIP feed step 9's multi-sender
	// detection; the registry resolves these from host configuration and
	// the sender address.
	MultiHomed     bool
	InternalWriter bool
	NullIP         bool
}

// Input is one incoming status arrival.
type Input struct {
	Color    Color
	Message  []byte
	Sender   string
	SenderCN string
	Now      time.Time
}

// CookieAllocator mints a fresh cookie unique across all live status
// records (spec.md §4.3 step 8, §3 invariants); the registry owns the
// live-cookie table and implements this.
type CookieAllocator interface {
	NewCookie() string
}

// Result reports what the pipeline decided: the resolved color, whether it
// changed, and which channels to post to (spec.md §4.3 step 10).
type Result struct {
	Color      Color
	Changed    bool
	Channels   []Channel
	MultiSrc   bool
	EnabledNow bool
}

func (res *Result) post(ch Channel) {
	res.Channels = append(res.Channels, ch)
}

// Update runs steps 2 through 10 of spec.md §4.3 against rec. Step 1
// (ghost handling) happens upstream in the registry, which only calls
// Update once (host, test) is known or ghost-learned.
func (r *StatusRecord) Update(in Input, pol Policy, alloc CookieAllocator) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := in.Now
	c := in.Color
	wasOK := pol.OKColors.Has(r.Color) || r.Color == ColorNone
	wasAlerting := r.ActiveAlert

	// Step 2: downtime check.
	if pol.DowntimeCovers {
		c = Blue
		r.DowntimeActive = true
		r.DisableMessage = pol.DowntimeCause
	} else {
		r.DowntimeActive = false
	}

	// Step 3: disable check.
	enabledNow := false
	if r.EnableUntilOK {
		if pol.OKColors.Has(c) {
			r.EnableUntilOK = false
			r.EnableTime = time.Time{}
			enabledNow = true
		} else {
			c = Blue
		}
	} else if !r.EnableTime.IsZero() {
		if r.EnableTime.After(now) {
			c = Blue
		} else {
			r.EnableTime = time.Time{}
			enabledNow = true
		}
	}

	// Step 4: modifier evaluation.
	c = applyModifiers(r, c, now, true)

	// Step 5: flap check.
	if !pol.NoFlap && pol.FlapCount > 0 && r.transitionsInWindow(now, pol.FlapThreshold) >= pol.FlapCount {
		r.Flapping = true
		if r.Color.Worse(c) {
			c = r.Color
		}
	} else {
		r.Flapping = false
	}

	// Step 6: delayed color.
	c = r.applyDelay(c, now, pol)

	changed := c != r.Color
	if changed {
		r.pushChange(now, maxInt(pol.FlapCount, 1))
	}

	// Step 7: ack lifecycle.
	nowOK := pol.OKColors.Has(c)
	if nowOK && !wasOK {
		scheduleAckClear(r.Acks, now, r.DowntimeActive)
	} else if !nowOK && wasOK {
		reviveAcks(r.Acks)
	}
	if pol.AckEachColor && c.Worse(r.MaxAckedColor) {
		r.Acks = nil
	}
	r.Acks = pruneAcks(r.Acks, now)

	// Step 8: cookie.
	alerting := pol.AlertColors.Has(c)
	if alerting && (r.AckCookie == "" || r.AckCookieExpiry.Before(now)) {
		r.AckCookie = alloc.NewCookie()
		r.AckCookieExpiry = now.Add(pol.CookieLifetime)
	} else if !alerting {
		r.AckCookie = ""
		r.AckCookieExpiry = time.Time{}
	}

	// Step 9: multi-sender detection.
	multiSrc := false
	if r.SenderIP != "" && r.SenderIP != in.Sender && !pol.MultiHomed && !pol.InternalWriter && !pol.NullIP {
		multiSrc = true
	}

	r.PriorColor = r.Color
	r.Color = c
	r.SenderIP = in.Sender
	r.SenderCN = in.SenderCN
	r.Message = in.Message
	r.Line1 = firstLine(in.Message)
	r.LogTime = now
	r.ActiveAlert = alerting
	if c.Worse(r.MaxAckedColor) {
		r.MaxAckedColor = c
	}
	r.StatusChangeCount++

	res := Result{Color: c, Changed: changed, MultiSrc: multiSrc, EnabledNow: enabledNow}

	// Step 10: emit.
	res.post(ChannelStatus)
	if changed || !r.HistSynced {
		res.post(ChannelStatusChange)
		r.HistSynced = true
	}
	recovered := wasAlerting && !alerting
	enteringAlert := !wasAlerting && alerting
	sameAlertSeverityChange := wasAlerting && alerting && changed
	modifiersChanged := r.ModifierCauseCache != "" && changed
	if enteringAlert || sameAlertSeverityChange || recovered || modifiersChanged {
		res.post(ChannelPage)
	}

	return res
}

func (r *StatusRecord) transitionsInWindow(now time.Time, window time.Duration) int {
	n := 0
	for _, t := range r.LastChange {
		if now.Sub(t) <= window {
			n++
		} else {
			break
		}
	}
	return n
}

// applyDelay implements spec.md §4.3 step 6 and the delayed-color
// tie-breaks: a red→yellow transition leaves redStart clear but keeps
// yellowStart; a yellow→red promotion sets redStart but leaves
// yellowStart untouched. A prior Purple color always bypasses delays.
func (r *StatusRecord) applyDelay(c Color, now time.Time, pol Policy) Color {
	if r.Color == Purple {
		return c
	}

	switch c {
	case Red:
		if r.RedStart.IsZero() {
			r.RedStart = now
		}
		if pol.DelayRed > 0 && now.Sub(r.RedStart) < pol.DelayRed {
			return r.Color
		}
	case Yellow:
		if r.YellowStart.IsZero() {
			r.YellowStart = now
		}
		r.RedStart = time.Time{}
		if pol.DelayYellow > 0 && now.Sub(r.YellowStart) < pol.DelayYellow {
			return r.Color
		}
	default:
		r.RedStart = time.Time{}
		r.YellowStart = time.Time{}
	}

	return c
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func firstLine(b []byte) string {
	for i, c := range b {
		if c == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
