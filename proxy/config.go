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

// Package proxy re-expresses spec.md §4.11's fan-in proxy: a standalone
// listener that combines short-lived status connections into one batched
// upstream message and otherwise forwards verbatim, retrying both the
// connect and the send against an ordered list of upstreams.
package proxy

import (
	"time"

	"github.com/nabbar/xymond/backfeed"
	sckcfg "github.com/nabbar/xymond/socket/config"
	"github.com/nabbar/xymond/version"
)

const (
	// DefaultCombineWindow is the time a combiner waits for more status
	// messages to merge before flushing (spec.md §4.11's "≈ 250 ms").
	DefaultCombineWindow = 250 * time.Millisecond

	// DefaultCombineMax bounds a combined buffer ("≈ 256 KiB − 1 KiB").
	DefaultCombineMax = 256*1024 - 1024

	// DefaultConnectAttempts is the number of dial attempts per upstream
	// before moving to the next one.
	DefaultConnectAttempts = 5

	// DefaultConnectBackoff spaces consecutive dial attempts.
	DefaultConnectBackoff = 12 * time.Second

	// DefaultSendRetries is the number of send attempts on one already
	// connected upstream socket before giving up on it.
	DefaultSendRetries = 4
)

// Config binds a proxy's listening address, its ordered upstream list, the
// combining parameters, and an optional back-feed queue that status/data/
// one-way verbs are handed to instead of a TCP post when configured.
type Config struct {
	Listen   sckcfg.Server
	Upstream []sckcfg.Client

	CombineWindow time.Duration
	CombineMax    int

	ConnectAttempts int
	ConnectBackoff  time.Duration
	SendRetries     int

	Backfeed backfeed.Queue
	Version  version.Version
}

func (c Config) withDefaults() Config {
	if c.CombineWindow <= 0 {
		c.CombineWindow = DefaultCombineWindow
	}
	if c.CombineMax <= 0 {
		c.CombineMax = DefaultCombineMax
	}
	if c.ConnectAttempts <= 0 {
		c.ConnectAttempts = DefaultConnectAttempts
	}
	if c.ConnectBackoff <= 0 {
		c.ConnectBackoff = DefaultConnectBackoff
	}
	if c.SendRetries <= 0 {
		c.SendRetries = DefaultSendRetries
	}
	return c
}

// oneWayVerbs are the verbs that never expect a reply proxied back to the
// client (spec.md §4.2's status/maint/admin classes, plus the silent
// verbs); every other verb is request-response and waits for the last
// upstream's answer.
var oneWayVerbs = map[string]bool{
	"status": true, "combo": true, "extcombo": true, "combodata": true,
	"data": true, "summary": true, "modify": true,
	"enable": true, "disable": true, "ack": true, "xymondack": true,
	"ackinfo": true, "notes": true, "notify": true,
	"drop": true, "rename": true,
	"clientsubmit": true,
	"reload": true, "rotate": true, "flush": true,
}

func isOneWay(verb string) bool {
	return oneWayVerbs[verb]
}

// backfeedEligible are the verbs spec.md §4.11 "Forwarding" names as
// candidates for the back-feed queue instead of a TCP post, when one is
// configured: status, data, and the other one-way verbs.
func backfeedEligible(verb string) bool {
	return isOneWay(verb)
}
