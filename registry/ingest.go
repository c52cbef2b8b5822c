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
	"errors"
	"time"

	"github.com/nabbar/xymond/hoststatus"
)

// ErrGhostDropped is returned by Ingest when step 1 of spec.md §4.3 drops
// the status because the host is unknown and ghost handling is `ignore`
// or `log`, or a `match` lookup failed.
var ErrGhostDropped = errors.New("registry: unknown host, dropped by ghost policy")

// AliasResolver looks up a short hostname against configured aliases,
// for the `match` ghost policy (spec.md §4.3 step 1).
type AliasResolver func(short string) (fqdn string, ok bool)

// Ingest resolves (host, test) per spec.md §4.3 step 1, creating records
// as the ghost policy allows, then runs the full status update pipeline
// (hoststatus.StatusRecord.Update, steps 2-10) and returns its result.
func (d *Daemon) Ingest(host, test string, in hoststatus.Input, pol hoststatus.Policy, flapCount int, resolveAlias AliasResolver) (*hoststatus.StatusRecord, hoststatus.Result, error) {
	hr, known := d.Hosts[host]
	if !known {
		switch d.Ghost {
		case GhostAllow:
			hr = NewHostRecord(host, in.Sender, HostNormal)
			d.Hosts[host] = hr
		case GhostMatch:
			if resolveAlias != nil {
				if fqdn, ok := resolveAlias(host); ok {
					if real, ok2 := d.Hosts[fqdn]; ok2 {
						hr = real
						host = fqdn
						break
					}
				}
			}
			d.Ghosts.Record(host, in.Sender, in.Now)
			return nil, hoststatus.Result{}, ErrGhostDropped
		case GhostLog:
			d.Ghosts.Record(host, in.Sender, in.Now)
			return nil, hoststatus.Result{}, ErrGhostDropped
		default: // GhostIgnore
			return nil, hoststatus.Result{}, ErrGhostDropped
		}
	}

	d.InternTest(test)
	rec, _ := hr.Status(test, flapCount)

	res := rec.Update(in, pol, d)

	if res.Color != hoststatus.ColorNone {
		if rec.AckCookie != "" {
			d.BindCookie(rec.AckCookie, rec)
		}
	}
	d.RecordSend(in.Sender)

	return rec, res, nil
}

// SweepOne runs the purple sweeper's decision (hoststatus.Sweep) against
// one expired StatusRecord and applies it: deletes write-expiring
// summaries, otherwise reruns the update pipeline with the decided color
// (spec.md §4.3 "Purple sweeper" — downtime still applies via step 2,
// handled by the caller's Policy).
func (d *Daemon) SweepOne(hr *HostRecord, rec *hoststatus.StatusRecord, now time.Time, noClearFlag bool, pol hoststatus.Policy, flapCount int) (deleted bool) {
	decision := hoststatus.Sweep(hoststatus.SweepInput{
		Now:          now,
		IsSummary:    hr.Kind == HostSummary,
		PingNonGreen: hr.PingColor != hoststatus.ColorNone && hr.PingColor != hoststatus.Green,
		NoClearFlag:  noClearFlag,
		Dialup:       hr.Dialup,
	})

	if decision.Delete {
		delete(hr.Statuses, rec.Test)
		return true
	}

	rec.Update(hoststatus.Input{Color: decision.Color, Now: now, Sender: rec.SenderIP, SenderCN: rec.SenderCN, Message: rec.Message}, pol, d)
	return false
}
