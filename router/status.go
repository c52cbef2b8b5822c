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

package router

import (
	"bytes"
	"context"
	"strings"

	"github.com/nabbar/xymond/fanout"
	"github.com/nabbar/xymond/hoststatus"
	"github.com/nabbar/xymond/registry"
	"github.com/nabbar/xymond/wire"
)

// PolicyProvider resolves the hoststatus.Policy and flap-window size to
// apply for one (host, test) pair, letting the caller source it from
// configuration (per-host/per-test overrides, spec.md §6).
type PolicyProvider func(host, test string) (hoststatus.Policy, int)

// StatusDeps bundles what the status-class handler needs beyond the
// request itself.
type StatusDeps struct {
	Daemon   *registry.Daemon
	Policy   PolicyProvider
	Bus      fanout.Bus
	Resolver registry.AliasResolver
}

// NewStatusHandler serves status, combo, extcombo, combodata, data,
// summary and modify (spec.md §4.2's "status" class). combo/extcombo/
// combodata unpack into independent sub-messages, each run through the
// same ingest pipeline and individually posted to the fan-out bus.
func NewStatusHandler(deps StatusDeps) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		switch req.Verb {
		case "combo", "combodata":
			for _, sub := range wire.SplitCombo(req.Body) {
				ingestOne(deps, sub, req)
			}
		case "extcombo":
			subs, err := wire.SplitExtCombo(req.Body)
			if err != nil {
				return Response{}, err
			}
			for _, sub := range subs {
				ingestOne(deps, sub, req)
			}
		default:
			ingestOne(deps, req.Body, req)
		}
		return Response{}, nil
	}
}

// ingestOne runs one "<verb> host.test [color] [message...]" line (plus
// body) through registry.Daemon.Ingest and posts the result.
func ingestOne(deps StatusDeps, buf []byte, req Request) {
	line := buf
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		line = buf[:i]
	}
	fields := strings.Fields(string(line))
	if len(fields) < 2 {
		return
	}

	addr := wire.CommaToDot(fields[1])
	host, test, ok := splitAddr(addr)
	if !ok {
		return
	}

	color := hoststatus.ColorNone
	if fields[0] == "status" && len(fields) > 2 {
		color = hoststatus.ParseColor(fields[2])
	}

	pol, flapCount := deps.Policy(host, test)

	rec, res, err := deps.Daemon.Ingest(host, test, hoststatus.Input{
		Color:    color,
		Message:  buf,
		Sender:   req.PeerIP,
		SenderCN: req.PeerCN,
		Now:      req.Now,
	}, pol, flapCount, deps.Resolver)
	if err != nil || rec == nil {
		return
	}

	postResult(deps.Bus, res, buf)
}

// splitAddr splits a "host.test" wire address on its last dot, since
// hostnames themselves may legitimately contain dots.
func splitAddr(addr string) (host, test string, ok bool) {
	i := strings.LastIndexByte(addr, '.')
	if i < 0 {
		return "", "", false
	}
	return addr[:i], addr[i+1:], true
}
