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
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nabbar/xymond/registry"
	"github.com/nabbar/xymond/version"
)

// NewPingHandler serves `ping`/`proxyping`/`dummy`: a bare liveness probe
// that always replies, optionally carrying build version information.
func NewPingHandler(v version.Version) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		if v == nil {
			return Response{Body: []byte("OK\n")}, nil
		}
		return Response{Body: []byte(fmt.Sprintf("OK %s\n", v.GetRelease()))}, nil
	}
}

// NewGhostlistHandler serves `ghostlist` (spec.md §4.6, supplemented from
// original_source/xymond.c): one "hostname sender firstseen lastseen"
// line per tracked ghost.
func NewGhostlistHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, _ Request) (Response, error) {
		var sb strings.Builder
		for _, g := range daemon.Ghosts.List() {
			sb.WriteString(g.Hostname)
			sb.WriteByte(' ')
			sb.WriteString(g.Sender)
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatInt(g.FirstSeen.Unix(), 10))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatInt(g.LastSeen.Unix(), 10))
			sb.WriteByte('\n')
		}
		return Response{Body: []byte(sb.String())}, nil
	}
}

// NewSenderstatsHandler serves `senderstats`: one "sender count" line per
// distinct sender address observed.
func NewSenderstatsHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, _ Request) (Response, error) {
		var sb strings.Builder
		for sender, n := range daemon.SenderStats() {
			sb.WriteString(sender)
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte('\n')
		}
		return Response{Body: []byte(sb.String())}, nil
	}
}
