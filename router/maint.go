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
	"strconv"
	"strings"

	"github.com/nabbar/xymond/registry"
)

// NewAckHandler serves `ack`/`xymondack` (spec.md §4.9): `xymondack COOKIE
// DURATION TEXT`, a leading `-` before the cookie acks every currently
// alerting test for the cookie's host.
func NewAckHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		fields := strings.Fields(string(req.Body))
		if len(fields) < 3 {
			return Response{}, nil
		}

		cookie := fields[1]
		allHost := strings.HasPrefix(cookie, "-")
		cookie = strings.TrimPrefix(cookie, "-")

		duration, err := strconv.Atoi(fields[2])
		if err != nil {
			return Response{}, nil
		}
		text := ""
		if len(fields) > 3 {
			text = strings.Join(fields[3:], " ")
		}

		rec, ok := daemon.ResolveCookie(cookie)
		if !ok {
			return Response{}, nil
		}

		rec.Acknowledge(req.Now, duration, text)

		if allHost {
			if hr, ok := daemon.Hosts[rec.Host]; ok {
				for _, other := range hr.Statuses {
					if other != rec {
						other.Acknowledge(req.Now, duration, text)
					}
				}
			}
		}

		return Response{}, nil
	}
}

// NewAckInfoHandler serves `ackinfo host.test LEVEL VALIDSECS ACKEDBY
// MSG` (spec.md §4.9): appends or replaces an Ack entry by ACKEDBY.
func NewAckInfoHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		fields := strings.Fields(string(req.Body))
		if len(fields) < 5 {
			return Response{}, nil
		}

		host, test, ok := splitAddr(fields[1])
		if !ok {
			return Response{}, nil
		}
		level, err1 := strconv.Atoi(fields[2])
		valid, err2 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil {
			return Response{}, nil
		}
		ackedBy := fields[4]
		msg := ""
		if len(fields) > 5 {
			msg = strings.Join(fields[5:], " ")
		}

		hr, ok := daemon.Hosts[host]
		if !ok {
			return Response{}, nil
		}
		rec, ok := hr.Statuses[test]
		if !ok {
			return Response{}, nil
		}

		rec.AckInfo(req.Now, level, valid, ackedBy, msg)
		return Response{}, nil
	}
}

// NewEnadisHandler serves `disable host.test DURATION TEXT` and `enable
// host.test` (spec.md §4.10). A wildcard test `*` applies to every test
// on the host.
func NewEnadisHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		fields := strings.Fields(string(req.Body))
		if len(fields) < 2 {
			return Response{}, nil
		}

		host, test, ok := splitAddr(fields[1])
		if !ok {
			return Response{}, nil
		}
		hr, ok := daemon.Hosts[host]
		if !ok {
			return Response{}, nil
		}

		switch req.Verb {
		case "disable":
			if len(fields) < 3 {
				return Response{}, nil
			}
			duration, err := strconv.Atoi(fields[2])
			if err != nil {
				return Response{}, nil
			}
			text := ""
			if len(fields) > 3 {
				text = strings.Join(fields[3:], " ")
			}
			if test == "*" {
				for _, rec := range hr.Statuses {
					rec.Disable(req.Now, duration, text)
				}
			} else if rec, ok := hr.Statuses[test]; ok {
				rec.Disable(req.Now, duration, text)
			}
		case "enable":
			if test == "*" {
				for _, rec := range hr.Statuses {
					rec.Enable()
				}
			} else if rec, ok := hr.Statuses[test]; ok {
				rec.Enable()
			}
		}

		return Response{}, nil
	}
}
