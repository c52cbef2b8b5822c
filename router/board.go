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
	"net/url"
	"sort"
	"strings"

	"github.com/nabbar/xymond/boardhttp"
	"github.com/nabbar/xymond/registry"
)

// argsToValues turns an xymondboard/xymondlog argument line ("key=value"
// tokens separated by blanks, spec.md §4.6) into the url.Values shape
// boardhttp.ParseFilters expects, so the wire-protocol verbs and the
// read-only HTTP board surface share one filter/field implementation.
func argsToValues(body []byte) url.Values {
	v := url.Values{}
	for _, tok := range strings.Fields(string(body)) {
		i := strings.IndexByte(tok, '=')
		if i < 0 {
			continue
		}
		v.Set(tok[:i], tok[i+1:])
	}
	return v
}

// NewBoardHandler serves `xymondboard`/`xymondxboard` (spec.md §4.6): a
// board-wide scan of every status record matching the request's filters,
// one `|`-separated line per record.
func NewBoardHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		q := argsToValues(req.Body)
		f := boardhttp.ParseFilters(q)
		flds := boardhttp.DefaultFields
		if v := q.Get("fields"); v != "" {
			flds = strings.Split(v, ",")
		}

		var sb strings.Builder
		names := make([]string, 0, len(daemon.Hosts))
		for name := range daemon.Hosts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			hr := daemon.Hosts[name]
			tests := make([]string, 0, len(hr.Statuses))
			for t := range hr.Statuses {
				tests = append(tests, t)
			}
			sort.Strings(tests)

			for _, t := range tests {
				rec := hr.Statuses[t]
				if !boardhttp.Match(f, hr, rec) {
					continue
				}
				sb.WriteString(boardhttp.FormatRecord(hr, rec, flds))
				sb.WriteByte('\n')
			}
		}

		return Response{Body: []byte(sb.String())}, nil
	}
}

// NewLogHandler serves `xymondlog`/`xymondxlog`: one record for the named
// host.test.
func NewLogHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		i := strings.LastIndexByte(req.Addr, '.')
		if i < 0 {
			return Response{Body: []byte("ERR malformed address\n")}, nil
		}
		host, test := req.Addr[:i], req.Addr[i+1:]

		hr, ok := daemon.Hosts[host]
		if !ok {
			return Response{Body: []byte("ERR unknown host\n")}, nil
		}
		rec, ok := hr.Statuses[test]
		if !ok {
			return Response{Body: []byte("ERR unknown test\n")}, nil
		}

		q := argsToValues(req.Body)
		flds := boardhttp.DefaultFields
		if v := q.Get("fields"); v != "" {
			flds = strings.Split(v, ",")
		}

		return Response{Body: []byte(boardhttp.FormatRecord(hr, rec, flds) + "\n")}, nil
	}
}

// NewHostInfoHandler serves `hostinfo`.
func NewHostInfoHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		hr, ok := daemon.Hosts[req.Addr]
		if !ok {
			return Response{Body: []byte("ERR unknown host\n")}, nil
		}

		var sb strings.Builder
		sb.WriteString("hostname|" + hr.Name + "\n")
		sb.WriteString("ip|" + hr.IP + "\n")
		return Response{Body: []byte(sb.String())}, nil
	}
}
