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

package boardhttp

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/nabbar/xymond/registry"
)

// syntheticTests are the three stateless per-host logs spec.md §4.6 says
// are injected during a board scan when host flags do not suppress them.
// This tree does not model the per-host suppression flags (clientlog/
// info/trends opt-out), so they are always present.
var syntheticTests = []string{"clientlog", "info", "trends"}

func fields(q map[string][]string) []string {
	if v, ok := q["fields"]; ok && len(v) > 0 && v[0] != "" {
		return strings.Split(v[0], ",")
	}
	return DefaultFields
}

// NewMux returns the board's http.Handler: xymondboard, xymondlog,
// ghostlist and senderstats, each matching the plain-text line format the
// protocol-level verbs of the same name already produce in router/
// (spec.md §4.6).
func NewMux(daemon *registry.Daemon) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/xymondboard", handleBoard(daemon))
	mux.HandleFunc("/xymondlog", handleLog(daemon))
	mux.HandleFunc("/hostinfo", handleHostInfo(daemon))
	mux.HandleFunc("/ghostlist", handleGhostlist(daemon))
	mux.HandleFunc("/senderstats", handleSenderstats(daemon))
	return mux
}

func handleBoard(daemon *registry.Daemon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := ParseFilters(q)
		fl := fields(q)

		var sb strings.Builder
		hosts := make([]string, 0, len(daemon.Hosts))
		for name := range daemon.Hosts {
			hosts = append(hosts, name)
		}
		sort.Strings(hosts)

		for _, name := range hosts {
			hr := daemon.Hosts[name]

			tests := make([]string, 0, len(hr.Statuses))
			for t := range hr.Statuses {
				tests = append(tests, t)
			}
			sort.Strings(tests)

			for _, t := range tests {
				rec := hr.Statuses[t]
				if !Match(f, hr, rec) {
					continue
				}
				sb.WriteString(FormatRecord(hr, rec, fl))
				sb.WriteByte('\n')
			}

			for _, t := range syntheticTests {
				if _, exists := hr.Statuses[t]; exists {
					continue
				}
				sb.WriteString(hr.Name)
				sb.WriteByte('|')
				sb.WriteString(t)
				sb.WriteString("|green\n")
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sb.String()))
	}
}

func handleLog(daemon *registry.Daemon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		addr := q.Get("entry")
		i := strings.LastIndexByte(addr, '.')
		if i < 0 {
			http.Error(w, "missing or malformed entry=host.test", http.StatusBadRequest)
			return
		}
		host, test := addr[:i], addr[i+1:]

		hr, ok := daemon.Hosts[host]
		if !ok {
			http.NotFound(w, r)
			return
		}
		rec, ok := hr.Statuses[test]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(FormatRecord(hr, rec, fields(q)) + "\n"))
	}
}

func handleHostInfo(daemon *registry.Daemon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host := r.URL.Query().Get("host")
		hr, ok := daemon.Hosts[host]
		if !ok {
			http.NotFound(w, r)
			return
		}

		var sb strings.Builder
		sb.WriteString("hostname|" + hr.Name + "\n")
		sb.WriteString("ip|" + hr.IP + "\n")
		sb.WriteString("dialup|" + strconv.FormatBool(hr.Dialup) + "\n")
		sb.WriteString("noclear|" + strconv.FormatBool(hr.NoClear) + "\n")
		sb.WriteString("noflap|" + strconv.FormatBool(hr.NoFlap) + "\n")
		sb.WriteString("multihomed|" + strconv.FormatBool(hr.MultiHomed) + "\n")
		sb.WriteString("pingcolor|" + hr.PingColor.String() + "\n")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sb.String()))
	}
}

func handleGhostlist(daemon *registry.Daemon) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
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
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sb.String()))
	}
}

func handleSenderstats(daemon *registry.Daemon) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var sb strings.Builder
		for sender, n := range daemon.SenderStats() {
			sb.WriteString(sender)
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte('\n')
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sb.String()))
	}
}
