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

// Package boardhttp implements the read-only JSON/text board surface of
// spec.md §4.6 — xymondboard/xymondlog style queries — as a plain
// net/http.Handler over a registry.Daemon, the same read-only query engine
// the protocol-level router verbs never had to serve over HTTP.
package boardhttp

import (
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/nabbar/xymond/hoststatus"
	"github.com/nabbar/xymond/registry"
)

// DefaultFields is the field list used when a query omits fields=.
var DefaultFields = []string{"hostname", "testname", "color", "lastchange", "line1"}

// Filter is one compound board-scan predicate (spec.md §4.6's "filters
// compose into a list"). Zero-value fields are wildcards.
type Filter struct {
	HostPattern string
	TestPattern string
	Colors      hoststatus.ColorSet
	Text        string

	LastChangeOp  string // "<", ">", "="
	LastChangeAt  time.Time
	HasLastChange bool

	Down    string
	NotDown string
}

// ParseFilters builds a Filter from an xymondboard-style query string.
// host/test accept shell-glob patterns; color is a comma-separated color
// list; lastchange accepts a leading '<' or '>' followed by a unix
// timestamp (bare digits default to '>'); msg is a case-insensitive
// substring match against the record's message/line1.
//
// net=, ip=, page=, tag= and acklevel= are accepted but not modeled by
// this tree's HostRecord (no host-info/tag/ack-level data is tracked) and
// are silently ignored rather than rejected, since spec.md §4.6 does not
// mandate every filter clause be implemented by every consumer.
func ParseFilters(q url.Values) Filter {
	f := Filter{
		HostPattern: q.Get("host"),
		TestPattern: q.Get("test"),
		Text:        q.Get("msg"),
		Down:        q.Get("down"),
		NotDown:     q.Get("notdown"),
	}

	if c := q.Get("color"); c != "" {
		set := make(hoststatus.ColorSet)
		for _, name := range strings.Split(c, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			set[hoststatus.ParseColor(name)] = struct{}{}
		}
		f.Colors = set
	}

	if lc := q.Get("lastchange"); lc != "" {
		op := ">"
		val := lc
		switch lc[0] {
		case '<', '>':
			op = string(lc[0])
			val = lc[1:]
		}
		if sec, err := strconv.ParseInt(val, 10, 64); err == nil {
			f.LastChangeOp = op
			f.LastChangeAt = time.Unix(sec, 0)
			f.HasLastChange = true
		}
	}

	return f
}

// Match reports whether rec (belonging to host hr) satisfies f.
func Match(f Filter, hr *registry.HostRecord, rec *hoststatus.StatusRecord) bool {
	if f.HostPattern != "" {
		if ok, _ := path.Match(f.HostPattern, hr.Name); !ok {
			return false
		}
	}
	if f.TestPattern != "" {
		if ok, _ := path.Match(f.TestPattern, rec.Test); !ok {
			return false
		}
	}
	if len(f.Colors) > 0 && !f.Colors.Has(rec.Color) {
		return false
	}
	if f.Text != "" {
		hay := strings.ToLower(rec.Line1 + "\n" + string(rec.Message))
		if !strings.Contains(hay, strings.ToLower(f.Text)) {
			return false
		}
	}
	if f.HasLastChange && len(rec.LastChange) > 0 {
		lc := rec.LastChange[0]
		switch f.LastChangeOp {
		case "<":
			if !lc.Before(f.LastChangeAt) {
				return false
			}
		default:
			if !lc.After(f.LastChangeAt) {
				return false
			}
		}
	}
	if f.Down != "" || f.NotDown != "" {
		if !matchDownState(f, hr) {
			return false
		}
	}
	return true
}

// matchDownState implements down=/notdown=: the named test(s) on the host
// must be (not) red for the host to stay in the result set.
func matchDownState(f Filter, hr *registry.HostRecord) bool {
	anyRed := func(pattern string) bool {
		for _, s := range hr.Statuses {
			if ok, _ := path.Match(pattern, s.Test); ok && s.Color == hoststatus.Red {
				return true
			}
		}
		return false
	}
	if f.Down != "" && !anyRed(f.Down) {
		return false
	}
	if f.NotDown != "" && anyRed(f.NotDown) {
		return false
	}
	return true
}

// FormatRecord renders rec as a '|'-separated, newline-terminated board
// line over fields, newline-encoding the message-bearing fields per
// spec.md §4.6 ("literal LF -> \n").
func FormatRecord(hr *registry.HostRecord, rec *hoststatus.StatusRecord, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, fieldValue(hr, rec, name))
	}
	return strings.Join(parts, "|")
}

func fieldValue(hr *registry.HostRecord, rec *hoststatus.StatusRecord, name string) string {
	switch strings.ToLower(name) {
	case "hostname":
		return hr.Name
	case "testname":
		return rec.Test
	case "color":
		return rec.Color.String()
	case "flags":
		return rec.TestFlags
	case "lastchange":
		if len(rec.LastChange) == 0 {
			return "0"
		}
		return strconv.FormatInt(rec.LastChange[0].Unix(), 10)
	case "logtime":
		return strconv.FormatInt(rec.LogTime.Unix(), 10)
	case "validtime":
		return strconv.FormatInt(rec.ValidTime.Unix(), 10)
	case "acktime":
		return strconv.FormatInt(rec.AckTime.Unix(), 10)
	case "disabletime":
		return strconv.FormatInt(rec.EnableTime.Unix(), 10)
	case "sender":
		return rec.SenderIP
	case "cookie":
		return rec.AckCookie
	case "line1":
		return rec.Line1
	case "ackmsg":
		return encodeNewlines(ackMessage(rec))
	case "dismsg":
		return encodeNewlines(rec.DisableMessage)
	case "msg":
		return encodeNewlines(string(rec.Message))
	case "client":
		return hr.IP
	case "acklist":
		return encodeNewlines(ackList(rec))
	case "modifiers":
		return strconv.Itoa(len(rec.Modifiers))
	case "matchedtag":
		return ""
	default:
		if strings.HasPrefix(name, "XMH_") {
			return hostInfoField(hr, name)
		}
		return ""
	}
}

func ackMessage(rec *hoststatus.StatusRecord) string {
	if len(rec.Acks) == 0 {
		return ""
	}
	return rec.Acks[len(rec.Acks)-1].Message
}

func ackList(rec *hoststatus.StatusRecord) string {
	out := make([]string, 0, len(rec.Acks))
	for _, a := range rec.Acks {
		out = append(out, a.AckedBy+": "+a.Message)
	}
	return strings.Join(out, "\n")
}

func hostInfoField(hr *registry.HostRecord, name string) string {
	switch name {
	case "XMH_IP":
		return hr.IP
	default:
		return ""
	}
}

func encodeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
