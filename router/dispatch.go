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

	"github.com/nabbar/xymond/errors"
	"github.com/nabbar/xymond/network/class"
)

const (
	ErrorUnknownVerb errors.CodeError = iota + errors.MinPkgRouter
	ErrorForbidden
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorUnknownVerb)
	errors.RegisterIdFctMessage(ErrorUnknownVerb, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorUnknownVerb:
		return "unrecognized verb"
	case ErrorForbidden:
		return "sender not authorized for this verb's class"
	}
	return ""
}

// statusVerbs, maintVerbs, adminVerbs, wwwVerbs, anyReplyVerbs and
// statusReplyVerbs enumerate spec.md §4.2's dispatch table, grouped by the
// authorization class and whether the verb replies.
var (
	statusVerbs = []string{"status", "combo", "extcombo", "combodata", "data", "summary", "modify"}
	maintVerbs  = []string{"enable", "disable", "ack", "xymondack", "ackinfo", "notes", "notify"}
	adminVerbs  = []string{"drop", "rename", "config", "schedule"}
	wwwVerbs    = []string{"xymondlog", "xymondxlog", "xymondboard", "xymondxboard", "hostinfo", "ghostlist", "senderstats", "clientlog", "query", "histsync"}
	anyVerbs    = []string{"ping", "proxyping", "dummy"}
	clientVerbs = []string{"client", "clientsubmit", "clientconfig"}
	silentVerbs = []string{"reload", "rotate", "flush"}
)

// NewTable builds the verb → Entry map per spec.md §4.2, filling each
// slot's Handler from handlers (a verb missing from handlers falls back
// to NotImplemented, so a partially-wired daemon still has a complete
// dispatch surface).
func NewTable(handlers map[string]Handler) Table {
	t := make(Table, 32)

	add := func(verbs []string, c class.Class, respond bool) {
		for _, v := range verbs {
			h, ok := handlers[v]
			if !ok {
				h = NotImplemented
			}
			t[v] = Entry{Class: c, Respond: respond, Handler: h}
		}
	}

	add(statusVerbs, class.Status, false)
	add(maintVerbs, class.Maint, false)
	add(adminVerbs, class.Admin, false)
	add(wwwVerbs, class.WWW, true)
	add(anyVerbs, class.Any, true)
	add(clientVerbs, class.Status, false)
	add(silentVerbs, class.Any, false)

	// client/clientconfig reply, clientsubmit does not (spec.md §4.2).
	for _, v := range []string{"client", "clientconfig"} {
		e := t[v]
		e.Respond = true
		t[v] = e
	}

	return t
}

// NotImplemented answers any verb with a registered slot but no handler
// wired in yet, rather than silently dropping it.
func NotImplemented(_ context.Context, _ Request) (Response, error) {
	return Response{Body: []byte("ERR not implemented\n")}, nil
}

// Dispatch authorizes req against allow per its verb's class, then runs
// the matching handler. An unknown verb or a disallowed sender returns an
// error without calling any handler.
func Dispatch(ctx context.Context, t Table, allow class.AllowList, req Request) (Response, error) {
	e, ok := t[req.Verb]
	if !ok {
		return Response{}, ErrorUnknownVerb.Error(nil)
	}
	if !allow.Allow(e.Class, req.PeerIP) {
		return Response{}, ErrorForbidden.Error(nil)
	}
	return e.Handler(ctx, req)
}
