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

// Package router implements the verb dispatch table of spec.md §4.2: one
// authorization class and handler per incoming verb, consulted by
// listener/ once a full message has been framed off the wire.
package router

import (
	"context"
	"time"

	"github.com/nabbar/xymond/network/class"
)

// Request is one decoded incoming message, enriched with the connection's
// peer identity.
type Request struct {
	Verb   string
	Addr   string
	Flags  string
	Body   []byte
	PeerIP string
	PeerCN string
	Now    time.Time
}

// Response is what a Handler hands back to the connection, for the verbs
// whose dispatch row requires one.
type Response struct {
	Body []byte
}

// Handler processes one Request already cleared by the authorization
// check.
type Handler func(ctx context.Context, req Request) (Response, error)

// Entry pairs a verb's authorization class, whether it replies, and the
// handler that serves it.
type Entry struct {
	Class   class.Class
	Respond bool
	Handler Handler
}

// Table is the verb → Entry dispatch map.
type Table map[string]Entry
