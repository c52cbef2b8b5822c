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

// Package sendalert implements spec.md §4.12's "send_alert" hook as a
// pluggable interface, the same dispatch-in-a-forked-child contract
// re-expressed as a Go interface called from a goroutine instead of a
// child process.
package sendalert

import "context"

// Event is the one-way payload a Hook renders and submits; it carries
// exactly the fields the original passed on a forked child's argv/env.
type Event struct {
	Host     string
	Test     string
	Location string
	IP       string

	Color    string
	MaxColor string

	PageMessage string
	AckMessage  string

	State string

	EventStart    string
	RecoveredTime string
}

// Hook delivers one Event to a recipient. A Hook implementation must be
// safe for concurrent use; the evaluator dispatches every recipient's
// hook from its own goroutine.
type Hook interface {
	Send(ctx context.Context, ev Event) error
}

// HookFunc adapts a plain function to a Hook, for simple stubs and tests.
type HookFunc func(ctx context.Context, ev Event) error

func (f HookFunc) Send(ctx context.Context, ev Event) error { return f(ctx, ev) }
