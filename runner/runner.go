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

// Package runner defines the minimal lifecycle contract (Start/Stop/Restart/
// IsRunning/Uptime) shared by every long-running component in this module,
// plus RecoveryCaller, the panic-recovery logger every background goroutine
// defers to. It intentionally has no dependency on the logger stack to stay
// a leaf package importable from anywhere, including the logger hooks.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"
)

// Runner is the lifecycle surface exposed by every server/driver/worker
// that can be started, stopped, and queried for liveness.
type Runner interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
	IsRunning() bool
	Uptime() time.Duration
}

// RecoveryCaller logs a recovered panic value along with the calling
// component's label and any extra context, without re-panicking. Call it
// from a deferred recover() in every goroutine that must not crash the
// process.
func RecoveryCaller(caller string, recovered interface{}, extra ...string) {
	if recovered == nil {
		return
	}

	msg := fmt.Sprintf("[%s] recovered panic: %v", caller, recovered)
	for _, e := range extra {
		msg += " | " + e
	}

	_, _ = fmt.Fprintln(os.Stderr, msg)
	_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
}
