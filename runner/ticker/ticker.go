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

// Package ticker provides a generic interval-driven runner.Runner: call fn
// every period until stopped. The purple sweeper, the daemon/alert-manager
// checkpoint writers, and the senderstats collector are all "do X every N
// seconds" loops and share this one implementation rather than each hand
// rolling a time.Ticker/select loop.
package ticker

import (
	"context"
	"time"

	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/startStop"
)

// Func is one tick's worth of work. A panic inside Func is recovered and
// logged by runner.RecoveryCaller; it does not stop the ticker.
type Func func(ctx context.Context)

// Ticker runs Func every period, starting one period after Start and
// stopping immediately (without waiting out the remainder of a tick) on
// Stop.
type Ticker interface {
	runner.Runner
}

type ticker struct {
	startStop.StartStop
}

// New returns a Ticker bound to label (used in panic-recovery logging),
// period, and fn. period must be positive; a non-positive period makes
// Start a no-op returning nil, matching the "disabled by configuration"
// convention used elsewhere in this tree (zero duration means off).
func New(label string, period time.Duration, fn Func) Ticker {
	t := &ticker{}

	var (
		loopCancel context.CancelFunc
		done       = make(chan struct{})
	)

	start := func(ctx context.Context) error {
		if period <= 0 {
			close(done)
			return nil
		}

		var runCtx context.Context
		runCtx, loopCancel = context.WithCancel(ctx)
		done = make(chan struct{})

		go t.loop(runCtx, label, period, fn, done)
		return nil
	}

	stop := func(_ context.Context) error {
		if loopCancel != nil {
			loopCancel()
		}
		<-done
		return nil
	}

	t.StartStop = startStop.New(start, stop)
	return t
}

func (t *ticker) loop(ctx context.Context, label string, period time.Duration, fn Func, done chan struct{}) {
	defer close(done)

	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.tick(label, fn, ctx)
		}
	}
}

func (t *ticker) tick(label string, fn Func, ctx context.Context) {
	defer func() {
		runner.RecoveryCaller(label, recover())
	}()
	fn(ctx)
}
