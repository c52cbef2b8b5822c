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

// Package startStop provides the concrete runner.Runner implementation
// wrapping a pair of start/stop functions, used by every component that
// needs Start/Stop/Restart/IsRunning/Uptime without writing its own
// goroutine bookkeeping.
package startStop

import (
	"context"
	"sync"
	"time"

	"github.com/nabbar/xymond/runner"
)

// StartStop is the concrete lifecycle object New returns.
type StartStop interface {
	runner.Runner
}

type startFn func(ctx context.Context) error
type stopFn func(ctx context.Context) error

type startStop struct {
	mu      sync.Mutex
	start   startFn
	stop    stopFn
	running bool
	started time.Time
	cancel  context.CancelFunc
}

// New returns a StartStop bound to the given start/stop functions. start is
// invoked synchronously by Start (it is expected to launch its own
// background goroutine and return quickly); stop is invoked synchronously
// by Stop to tear down that goroutine.
func New(start func(ctx context.Context) error, stop func(ctx context.Context) error) StartStop {
	return &startStop{start: start, stop: stop}
}

func (s *startStop) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	var e error
	if s.start != nil {
		e = s.start(runCtx)
	}

	s.mu.Lock()
	if e == nil {
		s.running = true
		s.started = time.Now()
	} else {
		cancel()
	}
	s.mu.Unlock()

	return e
}

func (s *startStop) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	cancel := s.cancel
	s.mu.Unlock()

	var e error
	if s.stop != nil {
		e = s.stop(ctx)
	}

	if cancel != nil {
		cancel()
	}

	s.mu.Lock()
	s.running = false
	s.started = time.Time{}
	s.mu.Unlock()

	return e
}

func (s *startStop) Restart(ctx context.Context) error {
	if e := s.Stop(ctx); e != nil {
		return e
	}
	return s.Start(ctx)
}

func (s *startStop) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *startStop) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0
	}
	return time.Since(s.started)
}
