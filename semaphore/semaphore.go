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

// Package semaphore wraps golang.org/x/sync/semaphore.Weighted behind the
// narrow worker-budget contract used to cap concurrent goroutines spawned
// from a periodic tick (aggregator's async callback) or a fan-out over a
// pool (httpserver's map-restart/map-shutdown).
package semaphore

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Semaphore bounds how many concurrent "workers" a periodic caller may
// launch; NewWorkerTry never blocks, so a caller on a ticker can skip a
// tick rather than stall when the budget is exhausted.
type Semaphore interface {
	// NewWorkerTry attempts to acquire one slot without blocking. It
	// returns false if the budget is currently exhausted.
	NewWorkerTry() bool

	// DeferWorker releases one slot acquired by NewWorkerTry or NewWorker.
	DeferWorker()

	// DeferMain releases the whole remaining budget; call once from the
	// owning goroutine's shutdown path.
	DeferMain()
}

// Sem extends Semaphore with a blocking acquire and a wait-for-all-workers
// barrier, used when a caller fans a task out over a known, finite set of
// workers and must wait for every one to finish.
type Sem interface {
	Semaphore

	// NewWorker blocks until a slot is available or ctx is done.
	NewWorker() error

	// WaitAll blocks until every acquired slot has been released.
	WaitAll() error
}

type sem struct {
	ctx    context.Context
	w      *semaphore.Weighted
	max    int64
	strict bool
}

// New returns a Semaphore bounding concurrency to max simultaneous workers.
// If max is zero or negative, the budget is effectively unbounded (every
// NewWorkerTry succeeds). strict is reserved for callers that want
// NewWorkerTry to also fail once ctx is done; most callers pass false.
func New(ctx context.Context, max int, strict bool) Semaphore {
	return newSem(ctx, max, strict)
}

// NewSemaphoreWithContext returns a Sem bounding concurrency to max
// simultaneous workers and able to block until ctx is done.
func NewSemaphoreWithContext(ctx context.Context, max int) Sem {
	return newSem(ctx, max, false)
}

func newSem(ctx context.Context, max int, strict bool) *sem {
	if ctx == nil {
		ctx = context.Background()
	}

	n := int64(max)
	if n <= 0 {
		n = 1 << 30
	}

	return &sem{
		ctx:    ctx,
		w:      semaphore.NewWeighted(n),
		max:    n,
		strict: strict,
	}
}

func (s *sem) NewWorkerTry() bool {
	if s.strict {
		select {
		case <-s.ctx.Done():
			return false
		default:
		}
	}
	return s.w.TryAcquire(1)
}

func (s *sem) NewWorker() error {
	return s.w.Acquire(s.ctx, 1)
}

func (s *sem) DeferWorker() {
	s.w.Release(1)
}

func (s *sem) DeferMain() {
	_ = s.w.Acquire(context.Background(), 0)
}

func (s *sem) WaitAll() error {
	if e := s.w.Acquire(s.ctx, s.max); e != nil {
		return e
	}
	s.w.Release(s.max)
	return nil
}
