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

// Package monitor is the generic health-check publication wrapper used by
// httpserver, mail/smtp, mail/queuer and mailPooler to expose a uniform
// monitor.types.Monitor from whatever probe each component defines. It is
// orthogonal to this repository's domain availability model (status/,
// registry/): this package answers "is my own transport alive", the domain
// model answers "is the monitored host/test alive".
package monitor

import (
	"context"
	"sync"
	"time"

	moninf "github.com/nabbar/xymond/monitor/info"
	montps "github.com/nabbar/xymond/monitor/types"
)

type mon struct {
	mu      sync.Mutex
	inf     moninf.Info
	check   func(ctx context.Context) error
	cfg     montps.Config
	cancel  context.CancelFunc
	lastErr error
}

// New returns a Monitor bound to the given Info. ctx is retained only to
// validate it is non-nil at construction time; Start receives its own
// context for the background refresh loop.
func New(ctx context.Context, inf moninf.Info) (montps.Monitor, error) {
	if ctx == nil {
		return nil, context.Canceled
	}
	return &mon{inf: inf}, nil
}

func (m *mon) Name() string {
	n, e := m.inf.Name()
	if e != nil {
		return ""
	}
	return n
}

func (m *mon) SetHealthCheck(fct func(ctx context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.check = fct
}

func (m *mon) SetConfig(_ context.Context, cfg montps.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	return nil
}

func (m *mon) Start(ctx context.Context) error {
	m.mu.Lock()
	interval := m.cfg.CheckInterval
	m.mu.Unlock()

	if interval <= 0 {
		interval = 30 * time.Second
	}

	runCtx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	go m.loop(runCtx, interval)

	return nil
}

func (m *mon) loop(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Check(ctx)
		}
	}
}

func (m *mon) Check(ctx context.Context) error {
	m.mu.Lock()
	fn := m.check
	m.mu.Unlock()

	if fn == nil {
		return nil
	}

	err := fn(ctx)

	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()

	return err
}
