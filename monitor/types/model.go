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

package types

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type pool struct {
	mu      sync.RWMutex
	mon     map[string]Monitor
	running bool
	started time.Time
}

// NewPool returns the default in-process Pool implementation.
func NewPool() Pool {
	return &pool{mon: make(map[string]Monitor)}
}

func (p *pool) Start(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = true
	p.started = time.Now()
	return nil
}

func (p *pool) Stop(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = false
	return nil
}

func (p *pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

func (p *pool) Uptime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running {
		return 0
	}
	return time.Since(p.started)
}

func (p *pool) MonitorAdd(m Monitor) error {
	if m == nil {
		return fmt.Errorf("nil monitor")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.mon[m.Name()]; ok {
		return fmt.Errorf("monitor %q already registered", m.Name())
	}

	p.mon[m.Name()] = m
	return nil
}

func (p *pool) MonitorSet(m Monitor) error {
	if m == nil {
		return fmt.Errorf("nil monitor")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.mon[m.Name()] = m
	return nil
}

func (p *pool) MonitorGet(name string) Monitor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mon[name]
}

func (p *pool) MonitorList() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, 0, len(p.mon))
	for k := range p.mon {
		out = append(out, k)
	}
	return out
}
