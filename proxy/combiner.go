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

package proxy

import (
	"bytes"
	"sync"
	"time"
)

// Combiner batches the bodies of several status messages arriving close
// together into one combo-framed buffer (spec.md §4.11 "Combining"). Add
// is safe for concurrent use by the per-connection goroutines handing it
// their message bodies.
type Combiner struct {
	window  time.Duration
	maxSize int
	flush   func(buf []byte, count int)

	mu    sync.Mutex
	buf   []byte
	count int
	timer *time.Timer
}

// NewCombiner returns a Combiner that calls flush once its window elapses
// or its buffer approaches maxSize, whichever comes first. flush runs in
// its own goroutine so the caller adding the message that trips the flush
// never blocks on the upstream send.
func NewCombiner(window time.Duration, maxSize int, flush func(buf []byte, count int)) *Combiner {
	return &Combiner{window: window, maxSize: maxSize, flush: flush}
}

// Add appends body to the current batch, starting a new one (and its
// deadline timer) if none is pending. A body that would push the batch
// past maxSize flushes the pending batch first and starts a fresh one.
func (c *Combiner) Add(body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := bytes.TrimRight(body, "\n")

	if c.count == 0 {
		c.buf = append([]byte("combo\n"), b...)
		c.count = 1
		c.timer = time.AfterFunc(c.window, c.flushLocked)
		return
	}

	if len(c.buf)+2+len(b) > c.maxSize {
		c.flushNow()
		c.buf = append([]byte("combo\n"), b...)
		c.count = 1
		c.timer = time.AfterFunc(c.window, c.flushLocked)
		return
	}

	c.buf = append(c.buf, '\n', '\n')
	c.buf = append(c.buf, b...)
	c.count++
}

// Flush forces out whatever batch is pending, ignoring the window. Used
// by the proxy's shutdown path so an in-flight combine isn't lost.
func (c *Combiner) Flush() {
	c.flushLocked()
}

func (c *Combiner) flushLocked() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushNow()
}

// flushNow hands the pending batch to flush and resets the combiner. A
// singleton batch is unwrapped back to its bare body, stripping the
// synthetic "combo\n" prefix that made the threshold accounting uniform.
func (c *Combiner) flushNow() {
	if c.count == 0 {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}

	buf := c.buf
	count := c.count
	if count == 1 {
		buf = bytes.TrimPrefix(buf, []byte("combo\n"))
	}
	buf = append(buf, '\n')

	c.buf = nil
	c.count = 0

	go c.flush(buf, count)
}
