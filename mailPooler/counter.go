/*
 *  MIT License
 *
 *  Copyright (c) 2021 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package mailPooler

import (
	"context"
	"sync"
	"time"

	liberr "github.com/nabbar/xymond/errors"
)

// Counter enforces a max-sends-per-window rate limit in front of an SMTP
// client, running FuncCaller (typically a Reset/reconnect hook) once the
// window rolls over after being fully drained.
type Counter interface {
	Pool(ctx context.Context) liberr.Error
	Reset() liberr.Error
	Clone() Counter
}

type counter struct {
	m   sync.Mutex
	num int

	max int
	dur time.Duration
	tim time.Time

	fct FuncCaller
}

func newCounter(max int, dur time.Duration, fct FuncCaller) Counter {
	return &counter{
		num: max,
		max: max,
		dur: dur,
		fct: fct,
	}
}

func (c *counter) Pool(ctx context.Context) liberr.Error {
	c.m.Lock()
	defer c.m.Unlock()

	if c.max <= 0 || c.dur <= 0 {
		return nil
	}

	if e := ctx.Err(); e != nil {
		return ErrorContextCancel.Error(e)
	}

	if c.tim.IsZero() {
		c.num = c.max
	} else if time.Since(c.tim) > c.dur {
		c.num = c.max
		c.tim = time.Time{}
	}

	if c.num > 0 {
		c.num--
		c.tim = time.Now()
		return nil
	}

	time.Sleep(c.dur - time.Since(c.tim))

	c.num = c.max - 1
	c.tim = time.Now()

	if e := ctx.Err(); e != nil {
		return ErrorContextCancel.Error(e)
	} else if c.fct != nil {
		if err := c.fct(); err != nil {
			return ErrorParamEmpty.Error(err)
		}
	}

	return nil
}

func (c *counter) Reset() liberr.Error {
	c.m.Lock()
	defer c.m.Unlock()

	if c.max <= 0 || c.dur <= 0 {
		return nil
	}

	c.num = c.max
	c.tim = time.Time{}

	if c.fct != nil {
		if err := c.fct(); err != nil {
			return ErrorParamEmpty.Error(err)
		}
	}

	return nil
}

func (c *counter) Clone() Counter {
	c.m.Lock()
	defer c.m.Unlock()

	return &counter{
		num: c.num,
		max: c.max,
		dur: c.dur,
		fct: c.fct,
	}
}
