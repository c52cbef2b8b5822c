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

package prometheus

import (
	"bytes"
	"context"
	"fmt"
	"time"

	libfan "github.com/nabbar/xymond/fanout"
	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/ticker"
)

// Report renders every currently registered metric as one line per
// label combination, in the vein of spec.md §7's synthetic stats
// message: message counts per verb, per-channel client/message counters,
// timeout counters per state, ghost/multi-source reports, and the
// running error-kind buffer are all just metrics on the same registry,
// so gathering it is the whole report.
func (c *Collector) Report() ([]byte, error) {
	mfs, err := c.reg.Gather()
	if err != nil {
		return nil, ErrorRegister.Error(err)
	}

	var buf bytes.Buffer
	for _, mf := range mfs {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			var val float64
			switch {
			case m.Counter != nil:
				val = m.Counter.GetValue()
			case m.Gauge != nil:
				val = m.Gauge.GetValue()
			}

			buf.WriteString(name)
			for _, lp := range m.GetLabel() {
				fmt.Fprintf(&buf, " %s=%s", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(&buf, " %.0f\n", val)
		}
	}
	return buf.Bytes(), nil
}

// NewReporter returns a runner.Runner that posts Report's output to the
// daemon's own status channel every interval, the synthetic "status
// message every statsInterval seconds from the daemon itself" of
// spec.md §7.
func NewReporter(c *Collector, bus libfan.Bus, interval time.Duration) runner.Runner {
	return ticker.New("stats-reporter", interval, func(_ context.Context) {
		body, err := c.Report()
		if err != nil {
			return
		}
		_ = bus.Post(libfan.Status, append([]byte("status xymond.stats green stats\n"), body...))
	})
}
