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

package checkpoint

import (
	"context"
	"time"

	"github.com/nabbar/xymond/registry"
	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/ticker"
)

// Source is the minimum surface the writer needs from a running daemon: a
// snapshot of every live host/status, taken under the daemon's own lock.
type Source interface {
	Snapshot() []registry.HostSnapshot
}

// NewWriter returns a runner.Runner that saves a full checkpoint to store
// every period, mirroring spec.md §4.13's periodic daemon checkpoint (the
// fork-per-checkpoint in the original becomes a plain ticker here, since
// the embedded store does its own write isolation).
func NewWriter(store *Store, src Source, period time.Duration) runner.Runner {
	return ticker.New("checkpoint-writer", period, func(_ context.Context) {
		for _, hs := range src.Snapshot() {
			for _, rec := range hs.Statuses {
				_ = store.SaveStatus(FromStatusRecord(rec))
				for _, a := range rec.Acks {
					_ = store.SaveAck(FromAck(rec.Host, rec.Test, a))
				}
			}
		}
	})
}
