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

package sendalert

import (
	"context"
	"os/exec"
)

// execHook runs a configured external command for every alert, passing
// the event fields as environment variables — the closest Go-native
// equivalent of the original's forked `send_alert` script invocation
// (spec.md §4.12 step 4), without replicating the fork-and-exec scheduler
// itself (that's what the evaluator's own goroutine dispatch replaces).
type execHook struct {
	path string
	args []string
}

// NewExecHook returns a Hook that runs path with args, exposing ev's
// fields as XYMON_* environment variables.
func NewExecHook(path string, args ...string) Hook {
	return &execHook{path: path, args: args}
}

func (h *execHook) Send(ctx context.Context, ev Event) error {
	cmd := exec.CommandContext(ctx, h.path, h.args...)
	cmd.Env = append(cmd.Env,
		"XYMON_HOST="+ev.Host,
		"XYMON_TEST="+ev.Test,
		"XYMON_LOCATION="+ev.Location,
		"XYMON_IP="+ev.IP,
		"XYMON_COLOR="+ev.Color,
		"XYMON_MAXCOLOR="+ev.MaxColor,
		"XYMON_STATE="+ev.State,
		"XYMON_EVENTSTART="+ev.EventStart,
		"XYMON_PAGEMSG="+ev.PageMessage,
		"XYMON_ACKMSG="+ev.AckMessage,
	)
	return cmd.Run()
}
