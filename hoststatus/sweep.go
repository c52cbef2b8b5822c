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

package hoststatus

import "time"

// SweepInput carries the per-host facts the purple sweeper (spec.md §4.3
// "Purple sweeper") needs to pick clear vs purple for one expired status.
type SweepInput struct {
	Now           time.Time
	IsSummary     bool
	PingNonGreen  bool
	NoClearFlag   bool
	Dialup        bool
	DowntimeCover bool
	DowntimeCause string
}

// SweepDecision reports what the sweeper should do with one expired
// StatusRecord.
type SweepDecision struct {
	Delete bool
	Color  Color
}

// Sweep decides the fate of one StatusRecord whose ValidTime has passed.
// Summaries write-expire (delete outright). Otherwise the new color is
// clear when the host's ping status is non-green and the host lacks the
// no-clear flag; else purple — except dialup hosts, which downgrade
// purple to clear. The caller still has to run the decided color back
// through Update (downtime applies first, per step 2) to finish the
// transition.
func Sweep(in SweepInput) SweepDecision {
	if in.IsSummary {
		return SweepDecision{Delete: true}
	}

	c := Purple
	if in.PingNonGreen && !in.NoClearFlag {
		c = Clear
	}
	if in.Dialup && c == Purple {
		c = Clear
	}

	return SweepDecision{Color: c}
}
