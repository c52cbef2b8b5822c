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

// DisableSentinel is the DURATION value meaning "until OK" (spec.md §4.10):
// validTime is effectively infinite until the status recovers to an OK
// color on its own.
const DisableSentinel = -1

// Disable installs a disable window on rec. DURATION in minutes, or
// DisableSentinel for "until OK". The next Update forces the color to
// blue (step 3) and attaches text as the disable message.
func (r *StatusRecord) Disable(now time.Time, durationMinutes int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.DisableMessage = text
	if durationMinutes == DisableSentinel {
		r.EnableUntilOK = true
		r.EnableTime = time.Time{}
		return
	}
	r.EnableUntilOK = false
	r.EnableTime = now.Add(time.Duration(durationMinutes) * time.Minute)
}

// Enable clears any disable window immediately (spec.md §4.10's `enable`).
func (r *StatusRecord) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EnableUntilOK = false
	r.EnableTime = time.Time{}
	r.DisableMessage = ""
}

// IsDisabled reports whether rec currently carries a disable window.
func (r *StatusRecord) IsDisabled(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.EnableUntilOK {
		return true
	}
	return !r.EnableTime.IsZero() && r.EnableTime.After(now)
}
