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

import (
	"strings"
	"time"
)

// ModifierKind selects how a Modifier participates in color combination
// (spec.md §4.3 step 4): Normal replaces, Down lower-bounds, Up raises.
type ModifierKind uint8

const (
	ModifierNormal ModifierKind = iota
	ModifierDown
	ModifierUp
)

// Modifier is one entry installed by a `modify` command (spec.md §4.4).
// HasCount/ValidCount is the `+N` message-count budget, decremented once
// per real status arrival (never when the handler runs in response to the
// modifier's own installation); HasUntil/ValidUntil is the `+Nv` wall-clock
// validity. Either, both, or neither budget may be set; if both are set,
// whichever expires first removes the modifier.
type Modifier struct {
	Source     string
	Cause      string
	Color      Color
	Kind       ModifierKind
	HasCount   bool
	ValidCount int
	HasUntil   bool
	ValidUntil time.Time
}

// applyModifiers walks rec's modifier list, then recombines color per
// spec.md §4.3 step 4: start from c, replace with the worst Normal color,
// lower-bound by the best Down color, raise by the worst Up color.
//
// A modifier that already arrived with no budget left (validCount <= 0 or
// validUntil passed) is dropped outright without participating. One whose
// budget runs out exactly on this arrival still participates in this
// round's combination — its count buys it one last evaluation — and is
// dropped only afterward, when decrementing leaves it with nothing left.
func applyModifiers(rec *StatusRecord, c Color, now time.Time, decrement bool) Color {
	active := make([]*Modifier, 0, len(rec.Modifiers))
	kept := rec.Modifiers[:0]
	causes := make([]string, 0, len(rec.Modifiers))

	for _, m := range rec.Modifiers {
		if m.HasCount && m.ValidCount <= 0 {
			continue
		}
		if m.HasUntil && m.ValidUntil.Before(now) {
			continue
		}

		active = append(active, m)
		if m.Cause != "" {
			causes = append(causes, m.Cause)
		}

		if decrement && m.HasCount {
			m.ValidCount--
		}
		if m.HasCount && m.ValidCount <= 0 {
			continue
		}
		if m.HasUntil && m.ValidUntil.Before(now) {
			continue
		}
		kept = append(kept, m)
	}
	rec.Modifiers = kept
	rec.ModifierCauseCache = strings.Join(causes, "\n")

	result := c
	worstNormal := ColorNone
	bestDown := ColorNone
	worstUp := ColorNone

	for _, m := range active {
		switch m.Kind {
		case ModifierNormal:
			if worstNormal == ColorNone || m.Color.Worse(worstNormal) {
				worstNormal = m.Color
			}
		case ModifierDown:
			if bestDown == ColorNone || m.Color.Severity() < bestDown.Severity() {
				bestDown = m.Color
			}
		case ModifierUp:
			if worstUp == ColorNone || m.Color.Worse(worstUp) {
				worstUp = m.Color
			}
		}
	}

	if worstNormal != ColorNone {
		result = worstNormal
	}
	if bestDown != ColorNone && result.Severity() < bestDown.Severity() {
		result = bestDown
	}
	if worstUp != ColorNone && worstUp.Worse(result) {
		result = worstUp
	}

	return result
}

// InstallModifier adds or replaces (by Source) a Modifier on rec, per the
// `modify` command grammar of spec.md §4.4.
func (r *StatusRecord) InstallModifier(m *Modifier) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.Modifiers {
		if existing.Source == m.Source {
			r.Modifiers[i] = m
			return
		}
	}
	r.Modifiers = append(r.Modifiers, m)
}
