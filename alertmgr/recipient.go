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

package alertmgr

import (
	"path"
	"time"

	"github.com/nabbar/xymond/alertmgr/sendalert"
	"github.com/nabbar/xymond/hoststatus"
)

// RecipientRule is one configured "who gets paged for what" entry,
// resolved against a page-channel arrival (spec.md §4.12 step 1, "evaluate
// whether any recipient rule matches"). HostPattern/TestPattern are
// shell-glob patterns (empty matches everything); an empty Colors set
// also matches everything.
type RecipientRule struct {
	HostPattern string
	TestPattern string
	Colors      hoststatus.ColorSet

	Hook           sendalert.Hook
	RepeatInterval time.Duration
}

func (r RecipientRule) matches(host, test string, c hoststatus.Color) bool {
	if len(r.Colors) > 0 && !r.Colors.Has(c) {
		return false
	}
	if r.HostPattern != "" {
		if ok, _ := path.Match(r.HostPattern, host); !ok {
			return false
		}
	}
	if r.TestPattern != "" {
		if ok, _ := path.Match(r.TestPattern, test); !ok {
			return false
		}
	}
	return true
}

// matchRules returns every rule in rules matching (host, test, color), in
// order.
func matchRules(rules []RecipientRule, host, test string, c hoststatus.Color) []RecipientRule {
	var out []RecipientRule
	for _, r := range rules {
		if r.matches(host, test, c) {
			out = append(out, r)
		}
	}
	return out
}
