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

package router

import (
	"github.com/nabbar/xymond/fanout"
	"github.com/nabbar/xymond/hoststatus"
)

// fanoutChannel maps one of hoststatus.Update's four result channels onto
// the nine-subject fan-out bus of spec.md §4.7.
func fanoutChannel(c hoststatus.Channel) (fanout.Channel, bool) {
	switch c {
	case hoststatus.ChannelStatus:
		return fanout.Status, true
	case hoststatus.ChannelStatusChange:
		return fanout.Stachg, true
	case hoststatus.ChannelPage:
		return fanout.Page, true
	case hoststatus.ChannelClientChange:
		return fanout.Clichg, true
	default:
		return "", false
	}
}

// postResult posts body to every fan-out channel res.Channels names,
// swallowing individual publish failures (a stalled subscriber must not
// block the event loop, per spec.md §4.7's busy-barrier contract).
func postResult(bus fanout.Bus, res hoststatus.Result, body []byte) {
	if bus == nil {
		return
	}
	for _, c := range res.Channels {
		if fc, ok := fanoutChannel(c); ok {
			_ = bus.Post(fc, body)
		}
	}
}
