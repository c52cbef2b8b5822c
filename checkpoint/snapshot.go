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
	"github.com/nabbar/xymond/hoststatus"
)

// FromStatusRecord converts a live StatusRecord into its persisted
// snapshot (the `@@XYMONDCHK-V1|...` status line fields).
func FromStatusRecord(rec *hoststatus.StatusRecord) StatusSnapshot {
	lastChange := rec.LastChange

	snap := StatusSnapshot{
		Origin:       rec.Origin,
		Host:         rec.Host,
		Test:         rec.Test,
		Sender:       rec.SenderIP,
		Color:        rec.Color.String(),
		TestFlags:    rec.TestFlags,
		PriorColor:   rec.PriorColor.String(),
		LogTime:      rec.LogTime,
		ValidTime:    rec.ValidTime,
		EnableTime:   rec.EnableTime,
		AckTime:      rec.AckTime,
		Cookie:       rec.AckCookie,
		CookieExpiry: rec.AckCookieExpiry,
		Message:      string(rec.Message),
		DisableMsg:   rec.DisableMessage,
		RedStart:     rec.RedStart,
		YellowStart:  rec.YellowStart,
	}
	if len(lastChange) > 0 {
		snap.LastChange = lastChange[0]
	}
	return snap
}

// FromAck converts one live Ack entry into its snapshot.
func FromAck(host, test string, ack *hoststatus.Ack) AckSnapshot {
	return AckSnapshot{
		Host:       host,
		Test:       test,
		ReceivedAt: ack.ReceivedTime,
		ValidUntil: ack.ValidUntil,
		Level:      ack.Level,
		AckedBy:    ack.AckedBy,
		Message:    ack.Message,
	}
}
