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

	"github.com/nabbar/xymond/httpcli"
)

// webhookHook posts ev as JSON to a configured endpoint, an alternate
// send_alert transport alongside the mail hook (spec.md §4.12's hook is
// explicitly a plugin point, not a mandated SMTP requirement).
type webhookHook struct {
	req httpcli.Request
	uri string
}

// NewWebhookHook returns a Hook that POSTs ev as JSON to uri using req as
// the base request (already carrying auth/TLS/header configuration).
func NewWebhookHook(req httpcli.Request, uri string) Hook {
	return &webhookHook{req: req, uri: uri}
}

func (h *webhookHook) Send(ctx context.Context, ev Event) error {
	r := h.req.Clone()
	if e := r.Endpoint(h.uri); e != nil {
		return e
	}
	r.Method("POST")
	r.ContentType("application/json")
	if e := r.RequestJson(ev); e != nil {
		return e
	}

	if _, e := r.Do(ctx); e != nil {
		return e
	}
	return nil
}
