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
	"fmt"
	"io"
	"strings"

	"github.com/go-hermes/hermes/v2"

	"github.com/nabbar/xymond/mail"
	"github.com/nabbar/xymond/mail/render"
	libsmtp "github.com/nabbar/xymond/mail/smtp"
)

// MailConfig binds the static parts of an outgoing alert email: the
// sender/recipient envelope and the product branding hermes stamps on
// every rendered message.
type MailConfig struct {
	From        string
	To          []string
	ProductName string
	ProductLink string
}

type mailHook struct {
	cli libsmtp.SMTP
	cfg MailConfig
}

// NewMailHook returns a Hook that renders ev as an HTML+text email via
// hermes and submits it over cli (spec.md §4.12's one concrete send_alert
// implementation).
func NewMailHook(cli libsmtp.SMTP, cfg MailConfig) Hook {
	return &mailHook{cli: cli, cfg: cfg}
}

func (h *mailHook) Send(ctx context.Context, ev Event) error {
	m := mail.New()
	m.SetSubject(subject(ev))
	m.Email().SetFrom(h.cfg.From)
	m.Email().AddRecipients(mail.RecipientTo, h.cfg.To...)

	rdr := render.New()
	rdr.SetName(h.cfg.ProductName)
	rdr.SetLink(h.cfg.ProductLink)
	rdr.SetBody(&hermes.Body{
		Title: subject(ev),
		Intros: []string{
			fmt.Sprintf("%s on %s is %s.", ev.Test, ev.Host, ev.Color),
		},
		Dictionary: []hermes.Entry{
			{Key: "Host", Value: ev.Host},
			{Key: "Test", Value: ev.Test},
			{Key: "Address", Value: ev.IP},
			{Key: "Color", Value: ev.Color},
			{Key: "State", Value: ev.State},
			{Key: "Since", Value: ev.EventStart},
		},
		Outros: []string{ev.PageMessage},
	})

	html, e := rdr.GenerateHTML()
	if e != nil {
		return e
	}
	text, e := rdr.GeneratePlainText()
	if e != nil {
		return e
	}

	m.SetBody(mail.ContentHTML, io.NopCloser(html))
	m.AddBody(mail.ContentPlainText, io.NopCloser(text))

	snd, e := m.Sender()
	if e != nil {
		return e
	}

	return snd.SendClose(ctx, h.cli)
}

func subject(ev Event) string {
	return strings.ToUpper(ev.Color) + ": " + ev.Host + "." + ev.Test
}
