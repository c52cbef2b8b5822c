/*
 *  MIT License
 *
 *  Copyright (c) 2021 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package mailPooler wraps a mail/smtp.SMTP client with a max-sends-per-window
// rate limiter, so the alert manager's mail hook can fan a burst of pages out
// to one SMTP relay without tripping its connection-rate limits.
package mailPooler

import (
	"context"
	"crypto/tls"
	"io"
	"net/smtp"

	liberr "github.com/nabbar/xymond/errors"
	libsmtp "github.com/nabbar/xymond/mail/smtp"
	smtpcf "github.com/nabbar/xymond/mail/smtp/config"
	montps "github.com/nabbar/xymond/monitor/types"
	libver "github.com/nabbar/xymond/version"
)

// Pooler is a libsmtp.SMTP decorator that paces Send calls through a Counter.
type Pooler interface {
	Reset() liberr.Error
	NewPooler() Pooler

	libsmtp.SMTP
}

type pooler struct {
	s libsmtp.SMTP
	c Counter
}

// New wraps cli (nil allowed; UpdConfig can supply one later) in a Pooler
// enforcing cfg.Max sends per cfg.Wait window.
func New(cfg *Config, cli libsmtp.SMTP) Pooler {
	p := &pooler{
		c: newCounter(cfg.Max, cfg.Wait, cfg._fct),
	}

	if cli != nil {
		p.s = cli.Clone()
	}

	return p
}

func (p *pooler) Reset() liberr.Error {
	if p.s == nil {
		return ErrorParamEmpty.Error()
	}

	return p.c.Reset()
}

func (p *pooler) NewPooler() Pooler {
	n := &pooler{c: p.c.Clone()}

	if p.s != nil {
		n.s = p.s.Clone()
	}

	return n
}

func (p *pooler) Send(ctx context.Context, from string, to []string, data io.WriterTo) error {
	if p.s == nil {
		return ErrorParamEmpty.Error()
	}

	if err := p.c.Pool(ctx); err != nil {
		return err
	}

	return p.s.Send(ctx, from, to, data)
}

func (p *pooler) Client(ctx context.Context) (*smtp.Client, error) {
	if p.s == nil {
		return nil, ErrorParamEmpty.Error()
	}

	return p.s.Client(ctx)
}

func (p *pooler) Close() {
	if p.s != nil {
		p.s.Close()
	}
}

func (p *pooler) Check(ctx context.Context) error {
	if p.s == nil {
		return ErrorParamEmpty.Error()
	}

	return p.s.Check(ctx)
}

func (p *pooler) Clone() libsmtp.SMTP {
	return p.NewPooler()
}

func (p *pooler) UpdConfig(cfg smtpcf.SMTP, tlsConfig *tls.Config) {
	if p.s != nil {
		p.s.UpdConfig(cfg, tlsConfig)
		return
	}

	p.s, _ = libsmtp.New(cfg, tlsConfig)
}

func (p *pooler) Monitor(ctx context.Context, vrs libver.Version) (montps.Monitor, error) {
	if p.s == nil {
		return nil, ErrorParamEmpty.Error()
	}

	return p.s.Monitor(ctx, vrs)
}
