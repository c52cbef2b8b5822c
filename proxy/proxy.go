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

package proxy

import (
	"bufio"
	"context"
	"net"
	"sync"

	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/startStop"
	"github.com/nabbar/xymond/wire"
)

// Proxy is the standalone fan-in listener of spec.md §4.11.
type Proxy interface {
	runner.Runner

	// Addr returns the bound local address, or nil if not yet started.
	Addr() net.Addr
}

type proxy struct {
	startStop.StartStop

	cfg      Config
	combiner *Combiner

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// New returns a Proxy bound to cfg, with every zero-valued tuning
// parameter filled from its documented default.
func New(cfg Config) Proxy {
	cfg = cfg.withDefaults()

	p := &proxy{cfg: cfg}
	p.combiner = NewCombiner(cfg.CombineWindow, cfg.CombineMax, p.forwardCombined)
	p.StartStop = startStop.New(p.start, p.stop)
	return p
}

func (p *proxy) Addr() net.Addr {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ln == nil {
		return nil
	}
	return p.ln.Addr()
}

func (p *proxy) network() string {
	if n := p.cfg.Listen.Network.Code(); n != "" {
		return n
	}
	return "tcp"
}

func (p *proxy) start(ctx context.Context) error {
	ln, e := net.Listen(p.network(), p.cfg.Listen.Address)
	if e != nil {
		return ErrorBindFailed.Error(e)
	}

	p.mu.Lock()
	p.ln = ln
	p.mu.Unlock()

	p.wg.Add(1)
	go p.acceptLoop(ctx, ln)
	return nil
}

func (p *proxy) stop(_ context.Context) error {
	p.mu.Lock()
	ln := p.ln
	p.ln = nil
	p.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	p.wg.Wait()
	p.combiner.Flush()
	return nil
}

func (p *proxy) acceptLoop(ctx context.Context, ln net.Listener) {
	defer p.wg.Done()

	for {
		con, e := ln.Accept()
		if e != nil {
			return
		}

		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer func() {
				runner.RecoveryCaller("proxy.handle", recover())
			}()
			p.handle(ctx, con)
		}()
	}
}

// handle runs one accepted connection through spec.md §4.11's Reading →
// Ready stage and then branches: `proxyping` is answered directly,
// `status` is merged into the combiner (one-way, so the connection
// closes immediately after), and every other verb forwards (possibly via
// the back-feed queue) to the configured upstreams.
func (p *proxy) handle(ctx context.Context, con net.Conn) {
	defer func() { _ = con.Close() }()

	r := bufio.NewReader(con)
	buf, e := wire.ReadFrame(r, wire.DefaultCeiling)
	if e != nil || len(buf) == 0 {
		return
	}

	msg, e := wire.Parse(buf)
	if e != nil {
		return
	}

	switch msg.Verb {
	case "proxyping":
		p.replyPing(con)
		return
	case "status":
		p.combiner.Add(buf)
		return
	}

	p.forwardDirect(ctx, msg.Verb, buf, con)
}

func (p *proxy) replyPing(con net.Conn) {
	if p.cfg.Version == nil {
		_, _ = con.Write([]byte("OK\n"))
		return
	}
	_, _ = con.Write([]byte("OK " + p.cfg.Version.GetRelease() + " proxy\n"))
}

// forwardDirect handles every verb that skips combining (spec.md §4.11
// "Forwarding"): a backfeed-eligible verb is handed to the queue when one
// is configured, a one-way verb is sent and forgotten, and a
// request-response verb's upstream reply is proxied back verbatim.
func (p *proxy) forwardDirect(ctx context.Context, verb string, buf []byte, client net.Conn) {
	if p.cfg.Backfeed != nil && backfeedEligible(verb) {
		_ = p.cfg.Backfeed.Send(0, buf)
		return
	}

	cli, e := dialUpstream(ctx, p.cfg.Upstream, p.cfg.ConnectAttempts, p.cfg.ConnectBackoff)
	if e != nil {
		return
	}
	defer func() { _ = cli.Close() }()

	if e = sendWithRetry(cli, frameSize(buf), p.cfg.SendRetries); e != nil {
		return
	}

	if isOneWay(verb) {
		return
	}

	if reply := readReply(cli); len(reply) > 0 {
		_, _ = client.Write(reply)
	}
}

// forwardCombined is the Combiner's flush callback: it sends the merged
// batch upstream (or to the back-feed queue) exactly like a direct
// one-way forward, since a combined batch of status messages never
// expects a reply.
func (p *proxy) forwardCombined(buf []byte, _ int) {
	if p.cfg.Backfeed != nil {
		_ = p.cfg.Backfeed.Send(0, buf)
		return
	}

	cli, e := dialUpstream(context.Background(), p.cfg.Upstream, p.cfg.ConnectAttempts, p.cfg.ConnectBackoff)
	if e != nil {
		return
	}
	defer func() { _ = cli.Close() }()

	_ = sendWithRetry(cli, frameSize(buf), p.cfg.SendRetries)
}
