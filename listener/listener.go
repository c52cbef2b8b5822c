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

// Package listener accepts connections per a socket/config.Server bind
// declaration and runs each one through the per-connection state machine
// (see conn.go): opportunistic STARTTLS upgrade, framing via wire.ReadFrame,
// verb dispatch via router.Dispatch, and an optional reply.
package listener

import (
	"context"
	"crypto/tls"
	"net"
	"sync"

	"github.com/nabbar/xymond/network/class"
	"github.com/nabbar/xymond/network/cnmatch"
	"github.com/nabbar/xymond/router"
	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/startStop"
	sckcfg "github.com/nabbar/xymond/socket/config"
	"github.com/nabbar/xymond/wire"
)

// Config binds one listener to an address, its verb dispatch table and
// sender authorization lists, and the framing ceiling applied to every
// accepted connection.
type Config struct {
	Bind    sckcfg.Server
	Table   router.Table
	Allow   class.AllowList
	Ceiling int

	// CNMatch optionally pins the verified client certificate's CN to an
	// authorized identity once STARTTLS negotiates with
	// RequireClientCert (spec.md §4.11). A nil Matcher performs no CN
	// pinning at all; a non-nil Matcher denying the CN closes the
	// connection before the wire message is even read.
	CNMatch cnmatch.Matcher
}

// Listener is the accept-loop runner.Runner; one per configured bind
// address (the plaintext port and, if configured separately, the
// dedicated TLS port of spec.md §4.2).
type Listener interface {
	runner.Runner

	// Addr returns the bound local address, or nil if not yet started.
	Addr() net.Addr
}

type listener struct {
	startStop.StartStop

	cfg    Config
	tlsCfg *tls.Config

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// New validates cfg's TLS material (if any) and returns a Listener ready
// to Start. It does not bind the socket yet; binding happens in Start so
// a Listener can be constructed, held, and started later.
func New(cfg Config) (Listener, error) {
	tlsCfg, e := buildTLSConfig(cfg.Bind.TLS)
	if e != nil {
		return nil, e
	}

	if cfg.Ceiling <= 0 {
		cfg.Ceiling = wire.DefaultCeiling
	}

	l := &listener{cfg: cfg, tlsCfg: tlsCfg}
	l.StartStop = startStop.New(l.start, l.stop)
	return l, nil
}

func (l *listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

func (l *listener) network() string {
	if n := l.cfg.Bind.Network.Code(); n != "" {
		return n
	}
	return "tcp"
}

func (l *listener) start(ctx context.Context) error {
	ln, e := net.Listen(l.network(), l.cfg.Bind.Address)
	if e != nil {
		return ErrorBindFailed.Error(e)
	}

	l.mu.Lock()
	l.ln = ln
	l.mu.Unlock()

	l.wg.Add(1)
	go l.acceptLoop(ctx, ln)
	return nil
}

func (l *listener) stop(_ context.Context) error {
	l.mu.Lock()
	ln := l.ln
	l.ln = nil
	l.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	l.wg.Wait()
	return nil
}

func (l *listener) acceptLoop(ctx context.Context, ln net.Listener) {
	defer l.wg.Done()

	for {
		con, e := ln.Accept()
		if e != nil {
			return
		}

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer func() {
				runner.RecoveryCaller("listener.handle", recover())
			}()
			l.handle(ctx, con)
		}()
	}
}
