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

// Package client dials a remote endpoint over whichever network protocol
// socket/config.Client names, optionally wrapping the connection in TLS. It
// is the transport used by the syslog aggregator and, in the daemon's own
// stack, by the back-feed and proxy upstream dialers.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"sync"

	sckcfg "github.com/nabbar/xymond/socket/config"
)

// Client is a reconnectable network client bound to one remote endpoint.
type Client interface {
	Connect(ctx context.Context) error
	Write(p []byte) (n int, err error)
	Read(p []byte) (n int, err error)
	Close() error
	IsConnected() bool
}

type client struct {
	mu  sync.Mutex
	cfg sckcfg.Client
	tls *tls.Config
	con net.Conn
}

// New returns a Client bound to cfg. tlsCfg overrides the TLS settings
// derived from cfg.TLS when non-nil; pass nil to build the TLS config (if
// any) from cfg.TLS alone.
func New(cfg sckcfg.Client, tlsCfg *tls.Config) (Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("socket client: empty address")
	}

	c := &client{cfg: cfg}

	if tlsCfg != nil {
		c.tls = tlsCfg
	} else if cfg.TLS.Enable {
		t := &tls.Config{
			ServerName:         cfg.TLS.ServerName,
			InsecureSkipVerify: cfg.TLS.InsecureSkipVerify,
		}

		if cfg.TLS.CAFile != "" {
			pem, e := os.ReadFile(cfg.TLS.CAFile)
			if e != nil {
				return nil, e
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("socket client: invalid CA file %q", cfg.TLS.CAFile)
			}
			t.RootCAs = pool
		}

		if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "" {
			crt, e := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
			if e != nil {
				return nil, e
			}
			t.Certificates = []tls.Certificate{crt}
		}

		c.tls = t
	}

	return c, nil
}

func (c *client) network() string {
	if n := c.cfg.Network.Code(); n != "" {
		return n
	}
	return "tcp"
}

func (c *client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.con != nil {
		return nil
	}

	d := &net.Dialer{}

	var (
		con net.Conn
		e   error
	)

	if c.tls != nil {
		td := &tls.Dialer{NetDialer: d, Config: c.tls}
		con, e = td.DialContext(ctx, c.network(), c.cfg.Address)
	} else {
		con, e = d.DialContext(ctx, c.network(), c.cfg.Address)
	}

	if e != nil {
		return e
	}

	c.con = con
	return nil
}

func (c *client) Write(p []byte) (int, error) {
	c.mu.Lock()
	con := c.con
	c.mu.Unlock()

	if con == nil {
		return 0, fmt.Errorf("socket client: not connected")
	}
	return con.Write(p)
}

func (c *client) Read(p []byte) (int, error) {
	c.mu.Lock()
	con := c.con
	c.mu.Unlock()

	if con == nil {
		return 0, fmt.Errorf("socket client: not connected")
	}
	return con.Read(p)
}

func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.con == nil {
		return nil
	}

	e := c.con.Close()
	c.con = nil
	return e
}

func (c *client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.con != nil
}
