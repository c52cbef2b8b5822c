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

package listener

import (
	"bufio"
	"context"
	"crypto/tls"
	"net"
	"strings"
	"time"

	"github.com/nabbar/xymond/router"
	"github.com/nabbar/xymond/wire"
)

// handle runs one accepted connection through the state machine of
// spec.md §4.2: an opportunistic STARTTLS upgrade, a single framed
// message, dispatch, and an optional reply. The daemon's wire protocol is
// one message per connection, so the connection is closed once the
// message (or the STARTTLS negotiation alone) has been handled.
func (l *listener) handle(ctx context.Context, con net.Conn) {
	defer func() { _ = con.Close() }()

	r := bufio.NewReader(con)
	var cn string

	if isStarttls(r) {
		_, _ = r.ReadString('\n')

		nc, nr, ok := l.upgradeTLS(con)
		if !ok {
			return
		}
		con, r = nc, nr

		if tc, ok := con.(*tls.Conn); ok {
			cn = peerCN(tc.ConnectionState())
		}

		if l.cfg.CNMatch != nil && !l.cfg.CNMatch.Allow(cn) {
			_, _ = con.Write([]byte("ERR CN not authorized\n"))
			return
		}
	}

	buf, e := wire.ReadFrame(r, l.cfg.Ceiling)
	if e != nil || len(buf) == 0 {
		return
	}

	msg, e := wire.Parse(buf)
	if e != nil {
		return
	}

	ip := con.RemoteAddr().String()
	if host, _, e := net.SplitHostPort(ip); e == nil {
		ip = host
	}

	req := router.Request{
		Verb:   msg.Verb,
		Addr:   msg.Addr,
		Flags:  msg.Flags,
		Body:   buf,
		PeerIP: ip,
		PeerCN: cn,
		Now:    time.Now(),
	}

	resp, e := router.Dispatch(ctx, l.cfg.Table, l.cfg.Allow, req)
	if e != nil {
		return
	}

	if len(resp.Body) > 0 {
		_, _ = con.Write(resp.Body)
	}
}

// isStarttls peeks at the first line without consuming it, so a normal
// message is left intact for wire.ReadFrame.
func isStarttls(r *bufio.Reader) bool {
	peek, _ := r.Peek(9)
	s := strings.ToLower(string(peek))
	return strings.HasPrefix(s, "starttls\n") || strings.HasPrefix(s, "starttls\r")
}

// upgradeTLS answers the STARTTLS request and, if a certificate is
// configured, performs the handshake on the same socket. Returning ok=false
// means the connection is already unusable and handle should stop.
func (l *listener) upgradeTLS(con net.Conn) (net.Conn, *bufio.Reader, bool) {
	if l.tlsCfg == nil {
		if _, e := con.Write([]byte("ERR No TLS\n")); e != nil {
			return nil, nil, false
		}
		return con, bufio.NewReader(con), true
	}

	if _, e := con.Write([]byte("OK TLS\n")); e != nil {
		return nil, nil, false
	}

	tc := tls.Server(con, l.tlsCfg)
	if e := tc.HandshakeContext(context.Background()); e != nil {
		return nil, nil, false
	}

	return tc, bufio.NewReader(tc), true
}
