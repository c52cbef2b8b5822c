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
	"context"
	"strconv"
	"time"

	sckclient "github.com/nabbar/xymond/socket/client"
	sckcfg "github.com/nabbar/xymond/socket/config"
)

// frameSize wraps body in an explicit `size:N\n` header before it goes to
// an upstream, rather than relying on half-closing the proxy's own side
// of that socket: the same connection is still needed afterward to read
// a reply for request-response verbs.
func frameSize(body []byte) []byte {
	out := make([]byte, 0, len(body)+16)
	out = append(out, []byte("size:"+strconv.Itoa(len(body))+"\n")...)
	out = append(out, body...)
	return out
}

// dialUpstream tries each configured upstream in order, spending up to
// attempts dial attempts spaced by backoff on each before moving to the
// next (spec.md §4.11 "up to 5 connect attempts per upstream spaced by
// 12 s"). It returns the first upstream it manages to connect to.
func dialUpstream(ctx context.Context, upstreams []sckcfg.Client, attempts int, backoff time.Duration) (sckclient.Client, error) {
	if len(upstreams) == 0 {
		return nil, ErrorNoUpstream.Error(nil)
	}

	for _, up := range upstreams {
		cli, e := sckclient.New(up, nil)
		if e != nil {
			continue
		}

		for i := 0; i < attempts; i++ {
			if e = cli.Connect(ctx); e == nil {
				return cli, nil
			}
			if i < attempts-1 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(backoff):
				}
			}
		}
	}

	return nil, ErrorConnectExhausted.Error(nil)
}

// sendWithRetry writes body to cli up to retries times (spec.md §4.11 "4
// send retries per established socket"), stopping at the first success.
func sendWithRetry(cli sckclient.Client, body []byte, retries int) error {
	var e error
	for i := 0; i < retries; i++ {
		if _, e = cli.Write(body); e == nil {
			return nil
		}
	}
	return ErrorSendExhausted.Error(e)
}

// readReply reads the upstream's whole reply until it closes its side,
// matching the one-message-per-connection framing the daemon itself
// speaks (spec.md §4.1(a)).
func readReply(cli sckclient.Client) []byte {
	buf := make([]byte, 0, 4096)
	tmp := make([]byte, 4096)
	for {
		n, e := cli.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
		}
		if e != nil {
			break
		}
	}
	return buf
}
