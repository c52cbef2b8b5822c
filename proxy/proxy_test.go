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

package proxy_test

import (
	"bufio"
	"context"
	"net"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/xymond/proxy"
	sckcfg "github.com/nabbar/xymond/socket/config"
	"github.com/nabbar/xymond/wire"
)

// fakeUpstream records every frame it receives and, if reply is non-nil,
// writes it back before closing.
type fakeUpstream struct {
	ln    net.Listener
	reply []byte

	mu     sync.Mutex
	frames [][]byte
}

func startFakeUpstream(reply []byte) *fakeUpstream {
	ln, e := net.Listen("tcp", "127.0.0.1:0")
	Expect(e).ToNot(HaveOccurred())

	u := &fakeUpstream{ln: ln, reply: reply}
	go u.run()
	return u
}

func (u *fakeUpstream) run() {
	for {
		con, e := u.ln.Accept()
		if e != nil {
			return
		}
		go func() {
			defer func() { _ = con.Close() }()
			buf, e := wire.ReadFrame(bufio.NewReader(con), wire.DefaultCeiling)
			if e != nil {
				return
			}
			u.mu.Lock()
			u.frames = append(u.frames, buf)
			u.mu.Unlock()

			if u.reply != nil {
				_, _ = con.Write(u.reply)
			}
		}()
	}
}

func (u *fakeUpstream) Frames() [][]byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([][]byte, len(u.frames))
	copy(out, u.frames)
	return out
}

func (u *fakeUpstream) Close() { _ = u.ln.Close() }

var _ = Describe("Proxy", func() {
	It("answers proxyping directly without forwarding", func() {
		up := startFakeUpstream(nil)
		defer up.Close()

		p := proxy.New(proxy.Config{
			Listen:   sckcfg.Server{Address: "127.0.0.1:0"},
			Upstream: []sckcfg.Client{{Address: up.ln.Addr().String()}},
		})
		Expect(p.Start(context.Background())).To(Succeed())
		defer func() { _ = p.Stop(context.Background()) }()

		con, e := net.Dial("tcp", p.Addr().String())
		Expect(e).ToNot(HaveOccurred())
		defer func() { _ = con.Close() }()

		_, e = con.Write([]byte("proxyping\n"))
		Expect(e).ToNot(HaveOccurred())
		_ = con.(*net.TCPConn).CloseWrite()

		line, e := bufio.NewReader(con).ReadString('\n')
		Expect(e).ToNot(HaveOccurred())
		Expect(line).To(Equal("OK\n"))
		Expect(up.Frames()).To(BeEmpty())
	})

	It("forwards a request-response verb and proxies the upstream reply back", func() {
		up := startFakeUpstream([]byte("OK reply\n"))
		defer up.Close()

		p := proxy.New(proxy.Config{
			Listen:   sckcfg.Server{Address: "127.0.0.1:0"},
			Upstream: []sckcfg.Client{{Address: up.ln.Addr().String()}},
		})
		Expect(p.Start(context.Background())).To(Succeed())
		defer func() { _ = p.Stop(context.Background()) }()

		con, e := net.Dial("tcp", p.Addr().String())
		Expect(e).ToNot(HaveOccurred())
		defer func() { _ = con.Close() }()

		body := "size:6\nquery "
		_, e = con.Write([]byte(body))
		Expect(e).ToNot(HaveOccurred())

		line, e := bufio.NewReader(con).ReadString('\n')
		Expect(e).ToNot(HaveOccurred())
		Expect(line).To(Equal("OK reply\n"))
	})

	It("merges a status message into the combiner and forwards the batch upstream", func() {
		up := startFakeUpstream(nil)
		defer up.Close()

		p := proxy.New(proxy.Config{
			Listen:        sckcfg.Server{Address: "127.0.0.1:0"},
			Upstream:      []sckcfg.Client{{Address: up.ln.Addr().String()}},
			CombineWindow: 20 * time.Millisecond,
		})
		Expect(p.Start(context.Background())).To(Succeed())
		defer func() { _ = p.Stop(context.Background()) }()

		con, e := net.Dial("tcp", p.Addr().String())
		Expect(e).ToNot(HaveOccurred())

		_, e = con.Write([]byte("status web01.conn green all fine\n"))
		Expect(e).ToNot(HaveOccurred())
		_ = con.(*net.TCPConn).CloseWrite()

		Eventually(func() int {
			return len(up.Frames())
		}, time.Second).Should(Equal(1))

		frames := up.Frames()
		Expect(string(frames[0])).To(ContainSubstring("status web01.conn green all fine"))
	})
})
