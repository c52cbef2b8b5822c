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

// Package nats wraps an embedded nats-server instance and the matching
// nats.go client connection behind the module's own Runner/Start/Stop
// contract, so the rest of the tree never imports nats-server/nats.go
// directly. fanout/ builds the channel bus described in spec.md §4.7 on
// top of the Server/Client this package returns.
package nats

import (
	"context"
	"sync"
	"time"

	natsrv "github.com/nats-io/nats-server/v2/server"

	"github.com/nabbar/xymond/errors"
	"github.com/nabbar/xymond/runner"
)

const (
	// ErrorServerStart reports a failure bringing the embedded server up.
	ErrorServerStart errors.CodeError = iota + errors.MinPkgNats
	ErrorServerNotReady
	ErrorClientConnect
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorServerStart)
	errors.RegisterIdFctMessage(ErrorServerStart, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorServerStart:
		return "embedded nats server failed to start"
	case ErrorServerNotReady:
		return "embedded nats server did not become ready before the deadline"
	case ErrorClientConnect:
		return "embedded nats client failed to connect"
	}
	return ""
}

// ReadyTimeout bounds how long Listen waits for the embedded server to
// accept connections before giving up.
const ReadyTimeout = 5 * time.Second

// Server is the lifecycle surface around an embedded nats-server instance,
// mirrored from the shape this module's config layer expected of
// `nats.Server` (`SetOptions`/`Listen`/`Restart`/`IsRunning`/`Shutdown`).
type Server interface {
	runner.Runner

	// SetOptions replaces the server options applied on the next Start or
	// Restart; it has no effect on an already-running server.
	SetOptions(opt *natsrv.Options)

	// ClientURL returns the in-process URL a Client can Connect to.
	ClientURL() string

	// Raw exposes the underlying *natsrv.Server for callers (fanout/) that
	// need subject-level introspection beyond this contract.
	Raw() *natsrv.Server
}

type server struct {
	mu      sync.Mutex
	opt     *natsrv.Options
	srv     *natsrv.Server
	started time.Time
}

// NewServer returns a Server bound to opt. opt is typically built with
// Embedded-only settings (no TCP port, or a loopback one) so the bus never
// leaves the process.
func NewServer(opt *natsrv.Options) Server {
	if opt == nil {
		opt = &natsrv.Options{}
	}
	return &server{opt: opt}
}

func (s *server) SetOptions(opt *natsrv.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opt = opt
}

func (s *server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil && s.srv.Running() {
		return nil
	}

	srv, err := natsrv.NewServer(s.opt)
	if err != nil {
		return ErrorServerStart.Error(err)
	}

	go srv.Start()

	if !srv.ReadyForConnections(ReadyTimeout) {
		srv.Shutdown()
		return ErrorServerNotReady.Error(nil)
	}

	s.srv = srv
	s.started = time.Now()
	return nil
}

func (s *server) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return nil
	}

	s.srv.Shutdown()
	s.srv.WaitForShutdown()
	s.srv = nil
	s.started = time.Time{}
	return nil
}

func (s *server) Restart(ctx context.Context) error {
	if err := s.Stop(ctx); err != nil {
		return err
	}
	return s.Start(ctx)
}

func (s *server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.srv != nil && s.srv.Running()
}

func (s *server) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return 0
	}
	return time.Since(s.started)
}

func (s *server) ClientURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return ""
	}
	return s.srv.ClientURL()
}

func (s *server) Raw() *natsrv.Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.srv
}

// DefaultOptions returns Options for a loopback-only embedded server, with
// an ephemeral port (0) so several daemons in the same test process never
// collide.
func DefaultOptions() *natsrv.Options {
	return &natsrv.Options{
		Host:           "127.0.0.1",
		Port:           0,
		NoLog:          true,
		NoSigs:         true,
		MaxControlLine: 4096,
	}
}
