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

package fanout

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/xymond/errors"
	libnat "github.com/nabbar/xymond/nats"
	libsem "github.com/nabbar/xymond/semaphore"
)

const (
	// ErrorChannelBusy reports that a post's busy-barrier alarm fired
	// before the channel became free (spec.md §4.7 step 2).
	ErrorChannelBusy errors.CodeError = iota + errors.MinPkgFanout
	ErrorPublish
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorChannelBusy)
	errors.RegisterIdFctMessage(ErrorChannelBusy, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorChannelBusy:
		return "channel busy-barrier alarm fired before the slot freed"
	case ErrorPublish:
		return "fan-out publish failed"
	}
	return ""
}

// BusyAlarm bounds how long Post waits for a channel's busy barrier before
// aborting (spec.md §4.7 step 2, "guarded by a short alarm").
const BusyAlarm = 2 * time.Second

// MaxBody clamps a posted message; an oversize body is truncated rather
// than rejected (spec.md §4.7 step 3).
const MaxBody = 256 * 1024

// Message is one delivery handed to a channel subscriber.
type Message struct {
	Channel Channel
	Body    []byte
}

// Bus is the fan-out surface the daemon posts status/page/data/... events
// to, and the subsystems (boardhttp, alertmgr, checkpoint) attach to in
// order to observe them.
type Bus interface {
	// Post delivers body on channel, synchronously. It drops silently if
	// no subscriber is attached (step 1), and clamps an oversize body
	// (step 3).
	Post(channel Channel, body []byte) error

	// Attach registers fn against channel and returns an unsubscribe
	// func. ClientCount is incremented for the duration.
	Attach(channel Channel, fn func(Message)) (detach func(), err error)

	// ClientCount reports how many subscribers are currently attached to
	// channel.
	ClientCount(channel Channel) int

	// Close tears down every channel's busy barrier and the underlying
	// client connection.
	Close()
}

type chanState struct {
	busy  libsem.Sem
	count int32
}

type bus struct {
	mu     sync.Mutex
	srv    libnat.Server
	cli    libnat.Client
	states map[Channel]*chanState
}

// New creates a Bus backed by an embedded nats/.Server it starts itself.
// ctx governs the lifetime of every channel's busy barrier.
func New(ctx context.Context) (Bus, error) {
	srv := libnat.NewServer(libnat.DefaultOptions())
	if err := srv.Start(ctx); err != nil {
		return nil, err
	}

	cli, err := libnat.Connect(srv.ClientURL(), time.Second)
	if err != nil {
		_ = srv.Stop(ctx)
		return nil, err
	}

	b := &bus{srv: srv, cli: cli, states: make(map[Channel]*chanState)}
	for _, c := range Channels {
		b.states[c] = &chanState{busy: libsem.NewSemaphoreWithContext(ctx, 1)}
	}
	return b, nil
}

func (b *bus) state(c Channel) *chanState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.states[c]; ok {
		return s
	}
	s := &chanState{busy: libsem.NewSemaphoreWithContext(context.Background(), 1)}
	b.states[c] = s
	return s
}

func (b *bus) Post(channel Channel, body []byte) error {
	st := b.state(channel)

	if atomic.LoadInt32(&st.count) == 0 {
		return nil
	}

	alarm, cancel := context.WithTimeout(context.Background(), BusyAlarm)
	defer cancel()

	acquired := make(chan error, 1)
	go func() { acquired <- st.busy.NewWorker() }()

	select {
	case err := <-acquired:
		if err != nil {
			return ErrorChannelBusy.Error(err)
		}
	case <-alarm.Done():
		return ErrorChannelBusy.Error(nil)
	}
	defer st.busy.DeferWorker()

	if len(body) > MaxBody {
		body = body[:MaxBody]
	}

	if err := b.cli.Publish(channel.subject(), body); err != nil {
		return ErrorPublish.Error(err)
	}
	return nil
}

func (b *bus) Attach(channel Channel, fn func(Message)) (func(), error) {
	st := b.state(channel)

	sub, err := b.cli.Subscribe(channel.subject(), func(subject string, data []byte) {
		fn(Message{Channel: channel, Body: data})
	})
	if err != nil {
		return nil, ErrorPublish.Error(err)
	}

	atomic.AddInt32(&st.count, 1)

	return func() {
		_ = sub.Unsubscribe()
		atomic.AddInt32(&st.count, -1)
	}, nil
}

func (b *bus) ClientCount(channel Channel) int {
	return int(atomic.LoadInt32(&b.state(channel).count))
}

func (b *bus) Close() {
	b.mu.Lock()
	cli := b.cli
	srv := b.srv
	b.mu.Unlock()

	if cli != nil {
		cli.Close()
	}
	if srv != nil {
		_ = srv.Stop(context.Background())
	}
}
