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

// Package backfeed is an in-process stand-in for the System V message
// queue of spec.md §4.8: trusted local senders write whole messages to
// one of ten numbered channels, and the daemon drains them in bounded
// chunks between rounds of TCP work, instead of blocking on the network.
package backfeed

import (
	"context"
	"sync"

	"github.com/nabbar/xymond/errors"
	libsem "github.com/nabbar/xymond/semaphore"
)

const (
	ErrorInvalidChannel errors.CodeError = iota + errors.MinPkgBackfeed
	ErrorQueueFull
	ErrorQueueClosed
	ErrorDrainBusy
	ErrorReopenExhausted
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorInvalidChannel)
	errors.RegisterIdFctMessage(ErrorInvalidChannel, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorInvalidChannel:
		return "channel number out of the 0..9 range"
	case ErrorQueueFull:
		return "back-feed channel is full, message dropped"
	case ErrorQueueClosed:
		return "back-feed queue is closed"
	case ErrorDrainBusy:
		return "a drain pass is already in progress"
	case ErrorReopenExhausted:
		return "back-feed queue already used its one-time re-open"
	}
	return ""
}

// NumChannels is the number of back-feed channels, matching the original
// System V queue's single-digit channel numbers (0..9).
const NumChannels = 10

// DefaultChunkSize is bfqChunkSize: the number of messages drained per
// pass before the event loop resumes TCP work.
const DefaultChunkSize = 64

// MaxMessageSize flags a message as oversize rather than rejecting it,
// mirroring MSG_NOERROR: the message is still delivered, just logged.
const MaxMessageSize = 64 * 1024

// Message is one queued back-feed entry.
type Message struct {
	Channel  int
	Body     []byte
	Oversize bool
}

// Queue is the bounded multi-producer/multi-consumer substrate a trusted
// local sender writes to and the event loop drains.
type Queue interface {
	// Send enqueues body on channel without blocking; a full channel
	// returns ErrorQueueFull rather than stalling the sender.
	Send(channel int, body []byte) error

	// Drain processes up to chunkSize queued messages (DefaultChunkSize
	// if chunkSize <= 0) across all channels, calling fn for each, and
	// returns the number actually drained. Only one Drain may run at a
	// time; a concurrent call returns ErrorDrainBusy.
	Drain(ctx context.Context, chunkSize int, fn func(Message)) (int, error)

	// Reopen recovers a Close'd queue once, mirroring the one-time
	// re-open attempt the original makes after an EIDRM. A second call
	// returns ErrorReopenExhausted.
	Reopen() error

	// Close shuts the queue down; further Send calls fail.
	Close()
}

type queue struct {
	mu       sync.Mutex
	capacity int
	chans    [NumChannels]chan Message
	closed   bool
	reopened bool
	drain    libsem.Semaphore
}

// New returns a Queue whose channels each hold up to capacity messages
// before Send starts reporting ErrorQueueFull.
func New(capacity int) Queue {
	if capacity <= 0 {
		capacity = DefaultChunkSize
	}
	q := &queue{capacity: capacity, drain: libsem.New(context.Background(), 1, true)}
	q.open()
	return q
}

func (q *queue) open() {
	for i := range q.chans {
		q.chans[i] = make(chan Message, q.capacity)
	}
}

func (q *queue) Send(channel int, body []byte) error {
	if channel < 0 || channel >= NumChannels {
		return ErrorInvalidChannel.Error(nil)
	}

	q.mu.Lock()
	closed := q.closed
	ch := q.chans[channel]
	q.mu.Unlock()

	if closed {
		return ErrorQueueClosed.Error(nil)
	}

	msg := Message{Channel: channel, Body: body, Oversize: len(body) > MaxMessageSize}

	select {
	case ch <- msg:
		return nil
	default:
		return ErrorQueueFull.Error(nil)
	}
}

func (q *queue) Drain(ctx context.Context, chunkSize int, fn func(Message)) (int, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if !q.drain.NewWorkerTry() {
		return 0, ErrorDrainBusy.Error(nil)
	}
	defer q.drain.DeferWorker()

	q.mu.Lock()
	chans := q.chans
	q.mu.Unlock()

	drained := 0
	for drained < chunkSize {
		progressed := false
		for i := range chans {
			select {
			case msg, ok := <-chans[i]:
				if !ok {
					continue
				}
				fn(msg)
				drained++
				progressed = true
				if drained >= chunkSize {
					return drained, nil
				}
			default:
			}
		}
		if !progressed {
			break
		}
	}
	return drained, nil
}

func (q *queue) Reopen() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		return nil
	}
	if q.reopened {
		return ErrorReopenExhausted.Error(nil)
	}

	q.open()
	q.closed = false
	q.reopened = true
	return nil
}

func (q *queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	for _, ch := range q.chans {
		close(ch)
	}
	q.closed = true
}
