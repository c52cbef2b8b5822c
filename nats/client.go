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

package nats

import (
	"sync"
	"time"

	libnats "github.com/nats-io/nats.go"
)

// Handler receives one message's payload and the subject it arrived on.
type Handler func(subject string, data []byte)

// Client is a thin subscribe/publish façade over *nats.Conn, scoped to the
// subject-per-channel model fanout/ builds on (spec.md §4.7).
type Client interface {
	// Publish sends data on subject. Publish is synchronous from the
	// caller's perspective (it flushes), matching the "busy" semaphore's
	// synchronous post semantics in spec.md §4.7 step 2-4.
	Publish(subject string, data []byte) error

	// Subscribe registers fn on subject; messages are delivered on an
	// internal goroutine managed by the underlying connection.
	Subscribe(subject string, fn Handler) (Subscription, error)

	// Close tears down the connection.
	Close()

	// IsConnected reports whether the underlying connection is live.
	IsConnected() bool
}

// Subscription allows a subject subscription to be torn down independently
// of the owning Client.
type Subscription interface {
	Unsubscribe() error
}

type client struct {
	mu   sync.Mutex
	conn *libnats.Conn
}

// Connect dials url (typically Server.ClientURL()) and returns a Client.
// flushTimeout bounds how long Publish waits for the server to acknowledge
// the flush; zero uses a 2-second default.
func Connect(url string, flushTimeout time.Duration) (Client, error) {
	if flushTimeout <= 0 {
		flushTimeout = 2 * time.Second
	}

	conn, err := libnats.Connect(url, libnats.Name("xymond"), libnats.MaxReconnects(-1))
	if err != nil {
		return nil, ErrorClientConnect.Error(err)
	}

	return &client{conn: conn}, nil
}

func (c *client) Publish(subject string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrorClientConnect.Error(nil)
	}

	if err := c.conn.Publish(subject, data); err != nil {
		return err
	}

	return c.conn.FlushTimeout(2 * time.Second)
}

func (c *client) Subscribe(subject string, fn Handler) (Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrorClientConnect.Error(nil)
	}

	return c.conn.Subscribe(subject, func(msg *libnats.Msg) {
		fn(msg.Subject, msg.Data)
	})
}

func (c *client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && c.conn.IsConnected()
}
