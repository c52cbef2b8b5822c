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

// Package types defines the narrow monitor-pool contract that config
// components register against (ComponentMonitor.RegisterMonitorPool):
// a place to publish a named health check once the component has started.
// The daemon's own host/test availability model lives in monitor/, a
// separate concern from this operator-facing health-check registry.
package types

import (
	"context"
	"time"
)

// Monitor is a single named health check a component publishes into the
// shared Pool (e.g. "nats-server", "nutsdb", "tls-listener"), or returns
// directly from its own constructor (e.g. httpserver.Server.Monitor).
type Monitor interface {
	Name() string
	Check(ctx context.Context) error

	// SetHealthCheck installs the probe this monitor reports on Check.
	SetHealthCheck(fct func(ctx context.Context) error)

	// SetConfig applies publication settings (interval, cache TTL) and
	// may start background refresh of the cached health state.
	SetConfig(ctx context.Context, cfg Config) error

	// Start begins any background refresh loop SetConfig armed.
	Start(ctx context.Context) error
}

// Config carries the publication tuning for a Monitor: how often its
// health check is re-run in the background and how long a cached result
// stays valid for read-side queries.
type Config struct {
	CheckInterval time.Duration `mapstructure:"check_interval" json:"check_interval" yaml:"check_interval" toml:"check_interval"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl" json:"cache_ttl" yaml:"cache_ttl" toml:"cache_ttl"`
}

// Pool collects the Monitor instances registered by every running
// component so an operator-facing status endpoint can report on all of
// them uniformly.
type Pool interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	IsRunning() bool
	Uptime() time.Duration

	MonitorAdd(m Monitor) error
	MonitorSet(m Monitor) error
	MonitorGet(name string) Monitor
	MonitorList() []string
}

// FuncPool retrieves the shared Pool instance. Components receive this via
// RegisterMonitorPool during Init and call it once ready to register their
// own Monitor.
type FuncPool func() Pool
