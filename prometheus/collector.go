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

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "xymond"

// Collector owns one private registry holding every metric spec.md §7
// lists as "surfaced to operators": message counts per verb split by
// TCP vs back-feed delivery, per-channel client count and message
// counter, timeout counters per connection state, ghost/multi-source
// reports, and a running error-kind counter.
type Collector struct {
	reg *prometheus.Registry

	MessagesTotal    *prometheus.CounterVec
	ChannelClients   *prometheus.GaugeVec
	ChannelMessages  *prometheus.CounterVec
	TimeoutsTotal    *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	GhostsTotal      prometheus.Gauge
	MultiSourceTotal prometheus.Gauge
}

// New builds a Collector and registers every metric on its own registry,
// so more than one daemon instance in a process never collides on the
// global default registry.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Messages processed, by verb and delivery path (tcp or bfq).",
		}, []string{"verb", "path"}),
		ChannelClients: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_clients",
			Help:      "Current subscriber count per fan-out channel.",
		}, []string{"channel"}),
		ChannelMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_messages_total",
			Help:      "Messages posted per fan-out channel.",
		}, []string{"channel"}),
		TimeoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timeouts_total",
			Help:      "Connection timeouts per connection state.",
		}, []string{"state"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Errors observed, by kind.",
		}, []string{"kind"}),
		GhostsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ghosts_total",
			Help:      "Hosts currently tracked as ghosts.",
		}),
		MultiSourceTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "multisource_total",
			Help:      "Host.test pairs currently reported from more than one sender.",
		}),
	}

	reg.MustRegister(
		c.MessagesTotal,
		c.ChannelClients,
		c.ChannelMessages,
		c.TimeoutsTotal,
		c.ErrorsTotal,
		c.GhostsTotal,
		c.MultiSourceTotal,
	)

	return c
}

// Handler serves the collector's registry in the Prometheus exposition
// format, to be mounted under e.g. /metrics by cmd/xymond.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// ObserveMessage records one processed message for verb, arriving either
// over TCP directly or drained from the back-feed queue.
func (c *Collector) ObserveMessage(verb string, viaBFQ bool) {
	path := "tcp"
	if viaBFQ {
		path = "bfq"
	}
	c.MessagesTotal.WithLabelValues(verb, path).Inc()
}

// ObserveChannelPost records one fan-out post on channel.
func (c *Collector) ObserveChannelPost(channel string) {
	c.ChannelMessages.WithLabelValues(channel).Inc()
}

// SetChannelClients records channel's current subscriber count.
func (c *Collector) SetChannelClients(channel string, n int) {
	c.ChannelClients.WithLabelValues(channel).Set(float64(n))
}

// ObserveTimeout records one connection timeout while in state.
func (c *Collector) ObserveTimeout(state string) {
	c.TimeoutsTotal.WithLabelValues(state).Inc()
}

// ObserveError records one error of the given kind (spec.md §7's error
// kinds: ProtocolError, OversizeMessage, AuthError, UnknownHost,
// ChannelBusy, ChildFailure, IOError, BFQFailure).
func (c *Collector) ObserveError(kind string) {
	c.ErrorsTotal.WithLabelValues(kind).Inc()
}

// SetGhosts records the current ghost-table size.
func (c *Collector) SetGhosts(n int) {
	c.GhostsTotal.Set(float64(n))
}

// SetMultiSource records the current multi-source host.test count.
func (c *Collector) SetMultiSource(n int) {
	c.MultiSourceTotal.Set(float64(n))
}
