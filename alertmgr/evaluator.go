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

package alertmgr

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/nabbar/xymond/alertmgr/sendalert"
	"github.com/nabbar/xymond/fanout"
	"github.com/nabbar/xymond/hoststatus"
	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/startStop"
	"github.com/nabbar/xymond/runner/ticker"
)

const (
	DefaultTickPeriod     = 30 * time.Second
	DefaultRepeatInterval = 30 * time.Minute
)

// Config bundles an alert evaluator's tuning knobs and its recipient
// rule list (spec.md §4.12).
type Config struct {
	Rules         []RecipientRule
	TickPeriod    time.Duration
	DefaultRepeat time.Duration
	OKColors      hoststatus.ColorSet
}

func (c Config) withDefaults() Config {
	if c.TickPeriod <= 0 {
		c.TickPeriod = DefaultTickPeriod
	}
	if c.DefaultRepeat <= 0 {
		c.DefaultRepeat = DefaultRepeatInterval
	}
	if c.OKColors == nil {
		c.OKColors = hoststatus.DefaultOKColors()
	}
	return c
}

// Manager is the alert evaluator of spec.md §4.12: it attaches to the
// fan-out bus's page channel, keeps an in-memory Alert per (host, test),
// and runs the Paging/Acked/Recovered/Notify pipeline every TickPeriod.
type Manager struct {
	startStop.StartStop

	bus    fanout.Bus
	cfg    Config
	ticker runner.Runner

	mu     sync.Mutex
	alerts map[string]*Alert
	detach func()
}

// NewManager returns a Manager bound to bus and cfg. Start attaches to
// the page channel and begins the dispatch ticker; Stop tears both down.
func NewManager(bus fanout.Bus, cfg Config) *Manager {
	cfg = cfg.withDefaults()
	m := &Manager{bus: bus, cfg: cfg, alerts: make(map[string]*Alert)}
	m.ticker = ticker.New("alertmgr-tick", cfg.TickPeriod, m.tick)
	m.StartStop = startStop.New(m.start, m.stop)
	return m
}

func (m *Manager) start(ctx context.Context) error {
	detach, err := m.bus.Attach(fanout.Page, m.onPage)
	if err != nil {
		return ErrorAttachFailed.Error(err)
	}

	m.mu.Lock()
	m.detach = detach
	m.mu.Unlock()

	return m.ticker.Start(ctx)
}

func (m *Manager) stop(ctx context.Context) error {
	m.mu.Lock()
	detach := m.detach
	m.detach = nil
	m.mu.Unlock()

	if detach != nil {
		detach()
	}
	return m.ticker.Stop(ctx)
}

// Snapshot returns every currently tracked alert, for checkpointing.
func (m *Manager) Snapshot() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Alert, 0, len(m.alerts))
	for _, a := range m.alerts {
		out = append(out, *a)
	}
	return out
}

// Restore reloads a checkpointed alert, discarding it if host is not at
// an alerting color per live (per spec.md §4.12 "Checkpointing": "stale
// entries... are discarded"), and upgrading a checkpointed NoRecip back
// to Paging so newly configured recipients get a chance.
func (m *Manager) Restore(a Alert, stillAlerting bool) {
	if !stillAlerting {
		return
	}
	if a.State == NoRecip {
		a.State = Paging
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := a
	m.alerts[key(a.Host, a.Test)] = &cp
}

// onPage is the fan-out bus callback for a page-channel arrival: the raw
// "<verb> host.test color message..." body router.NewStatusHandler posts
// (spec.md §4.2/§4.7).
func (m *Manager) onPage(msg fanout.Message) {
	line := msg.Body
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(string(line))
	if len(fields) < 3 {
		return
	}

	addr := fields[1]
	i := strings.LastIndexByte(addr, '.')
	if i < 0 {
		return
	}
	host, test := addr[:i], addr[i+1:]
	c := hoststatus.ParseColor(fields[2])

	message := ""
	if j := bytes.IndexByte(msg.Body, '\n'); j >= 0 && j+1 < len(msg.Body) {
		message = string(msg.Body[j+1:])
	}

	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(host, test)
	a, ok := m.alerts[k]
	if !ok {
		if m.cfg.OKColors.Has(c) {
			return
		}
		a = newAlert(host, test, addr, "", c, message, now)
		m.alerts[k] = a
	} else {
		a.touch(c, message, now, m.cfg.OKColors)
	}

	if a.State == Paging && len(matchRules(m.cfg.Rules, host, test, c)) == 0 {
		a.State = NoRecip
	}
}

// Ack applies an ack event to the alert for (host, test), per spec.md
// §4.12 "Ack events adjust nextAlertTime to the ack's expiry".
func (m *Manager) Ack(host, test, by, msg string, until time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.alerts[key(host, test)]; ok {
		a.ack(by, msg, until)
	}
}

// Drop marks every alert for host (and test, if non-empty) Dead, per
// spec.md §4.12 "Drop/rename events transition all affected alerts to
// Dead".
func (m *Manager) Drop(host, test string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, a := range m.alerts {
		if a.Host == host && (test == "" || a.Test == test) {
			a.drop()
			delete(m.alerts, k)
		}
	}
}

// tick runs one pass of spec.md §4.12 steps 1-4.
func (m *Manager) tick(ctx context.Context) {
	now := time.Now()

	m.mu.Lock()
	for _, a := range m.alerts {
		a.expireAck(now)
	}

	var due []*Alert
	for _, a := range m.alerts {
		switch a.State {
		case Paging:
			if !a.NextAlertTime.After(now) {
				due = append(due, a)
			}
		case Recovered, Notify:
			due = append(due, a)
		}
	}
	rules := m.cfg.Rules
	defaultRepeat := m.cfg.DefaultRepeat
	m.mu.Unlock()

	for _, a := range due {
		m.dispatch(ctx, a, rules, defaultRepeat)
	}

	m.mu.Lock()
	for k, a := range m.alerts {
		if a.State == Dead {
			delete(m.alerts, k)
		}
	}
	m.mu.Unlock()
}

// dispatch sends one alert to every matching recipient's hook from its
// own goroutine (standing in for the original's forked send_alert
// child), then advances the alert's state/NextAlertTime.
func (m *Manager) dispatch(ctx context.Context, a *Alert, rules []RecipientRule, defaultRepeat time.Duration) {
	m.mu.Lock()
	matched := matchRules(rules, a.Host, a.Test, a.Color)
	if a.State == Paging && len(matched) == 0 {
		a.State = NoRecip
		m.mu.Unlock()
		return
	}

	ev := sendalert.Event{
		Host:          a.Host,
		Test:          a.Test,
		Location:      a.Location,
		IP:            a.IP,
		Color:         a.Color.String(),
		MaxColor:      a.MaxColor.String(),
		PageMessage:   a.PageMessage,
		AckMessage:    a.AckMessage,
		State:         a.State.String(),
		EventStart:    a.EventStart.Format(time.RFC3339),
		RecoveredTime: now().Format(time.RFC3339),
	}

	wasTerminal := a.State == Recovered || a.State == Notify
	repeat := defaultRepeat
	for _, r := range matched {
		if r.RepeatInterval > 0 && r.RepeatInterval < repeat {
			repeat = r.RepeatInterval
		}
	}
	m.mu.Unlock()

	for _, r := range matched {
		h := r.Hook
		go func() {
			defer func() {
				runner.RecoveryCaller("alertmgr.dispatch", recover())
			}()
			_ = h.Send(ctx, ev)
		}()
	}

	m.mu.Lock()
	if wasTerminal {
		a.State = Dead
	} else {
		a.NextAlertTime = now().Add(repeat)
	}
	m.mu.Unlock()
}

func now() time.Time { return time.Now() }
