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

package registry

import (
	"context"
	"time"

	libcch "github.com/nabbar/xymond/cache"
)

// GhostPolicy selects how an unrecognized hostname is handled on arrival
// (spec.md §4.3 step 1).
type GhostPolicy uint8

const (
	GhostIgnore GhostPolicy = iota
	GhostLog
	GhostMatch
	GhostAllow
)

// DefaultGhostRetention is how long an unmatched ghost is retained before
// expiring, per spec.md §3 "Ghost" (10 minutes by default).
const DefaultGhostRetention = 10 * time.Minute

// Ghost is an unrecognized hostname observed in traffic (spec.md §3).
type Ghost struct {
	Hostname  string
	Sender    string
	FirstSeen time.Time
	LastSeen  time.Time
}

// GhostTable tracks ghosts with TTL expiry, backed by the generic cache
// package the rest of the tree already uses for timed maps.
type GhostTable struct {
	cache libcch.Cache[string, *Ghost]
}

// NewGhostTable creates a GhostTable retaining entries for retention
// (DefaultGhostRetention if zero).
func NewGhostTable(ctx context.Context, retention time.Duration) *GhostTable {
	if retention <= 0 {
		retention = DefaultGhostRetention
	}
	return &GhostTable{cache: libcch.New[string, *Ghost](ctx, retention)}
}

// Record notes an observation of an unrecognized hostname, creating the
// entry on first sight and refreshing LastSeen/sender otherwise.
func (g *GhostTable) Record(hostname, sender string, now time.Time) *Ghost {
	if existing, _, ok := g.cache.Load(hostname); ok {
		existing.LastSeen = now
		existing.Sender = sender
		g.cache.Store(hostname, existing)
		return existing
	}

	gh := &Ghost{Hostname: hostname, Sender: sender, FirstSeen: now, LastSeen: now}
	g.cache.Store(hostname, gh)
	return gh
}

// List returns every tracked ghost, for the `ghostlist` query verb
// (spec.md §4.6, supplemented per original_source/xymond.c).
func (g *GhostTable) List() []*Ghost {
	var out []*Ghost
	g.cache.Walk(func(_ string, v *Ghost, _ time.Duration) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Forget removes hostname from the ghost table, used once a `match` policy
// successfully aliases it to a known short name.
func (g *GhostTable) Forget(hostname string) {
	g.cache.Delete(hostname)
}
