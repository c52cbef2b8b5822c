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

// Package status collects per-component health entries (one per running
// server/driver instance) into a single operator-facing surface. Components
// register themselves through RouteStatus.ComponentNew; a caller walks
// Components to build a combined status/health page.
package status

import "sync"

// FctMessage resolves the identification triple shown for a component: its
// display name, the build release, and a content hash/version marker.
type FctMessage func() (name string, release string, hash string)

// Component is one registered health entry.
type Component interface {
	Name() string
	Info() (release string, hash string)
	Health() error
}

type component struct {
	name string
	fct  FctMessage
	hlt  func() error
}

func (c *component) Name() string {
	return c.name
}

func (c *component) Info() (string, string) {
	if c.fct == nil {
		return "", ""
	}
	_, release, hash := c.fct()
	return release, hash
}

func (c *component) Health() error {
	if c.hlt == nil {
		return nil
	}
	return c.hlt()
}

// NewComponent builds a Component from an identification resolver and an
// optional health check. A nil health check always reports healthy.
func NewComponent(name string, fct FctMessage, health func() error) Component {
	return &component{name: name, fct: fct, hlt: health}
}

// RouteStatus is the registry every component publishes itself into.
type RouteStatus interface {
	// ComponentNew registers or replaces the component under the given name.
	ComponentNew(name string, comp Component)

	// ComponentGet returns the component registered under name, or nil.
	ComponentGet(name string) Component

	// ComponentList returns every registered component name.
	ComponentList() []string

	// Walk calls fct for every registered component.
	Walk(fct func(comp Component))
}

type router struct {
	mu sync.RWMutex
	m  map[string]Component
}

// New returns an empty RouteStatus.
func New() RouteStatus {
	return &router{m: make(map[string]Component)}
}

func (r *router) ComponentNew(name string, comp Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = comp
}

func (r *router) ComponentGet(name string) Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.m[name]
}

func (r *router) ComponentList() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.m))
	for k := range r.m {
		res = append(res, k)
	}
	return res
}

func (r *router) Walk(fct func(comp Component)) {
	r.mu.RLock()
	items := make([]Component, 0, len(r.m))
	for _, c := range r.m {
		items = append(items, c)
	}
	r.mu.RUnlock()

	for _, c := range items {
		fct(c)
	}
}
