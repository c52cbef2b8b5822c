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

package boardhttp_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/xymond/boardhttp"
	"github.com/nabbar/xymond/hoststatus"
	"github.com/nabbar/xymond/registry"
)

var _ = Describe("Filters", func() {
	var hr *registry.HostRecord

	BeforeEach(func() {
		hr = registry.NewHostRecord("web01", "10.0.0.1", registry.HostNormal)
		hr.Statuses["conn"] = &hoststatus.StatusRecord{Host: "web01", Test: "conn", Color: hoststatus.Red, Line1: "connection refused"}
		hr.Statuses["disk"] = &hoststatus.StatusRecord{Host: "web01", Test: "disk", Color: hoststatus.Green, Line1: "disk ok"}
	})

	It("matches everything with an empty filter", func() {
		f := boardhttp.ParseFilters(url.Values{})
		Expect(boardhttp.Match(f, hr, hr.Statuses["conn"])).To(BeTrue())
		Expect(boardhttp.Match(f, hr, hr.Statuses["disk"])).To(BeTrue())
	})

	It("filters by color", func() {
		f := boardhttp.ParseFilters(url.Values{"color": {"red"}})
		Expect(boardhttp.Match(f, hr, hr.Statuses["conn"])).To(BeTrue())
		Expect(boardhttp.Match(f, hr, hr.Statuses["disk"])).To(BeFalse())
	})

	It("filters by test glob", func() {
		f := boardhttp.ParseFilters(url.Values{"test": {"co*"}})
		Expect(boardhttp.Match(f, hr, hr.Statuses["conn"])).To(BeTrue())
		Expect(boardhttp.Match(f, hr, hr.Statuses["disk"])).To(BeFalse())
	})

	It("filters by a down= test pattern against the host's other tests", func() {
		f := boardhttp.ParseFilters(url.Values{"down": {"conn"}})
		Expect(boardhttp.Match(f, hr, hr.Statuses["disk"])).To(BeTrue())

		f2 := boardhttp.ParseFilters(url.Values{"down": {"disk"}})
		Expect(boardhttp.Match(f2, hr, hr.Statuses["conn"])).To(BeFalse())
	})

	It("formats a record as pipe-separated fields", func() {
		line := boardhttp.FormatRecord(hr, hr.Statuses["conn"], []string{"hostname", "testname", "color"})
		Expect(line).To(Equal("web01|conn|red"))
	})
})
