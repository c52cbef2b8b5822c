/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package version describes the build/release identity carried by every
// daemon binary (xymond, xymonproxy) and surfaced on the "ping"/"proxyping"
// wire replies (see network protocol handlers in socket/ and proxy/).
package version

import "time"

// License is one of the small set of license identifiers this project
// knows how to render a boilerplate/full text for.
type License uint8

const (
	License_MIT License = iota
	License_Apache_v2
	License_GNU_GPL_v3
	License_GNU_LGPL_v3
	License_BSD_3_Clause
)

// Version exposes build/release metadata and the Go-version compatibility
// check used at startup by cmd/xymond and cmd/xymonproxy.
type Version interface {
	GetPackage() string
	GetDescription() string
	GetAuthor() string
	GetPrefix() string
	GetBuild() string
	GetRelease() string
	GetAppId() string
	GetDate() string
	GetTime() time.Time
	GetRootPackagePath() string

	GetLicenseName() string
	GetLicenseLegal() string
	GetLicenseBoiler(extra ...License) string
	GetLicenseFull() string

	GetHeader() string
	GetInfo() string

	// CheckGo validates the running Go toolchain version against a
	// constraint string understood by hashicorp/go-version
	// (">=", ">", "<=", "<", "==", "~>"). An empty version or unknown
	// constraint returns an error.
	CheckGo(version, constraint string) error
}
