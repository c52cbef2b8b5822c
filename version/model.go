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

package version

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
	"time"

	hcversion "github.com/hashicorp/go-version"
)

type version struct {
	license     License
	pkg         string
	description string
	date        string
	time        time.Time
	build       string
	release     string
	author      string
	prefix      string
	root        any
	appIdOffset int
}

// NewVersion builds a Version from build-time metadata. date is parsed as
// RFC3339; an unparsable date falls back to time.Now(). root is any value
// whose package path is used to resolve GetRootPackagePath (e.g. an empty
// struct literal declared in the caller's own package).
func NewVersion(lic License, pkg, description, date, build, release, author, prefix string, root any, appIdOffset int) Version {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		t = time.Now()
	}

	return &version{
		license:     lic,
		pkg:         pkg,
		description: description,
		date:        date,
		time:        t,
		build:       build,
		release:     release,
		author:      author,
		prefix:      prefix,
		root:        root,
		appIdOffset: appIdOffset,
	}
}

func (v *version) GetPackage() string     { return v.pkg }
func (v *version) GetDescription() string { return v.description }
func (v *version) GetAuthor() string      { return v.author }
func (v *version) GetPrefix() string      { return v.prefix }
func (v *version) GetBuild() string       { return v.build }
func (v *version) GetRelease() string     { return v.release }
func (v *version) GetDate() string        { return v.time.Format(time.RFC3339) }
func (v *version) GetTime() time.Time     { return v.time }

func (v *version) GetAppId() string {
	h := 14695981039346656037 ^ uint64(v.appIdOffset)
	for _, c := range v.build + v.release {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return fmt.Sprintf("%s-%016x", v.prefix, h)
}

func (v *version) GetRootPackagePath() string {
	if v.root == nil {
		return ""
	}
	t := reflect.TypeOf(v.root)
	if t == nil {
		return ""
	}
	return path.Clean(t.PkgPath())
}

func (v *version) GetLicenseName() string {
	return v.license.name()
}

func (v *version) GetLicenseLegal() string {
	return v.license.legal()
}

func (v *version) GetLicenseBoiler(extra ...License) string {
	parts := []string{v.license.boiler()}
	for _, l := range extra {
		parts = append(parts, l.boiler())
	}
	return strings.Join(parts, "\n\n")
}

func (v *version) GetLicenseFull() string {
	return strings.Join([]string{v.GetLicenseName(), v.GetLicenseBoiler(), v.GetLicenseLegal()}, "\n\n")
}

func (v *version) GetHeader() string {
	return fmt.Sprintf("%s %s (build %s, %s)\n%s\nby %s, licensed under %s",
		v.pkg, v.release, v.build, v.GetDate(), v.description, v.author, v.GetLicenseName())
}

func (v *version) GetInfo() string {
	return fmt.Sprintf("%s\nruntime: %s/%s %s\ngo: %s",
		v.GetHeader(), runtime.GOOS, runtime.GOARCH, v.GetAppId(), runtime.Version())
}

func (v *version) CheckGo(version, constraint string) error {
	if version == "" {
		return fmt.Errorf("empty required go version")
	}
	if constraint == "" {
		return fmt.Errorf("empty version constraint operator")
	}

	req, err := hcversion.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid required go version %q: %w", version, err)
	}

	cur, err := hcversion.NewVersion(strings.TrimPrefix(runtime.Version(), "go"))
	if err != nil {
		return fmt.Errorf("cannot parse running go version %q: %w", runtime.Version(), err)
	}

	var ok bool
	switch constraint {
	case ">=":
		ok = cur.GreaterThanOrEqual(req)
	case ">":
		ok = cur.GreaterThan(req)
	case "<=":
		ok = cur.LessThanOrEqual(req)
	case "<":
		ok = cur.LessThan(req)
	case "==":
		ok = cur.Equal(req)
	case "~>":
		c, cerr := hcversion.NewConstraint("~> " + version)
		if cerr != nil {
			return fmt.Errorf("invalid constraint: %w", cerr)
		}
		ok = c.Check(cur)
	default:
		return fmt.Errorf("unknown constraint operator %q", constraint)
	}

	if !ok {
		return fmt.Errorf("running go version %s does not satisfy %s %s", cur.String(), constraint, req.String())
	}

	return nil
}
