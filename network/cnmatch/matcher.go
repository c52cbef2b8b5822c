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

package cnmatch

import (
	"strings"

	libldap "github.com/nabbar/xymond/ldap"
)

// Matcher reports whether a verified client certificate's common name is
// pinned to an authorized identity. A nil cn or an empty Matcher always
// denies, so a misconfigured pinning layer fails closed.
type Matcher interface {
	Allow(cn string) bool
}

// StaticList pins a fixed set of common names, case-insensitively, with
// no directory round-trip — the simplest case spec.md §4.11 allows.
type StaticList map[string]struct{}

// NewStaticList builds a StaticList from the given common names.
func NewStaticList(cns ...string) StaticList {
	s := make(StaticList, len(cns))
	for _, cn := range cns {
		s[strings.ToLower(strings.TrimSpace(cn))] = struct{}{}
	}
	return s
}

// Allow reports whether cn is one of the pinned names.
func (s StaticList) Allow(cn string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(cn))]
	return ok
}

// DirectoryMatcher pins a CN by requiring it name a real user in an LDAP
// directory and, if Groups is non-empty, that the user be a member of at
// least one of them.
type DirectoryMatcher struct {
	Helper *libldap.HelperLDAP
	Groups []string
}

// NewDirectoryMatcher returns a Matcher backed by helper, optionally
// restricted to members of groups.
func NewDirectoryMatcher(helper *libldap.HelperLDAP, groups ...string) *DirectoryMatcher {
	return &DirectoryMatcher{Helper: helper, Groups: groups}
}

// Allow looks cn up as an LDAP username; a lookup error or a missing user
// denies, and the optional group membership check is an additional gate,
// not a substitute.
func (d *DirectoryMatcher) Allow(cn string) bool {
	if d == nil || d.Helper == nil || cn == "" {
		return false
	}

	if _, err := d.Helper.UserInfo(cn); err != nil {
		return false
	}

	if len(d.Groups) == 0 {
		return true
	}

	ok, err := d.Helper.UserIsInGroup(cn, d.Groups)
	if err != nil {
		return false
	}
	return ok
}
