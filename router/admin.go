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

package router

import (
	"context"
	"strings"

	"github.com/nabbar/xymond/registry"
)

// NewDropHandler serves `drop host [test]` (spec.md §4.5): drops one test
// if given, otherwise the whole host.
func NewDropHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		fields := strings.Fields(string(req.Body))
		if len(fields) < 2 {
			return Response{}, nil
		}
		if len(fields) >= 3 {
			daemon.DropTest(fields[1], fields[2])
		} else {
			daemon.DropHost(fields[1])
		}
		return Response{}, nil
	}
}

// NewRenameHandler serves `rename host newhost [test newtest]` (spec.md
// §4.5): renames the host, or one test on it, in place.
func NewRenameHandler(daemon *registry.Daemon) Handler {
	return func(_ context.Context, req Request) (Response, error) {
		fields := strings.Fields(string(req.Body))
		if len(fields) < 3 {
			return Response{}, nil
		}
		if len(fields) >= 5 {
			daemon.RenameTest(fields[1], fields[3], fields[4])
		} else {
			daemon.RenameHost(fields[1], fields[2])
		}
		return Response{}, nil
	}
}
