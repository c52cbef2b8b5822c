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

package wire

import "errors"

// ErrOversize is returned when a declared or observed message size exceeds
// the configured ceiling (spec.md §4.1, §7 OversizeMessage). The connection
// is expected to stay open only long enough to drain the declared length.
var ErrOversize = errors.New("wire: message exceeds size ceiling")

// ErrProtocol is returned for malformed framing headers (bad size:/compress:
// line, malformed extcombo offsets). Spec.md §7 ProtocolError.
var ErrProtocol = errors.New("wire: malformed framing")

// ErrEmptyMessage is returned when a frame contains no verb token at all.
var ErrEmptyMessage = errors.New("wire: empty message")

// DefaultCeiling is the default hard ceiling on one logical message, 1 MiB,
// matching the shared-memory channel slot budget used downstream (spec §4.7).
const DefaultCeiling = 1 << 20
