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

package offload

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/nabbar/xymond/checkpoint"
	libcrp "github.com/nabbar/xymond/crypt"
	libftp "github.com/nabbar/xymond/ftpclient"
	"github.com/nabbar/xymond/runner"
	"github.com/nabbar/xymond/runner/ticker"
)

// Config declares the remote FTP destination for a periodic off-host
// checkpoint copy. Client is dialed and owned by the caller; a nil Client
// makes the writer a no-op tick, matching the "optional" framing of
// spec.md §4.11. A non-nil EncryptKey AES-GCM-seals the exported JSON
// before upload, disaster-recovery copies on a third-party FTP host being
// the one place spec.md §4.13's checkpoint contents leave the daemon's own
// process; the per-tick nonce is prepended to the uploaded body so a
// separate recovery tool can split it back out without a side channel.
type Config struct {
	Client     libftp.FTPClient
	RemotePath string
	EncryptKey *[32]byte
}

func encryptPayload(key [32]byte, p []byte) ([]byte, error) {
	nonce, err := libcrp.GenNonce()
	if err != nil {
		return nil, err
	}

	c, err := libcrp.New(key, nonce)
	if err != nil {
		return nil, err
	}

	return append(nonce[:], c.Encode(p)...), nil
}

// NewWriter returns a runner.Runner that, every period, exports store's
// full snapshot as JSON and uploads it to cfg's remote path via Stor,
// overwriting any previous copy. A failed export or upload is swallowed
// (logged by the caller's RecoveryCaller wrapping, if any triggers a
// panic) so a transient FTP outage never blocks the embedded store's own
// checkpoint cadence.
func NewWriter(store *checkpoint.Store, cfg Config, period time.Duration) runner.Runner {
	return ticker.New("checkpoint-offload", period, func(_ context.Context) {
		_ = tick(store, cfg)
	})
}

func tick(store *checkpoint.Store, cfg Config) error {
	if cfg.Client == nil {
		return nil
	}

	snap, err := store.Load()
	if err != nil {
		return ErrorEncode.Error(err)
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return ErrorEncode.Error(err)
	}

	if cfg.EncryptKey != nil {
		if b, err = encryptPayload(*cfg.EncryptKey, b); err != nil {
			return ErrorEncode.Error(err)
		}
	}

	if err := cfg.Client.Stor(cfg.RemotePath, bytes.NewReader(b)); err != nil {
		return ErrorUpload.Error(err)
	}
	return nil
}
