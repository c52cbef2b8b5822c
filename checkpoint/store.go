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

package checkpoint

import (
	"encoding/json"

	"github.com/nabbar/xymond/errors"
	libndb "github.com/nabbar/xymond/nutsdb"
)

const (
	ErrorEncode errors.CodeError = iota + errors.MinPkgCheckpoint
	ErrorDecode
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorEncode)
	errors.RegisterIdFctMessage(ErrorEncode, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorEncode:
		return "failed to encode checkpoint record"
	case ErrorDecode:
		return "failed to decode checkpoint record"
	}
	return ""
}

const (
	bucketStatus = "status"
	bucketAck    = "acklist"
	bucketTask   = "task"
	bucketAlert  = "alert"
)

// Store persists a Snapshot to an embedded nutsdb.Client, one bucket per
// record kind, keyed the way the original's `.acklist.`/`.task.` line
// prefixes separated concerns within a single flat file.
type Store struct {
	db libndb.Client
}

// NewStore returns a Store writing through db.
func NewStore(db libndb.Client) *Store {
	return &Store{db: db}
}

// SaveStatus upserts one status snapshot keyed by "host.test".
func (s *Store) SaveStatus(snap StatusSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return ErrorEncode.Error(err)
	}
	return s.db.Put(bucketStatus, snap.Host+"."+snap.Test, b, 0)
}

// DropStatus removes one status snapshot.
func (s *Store) DropStatus(host, test string) error {
	return s.db.Delete(bucketStatus, host+"."+test)
}

// SaveAck upserts one ack snapshot keyed by "host.test".
func (s *Store) SaveAck(snap AckSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return ErrorEncode.Error(err)
	}
	return s.db.Put(bucketAck, snap.Host+"."+snap.Test, b, 0)
}

// SaveTask upserts one scheduled-task snapshot keyed by its ID.
func (s *Store) SaveTask(snap TaskSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return ErrorEncode.Error(err)
	}
	return s.db.Put(bucketTask, snap.ID, b, 0)
}

// SaveAlert upserts one alert-manager alert snapshot keyed by "host.test",
// in the alert manager's own checkpoint (spec.md §4.12).
func (s *Store) SaveAlert(snap AlertSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return ErrorEncode.Error(err)
	}
	return s.db.Put(bucketAlert, snap.Host+"."+snap.Test, b, 0)
}

// Load rehydrates every record into a Snapshot.
func (s *Store) Load() (Snapshot, error) {
	var out Snapshot

	if err := s.db.ForEach(bucketStatus, func(e libndb.Entry) bool {
		var v StatusSnapshot
		if json.Unmarshal(e.Value, &v) == nil {
			out.Statuses = append(out.Statuses, v)
		}
		return true
	}); err != nil {
		return out, ErrorDecode.Error(err)
	}

	if err := s.db.ForEach(bucketAck, func(e libndb.Entry) bool {
		var v AckSnapshot
		if json.Unmarshal(e.Value, &v) == nil {
			out.Acks = append(out.Acks, v)
		}
		return true
	}); err != nil {
		return out, ErrorDecode.Error(err)
	}

	if err := s.db.ForEach(bucketTask, func(e libndb.Entry) bool {
		var v TaskSnapshot
		if json.Unmarshal(e.Value, &v) == nil {
			out.Tasks = append(out.Tasks, v)
		}
		return true
	}); err != nil {
		return out, ErrorDecode.Error(err)
	}

	if err := s.db.ForEach(bucketAlert, func(e libndb.Entry) bool {
		var v AlertSnapshot
		if json.Unmarshal(e.Value, &v) == nil {
			out.Alerts = append(out.Alerts, v)
		}
		return true
	}); err != nil {
		return out, ErrorDecode.Error(err)
	}

	return out, nil
}
