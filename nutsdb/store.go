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

// Package nutsdb wraps an embedded nutsdb instance behind a small
// bucket/key/value contract, mirroring the teacher's own `nutsdb/`
// package referenced by config/components/nutsdb (`libndb.NutsDB`,
// `.Listen`/`.Shutdown`/`.IsRunning`/`.Client`) which was not included in
// the retrieved pack. checkpoint/ builds the daemon/alert-manager
// checkpoint record shape (spec.md §4.13, §4.12) on top of Client.
package nutsdb

import (
	"context"
	"sync"
	"time"

	libndb "github.com/nutsdb/nutsdb"

	"github.com/nabbar/xymond/errors"
	"github.com/nabbar/xymond/runner"
)

const (
	ErrorStoreOpen errors.CodeError = iota + errors.MinPkgNutsDB
	ErrorStoreClosed
	ErrorBucketMissing
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorStoreOpen)
	errors.RegisterIdFctMessage(ErrorStoreOpen, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorStoreOpen:
		return "embedded nutsdb store failed to open"
	case ErrorStoreClosed:
		return "nutsdb store is not open"
	case ErrorBucketMissing:
		return "requested key was not found in the bucket"
	}
	return ""
}

// Entry is one stored record, returned by ForEach.
type Entry struct {
	Key   string
	Value []byte
}

// Client is the read/write surface checkpoint/ uses: one flat
// bucket/key/value store, keys being dotted host.test identifiers and
// values the serialized checkpoint record.
type Client interface {
	Put(bucket, key string, value []byte, ttl time.Duration) error
	Get(bucket, key string) ([]byte, error)
	Delete(bucket, key string) error
	ForEach(bucket string, fn func(Entry) bool) error
}

// Store is the lifecycle surface around the embedded database file.
type Store interface {
	runner.Runner
	Client
}

type store struct {
	mu      sync.Mutex
	dir     string
	db      *libndb.DB
	started time.Time
}

// New returns a Store persisting to dir (created on Start if absent).
func New(dir string) Store {
	return &store{dir: dir}
}

func (s *store) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := libndb.Open(libndb.DefaultOptions, libndb.WithDir(s.dir))
	if err != nil {
		return ErrorStoreOpen.Error(err)
	}

	s.db = db
	s.started = time.Now()
	return nil
}

func (s *store) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.started = time.Time{}
	if err != nil {
		return ErrorStoreClosed.Error(err)
	}
	return nil
}

func (s *store) Restart(ctx context.Context) error {
	if err := s.Stop(ctx); err != nil {
		return err
	}
	return s.Start(ctx)
}

func (s *store) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

func (s *store) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0
	}
	return time.Since(s.started)
}

func (s *store) Put(bucket, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return ErrorStoreClosed.Error(nil)
	}

	return db.Update(func(tx *libndb.Tx) error {
		var seconds uint32
		if ttl > 0 {
			seconds = uint32(ttl.Seconds())
		}
		return tx.Put(bucket, []byte(key), value, seconds)
	})
}

func (s *store) Get(bucket, key string) ([]byte, error) {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return nil, ErrorStoreClosed.Error(nil)
	}

	var out []byte
	err := db.View(func(tx *libndb.Tx) error {
		e, e2 := tx.Get(bucket, []byte(key))
		if e2 != nil {
			return e2
		}
		out = append([]byte(nil), e.Value...)
		return nil
	})
	if err != nil {
		return nil, ErrorBucketMissing.Error(err)
	}
	return out, nil
}

func (s *store) Delete(bucket, key string) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return ErrorStoreClosed.Error(nil)
	}

	return db.Update(func(tx *libndb.Tx) error {
		return tx.Delete(bucket, []byte(key))
	})
}

func (s *store) ForEach(bucket string, fn func(Entry) bool) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return ErrorStoreClosed.Error(nil)
	}

	return db.View(func(tx *libndb.Tx) error {
		entries, err := tx.GetAll(bucket)
		if err != nil {
			if err == libndb.ErrBucketEmpty || err == libndb.ErrBucketNotFound {
				return nil
			}
			return err
		}
		for _, e := range entries {
			if !fn(Entry{Key: string(e.Key), Value: append([]byte(nil), e.Value...)}) {
				break
			}
		}
		return nil
	})
}
