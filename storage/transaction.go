// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// Transaction - all changes to the ledger state are staged here and
// written as one batch on Commit
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB, cache Cache) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	return nil
}

// Put - stage a key/value pair, the value is copied
func (t *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	k := pool.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// PutN - stage a big endian uint64 value
func (t *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(pool, key, buffer)
}

// Delete - stage removal of a key
func (t *transaction) Delete(pool *PoolHandle, key []byte) {
	k := pool.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read a value, staged values take precedence
//
// returns nil for a missing key
func (t *transaction) Get(pool *PoolHandle, key []byte) ([]byte, error) {
	value, _, err := t.get(pool, key)
	return value, err
}

func (t *transaction) get(pool *PoolHandle, key []byte) ([]byte, bool, error) {
	k := pool.prefixKey(key)
	if value, deleted, found := t.cache.Get(string(k)); found {
		if deleted {
			return nil, false, nil
		}
		return value, true, nil
	}

	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	} else if nil != err {
		return nil, false, err
	}
	return value, true, nil
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (t *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, found, err := t.get(pool, key)
	if nil != err || !found {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.ProcessError("truncated record in pool: " + string([]byte{pool.prefix}))
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Has - check if a key exists
func (t *transaction) Has(pool *PoolHandle, key []byte) (bool, error) {
	_, found, err := t.get(pool, key)
	return found, err
}

// Commit - write the staged batch and end the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}
	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard everything staged and end the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

// need to hold the lock before calling this
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
