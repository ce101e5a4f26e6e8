// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - one prefixed table in the database
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the one byte table prefix
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Count - number of committed records whose key starts with the
// given prefix (nil counts the whole pool)
func (p *PoolHandle) Count(keyPrefix []byte) (int, error) {
	iter := p.database.NewIterator(ldb_util.BytesPrefix(p.prefixKey(keyPrefix)), nil)
	n := 0
	for iter.Next() {
		n += 1
	}
	iter.Release()
	return n, iter.Error()
}

// Fetch - return up to count committed elements whose key starts
// with the given prefix, keys are returned without the pool prefix
func (p *PoolHandle) Fetch(keyPrefix []byte, count int) ([]Element, error) {
	iter := p.database.NewIterator(ldb_util.BytesPrefix(p.prefixKey(keyPrefix)), nil)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	return results, iter.Error()
}

// Map - run f on each committed element whose key starts with the
// given prefix, stopping at the first error f returns
func (p *PoolHandle) Map(keyPrefix []byte, f func(key []byte, value []byte) error) error {
	iter := p.database.NewIterator(ldb_util.BytesPrefix(p.prefixKey(keyPrefix)), nil)

	var err error
iterating:
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
