// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Resources   *PoolHandle `prefix:"R"`
	Owners      *PoolHandle `prefix:"O"`
	Rights      *PoolHandle `prefix:"A"`
	Balances    *PoolHandle `prefix:"B"`
	Tokens      *PoolHandle `prefix:"T"`
	IndexCounts *PoolHandle `prefix:"N"`
	FieldIndex  *PoolHandle `prefix:"F"`
	AuthorIndex *PoolHandle `prefix:"W"`
	YearIndex   *PoolHandle `prefix:"Y"`
	Seals       *PoolHandle `prefix:"S"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - the ledger state: one database, its pools and the single
// transaction used to change them
type Store struct {
	sync.Mutex
	db   *leveldb.DB
	trx  *transaction
	Pool pools
}

// Open - open up the database connection
//
// an empty name selects a non-persistent in-memory database
func Open(database string, readOnly bool) (*Store, error) {
	if "" == database {
		db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
		if nil != err {
			return nil, err
		}
		return newStore(db, false)
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return newStore(db, readOnly)
}

func newStore(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	}

	s := &Store{
		db:  db,
		trx: newTransaction(db, newCache()),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &PoolHandle{
			prefix:   prefixTag[0],
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return s, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Begin - start the one transaction of this store
//
// fails if the previous transaction was neither committed nor aborted
func (s *Store) Begin() (Transaction, error) {
	s.Lock()
	defer s.Unlock()
	if nil == s.db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if err := s.trx.begin(); nil != err {
		return nil, err
	}
	return s.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
