// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integrity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

func setup(t *testing.T) (*storage.Store, storage.Transaction) {
	store, err := storage.Open("", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	trx, err := store.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return store, trx
}

func TestSealIsSHA3(t *testing.T) {
	d := integrity.Seal([]byte(""))
	expected, _ := digest.FromString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	assert.Equal(t, expected, d, "wrong seal")
	assert.Equal(t, d, integrity.Seal([]byte("")), "seal not deterministic")
}

func TestVerifyAfterStoreSeal(t *testing.T) {
	store, trx := setup(t)
	defer store.Close()
	defer trx.Abort()

	v := integrity.New(store)

	content := []byte("the quick brown fox")
	d := v.StoreSeal(trx, content)
	assert.Equal(t, integrity.Seal(content), d, "stored digest differs from seal")

	outcome, err := v.Verify(trx, content)
	assert.Nil(t, err, "verify error")
	assert.Equal(t, integrity.MatchesStored, outcome, "wrong outcome")

	outcome, err = v.Verify(trx, []byte("the quick brown fox!"))
	assert.Nil(t, err, "verify error")
	assert.Equal(t, integrity.Unknown, outcome, "changed content should be unknown")
}

func TestVerifyTampered(t *testing.T) {
	store, trx := setup(t)
	defer store.Close()
	defer trx.Abort()

	v := integrity.New(store)

	content := []byte("original")
	d := integrity.Seal(content)
	trx.Put(store.Pool.Seals, d[:], []byte("corrupted"))

	outcome, err := v.Verify(trx, content)
	assert.Nil(t, err, "verify error")
	assert.Equal(t, integrity.Tampered, outcome, "wrong outcome")
}

func TestSealSurvivesCommit(t *testing.T) {
	store, trx := setup(t)
	defer store.Close()

	v := integrity.New(store)
	d := v.StoreSeal(trx, []byte("data"))
	assert.Nil(t, trx.Commit(), "commit error")

	trx, _ = store.Begin()
	defer trx.Abort()

	stored, err := v.Lookup(trx, d)
	assert.Nil(t, err, "lookup error")
	assert.Equal(t, []byte("data"), stored, "wrong sealed content")

	_, err = v.Lookup(trx, integrity.Seal([]byte("other")))
	assert.Equal(t, fault.ErrSealNotFound, err, "missing seal found")
}

func TestOutcomeText(t *testing.T) {
	for _, o := range []integrity.Outcome{integrity.Unknown, integrity.MatchesStored, integrity.Tampered} {
		buffer, err := json.Marshal(o)
		assert.Nil(t, err, "marshal error")

		var recovered integrity.Outcome
		err = json.Unmarshal(buffer, &recovered)
		assert.Nil(t, err, "unmarshal error")
		assert.Equal(t, o, recovered, "outcome not preserved")
	}
	assert.Equal(t, "MatchesStored", integrity.MatchesStored.String(), "wrong string")
	assert.Equal(t, "*Invalid*", integrity.Outcome(99).String(), "wrong string")
}
