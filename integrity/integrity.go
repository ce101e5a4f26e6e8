// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integrity

import (
	"bytes"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// Verifier - seals content by digest and checks content against the seals
type Verifier struct {
	seals *storage.PoolHandle
}

// New - create a verifier over the seal pool of a store
func New(store *storage.Store) *Verifier {
	return &Verifier{
		seals: store.Pool.Seals,
	}
}

// Seal - digest of the content
func Seal(content []byte) digest.Digest {
	return digest.NewDigest(content)
}

// StoreSeal - persist content under its own digest
//
// sealing identical content again rewrites the same record
func (v *Verifier) StoreSeal(trx storage.Transaction, content []byte) digest.Digest {
	d := Seal(content)
	trx.Put(v.seals, d[:], content)
	return d
}

// Verify - compare content with whatever is sealed at its digest
func (v *Verifier) Verify(trx storage.Transaction, content []byte) (Outcome, error) {
	d := Seal(content)
	stored, err := trx.Get(v.seals, d[:])
	if nil != err {
		return Unknown, err
	}
	if nil == stored {
		return Unknown, nil
	}

	// only reachable on a digest collision or a corrupted record
	if !bytes.Equal(stored, content) {
		return Tampered, nil
	}
	return MatchesStored, nil
}

// Lookup - fetch the sealed content for a digest
func (v *Verifier) Lookup(trx storage.Transaction, d digest.Digest) ([]byte, error) {
	stored, err := trx.Get(v.seals, d[:])
	if nil != err {
		return nil, err
	}
	if nil == stored {
		return nil, fault.ErrSealNotFound
	}
	return stored, nil
}
