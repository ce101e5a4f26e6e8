// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource

import (
	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// Store - canonical id to resource mapping
type Store struct {
	resources *storage.PoolHandle
	rights    *rights.Manager
	index     *docindex.Index
	cipher    cipher.Cipher
}

// New - create a resource store
//
// creation also records the owner and indexes documents, so the rights
// manager and index given here must share the store's transaction
func New(store *storage.Store, r *rights.Manager, ix *docindex.Index, c cipher.Cipher) *Store {
	return &Store{
		resources: store.Pool.Resources,
		rights:    r,
		index:     ix,
		cipher:    c,
	}
}

// Exists - true if the id is taken
func (s *Store) Exists(trx storage.Transaction, id string) (bool, error) {
	return trx.Has(s.resources, []byte(id))
}

// Create - store a new resource owned by its creator
func (s *Store) Create(trx storage.Transaction, id string, content resourcerecord.Resource, creator string) error {
	if err := resourcerecord.ValidIdentifier(id); nil != err {
		return err
	}
	if nil == content {
		return fault.ErrZeroLengthContent
	}

	found, err := s.Exists(trx, id)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrResourceExists
	}

	packed, err := content.Pack()
	if nil != err {
		return err
	}

	if document, ok := content.(*resourcerecord.Document); ok {
		if err := s.index.Index(trx, id, document); nil != err {
			return err
		}
	}

	trx.Put(s.resources, []byte(id), packed)
	s.rights.SetInitialOwner(trx, id, creator)
	return nil
}

// Read - fetch a resource
func (s *Store) Read(trx storage.Transaction, id string) (resourcerecord.Resource, error) {
	packed, err := trx.Get(s.resources, []byte(id))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.ErrResourceNotFound
	}

	r, _, err := resourcerecord.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	return r, nil
}

// CreateEncrypted - store only the ciphertext of a new blob
func (s *Store) CreateEncrypted(trx storage.Transaction, id string, plaintext []byte, keyHandle string, creator string) error {
	if err := resourcerecord.ValidIdentifier(id); nil != err {
		return err
	}
	found, err := s.Exists(trx, id)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrResourceExists
	}

	ciphertext, algorithm, err := s.cipher.Encrypt(keyHandle, plaintext)
	if nil != err {
		return fault.ErrEncryptionFailed
	}

	blob := &resourcerecord.Blob{
		Content:   ciphertext,
		Algorithm: algorithm,
		KeyHandle: keyHandle,
	}
	return s.Create(trx, id, blob, creator)
}

// ReadEncrypted - recover the plaintext of an encrypted blob
//
// a handle other than the one used at creation always fails
func (s *Store) ReadEncrypted(trx storage.Transaction, id string, keyHandle string) ([]byte, error) {
	r, err := s.Read(trx, id)
	if nil != err {
		return nil, err
	}

	blob, ok := r.(*resourcerecord.Blob)
	if !ok || !blob.Encrypted() {
		return nil, fault.ErrNotEncrypted
	}
	if keyHandle != blob.KeyHandle {
		return nil, fault.ErrDecryptionFailed
	}

	plaintext, err := s.cipher.Decrypt(keyHandle, blob.Algorithm, blob.Content)
	if nil != err {
		return nil, fault.ErrDecryptionFailed
	}
	return plaintext, nil
}
