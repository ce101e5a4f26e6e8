// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// Access - gated read that pays tokenCost
//
// the resource must exist, the user must hold read (or own it) and
// the balance must cover the cost; the debit is committed only when
// all three hold
func (e *Engine) Access(id string, user string, tokenCost uint64) (resourcerecord.Resource, uint64, error) {
	if err := validUser(user); nil != err {
		return nil, 0, err
	}

	var r resourcerecord.Resource
	remaining := uint64(0)
	err := e.update("Access", func(trx storage.Transaction) error {
		var err error
		remaining, err = e.gate(trx, id, user, tokenCost)
		if nil != err {
			return err
		}
		r, err = e.resources.Read(trx, id)
		return err
	})
	if nil != err {
		return nil, 0, err
	}
	return r, remaining, nil
}

// AccessEncrypted - gated read of an encrypted blob
//
// a decryption failure aborts the call so nothing is debited
func (e *Engine) AccessEncrypted(id string, user string, tokenCost uint64, keyHandle string) ([]byte, uint64, error) {
	if err := validUser(user); nil != err {
		return nil, 0, err
	}

	var plaintext []byte
	remaining := uint64(0)
	err := e.update("AccessEncrypted", func(trx storage.Transaction) error {
		var err error
		remaining, err = e.gate(trx, id, user, tokenCost)
		if nil != err {
			return err
		}
		plaintext, err = e.resources.ReadEncrypted(trx, id, keyHandle)
		return err
	})
	if nil != err {
		return nil, 0, err
	}
	return plaintext, remaining, nil
}

// existence, then rights, then the debit
func (e *Engine) gate(trx storage.Transaction, id string, user string, tokenCost uint64) (uint64, error) {
	found, err := e.resources.Exists(trx, id)
	if nil != err {
		return 0, err
	}
	if !found {
		return 0, fault.ErrResourceNotFound
	}

	decision, err := e.rights.Check(trx, id, user, ReadAction)
	if nil != err {
		return 0, err
	}
	if !decision.Allowed() {
		return 0, fault.ErrAccessDenied
	}

	return e.tokens.Spend(trx, user, tokenCost)
}
