// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// StoreDataHash - seal content and return its digest
func (e *Engine) StoreDataHash(content []byte) (digest.Digest, error) {
	if 0 == len(content) {
		return digest.Digest{}, fault.ErrZeroLengthContent
	}
	var d digest.Digest
	err := e.update("StoreDataHash", func(trx storage.Transaction) error {
		d = e.integrity.StoreSeal(trx, content)
		return nil
	})
	return d, err
}

// VerifyDataIntegrity - compare content with the sealed records
func (e *Engine) VerifyDataIntegrity(content []byte) (integrity.Outcome, error) {
	outcome := integrity.Unknown
	err := e.view("VerifyDataIntegrity", func(trx storage.Transaction) error {
		var err error
		outcome, err = e.integrity.Verify(trx, content)
		return err
	})
	return outcome, err
}

// SealedContent - content previously sealed under a digest
func (e *Engine) SealedContent(d digest.Digest) ([]byte, error) {
	var content []byte
	err := e.view("SealedContent", func(trx storage.Transaction) error {
		var err error
		content, err = e.integrity.Lookup(trx, d)
		return err
	})
	if nil != err {
		return nil, err
	}
	return content, nil
}
