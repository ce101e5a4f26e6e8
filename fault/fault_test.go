// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

var (
	ErrBalanceOne    = fault.BalanceError("balance one")
	ErrBalanceTwo    = fault.BalanceError("balance two")
	ErrCryptoOne     = fault.CryptoError("crypto one")
	ErrCryptoTwo     = fault.CryptoError("crypto two")
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrPermissionTwo = fault.PermissionError("permission two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		balance    bool
		crypto     bool
		exists     bool
		invalid    bool
		notFound   bool
		permission bool
		process    bool
	}{
		{ErrBalanceOne, true, false, false, false, false, false, false},
		{ErrBalanceTwo, true, false, false, false, false, false, false},
		{ErrCryptoOne, false, true, false, false, false, false, false},
		{ErrCryptoTwo, false, true, false, false, false, false, false},
		{ErrExistsOne, false, false, true, false, false, false, false},
		{ErrExistsTwo, false, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false},
		{ErrPermissionOne, false, false, false, false, false, true, false},
		{ErrPermissionTwo, false, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrBalance(err) != e.balance {
			t.Errorf("%d: expected 'balance' == %v for err = %v", i, e.balance, err)
		}
		if fault.IsErrCrypto(err) != e.crypto {
			t.Errorf("%d: expected 'crypto' == %v for err = %v", i, e.crypto, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the registry errors callers must tell apart
func TestRegistryErrorsAreDistinct(t *testing.T) {
	if !fault.IsErrNotFound(fault.ErrResourceNotFound) {
		t.Errorf("resource not found is not a not found error")
	}
	if !fault.IsErrPermission(fault.ErrAccessDenied) {
		t.Errorf("access denied is not a permission error")
	}
	if !fault.IsErrBalance(fault.ErrInsufficientBalance) {
		t.Errorf("insufficient balance is not a balance error")
	}
	if !fault.IsErrInvalid(fault.ErrInvalidAmount) {
		t.Errorf("invalid amount is not an invalid error")
	}
	if !fault.IsErrExists(fault.ErrResourceExists) {
		t.Errorf("resource exists is not an exists error")
	}
	if !fault.IsErrCrypto(fault.ErrDecryptionFailed) {
		t.Errorf("decryption failed is not a crypto error")
	}
}
