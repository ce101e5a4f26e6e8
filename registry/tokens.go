// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// BuyTokens - credit a user, funding is validated by the caller
func (e *Engine) BuyTokens(user string, amount uint64) (uint64, error) {
	if err := validUser(user); nil != err {
		return 0, err
	}
	balance := uint64(0)
	err := e.update("BuyTokens", func(trx storage.Transaction) error {
		var err error
		balance, err = e.tokens.Purchase(trx, user, amount)
		return err
	})
	if nil != err {
		return 0, err
	}
	return balance, nil
}

// TransferTokens - move tokens between users
func (e *Engine) TransferTokens(from string, to string, amount uint64) error {
	if err := validUsers(from, to); nil != err {
		return err
	}
	return e.update("TransferTokens", func(trx storage.Transaction) error {
		return e.tokens.Transfer(trx, from, to, amount)
	})
}

// Balance - current balance, zero for an unseen user
func (e *Engine) Balance(user string) (uint64, error) {
	balance := uint64(0)
	err := e.view("Balance", func(trx storage.Transaction) error {
		var err error
		balance, err = e.tokens.Balance(trx, user)
		return err
	})
	return balance, err
}
