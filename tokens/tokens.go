// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// Ledger - per user token balances
//
// balances are unsigned and every debit is checked before it is staged
type Ledger struct {
	balances *storage.PoolHandle
}

// New - create a ledger over the balance pool of a store
func New(store *storage.Store) *Ledger {
	return &Ledger{
		balances: store.Pool.Balances,
	}
}

// Balance - current balance, zero for an unseen user
func (l *Ledger) Balance(trx storage.Transaction, user string) (uint64, error) {
	balance, _, err := trx.GetN(l.balances, []byte(user))
	return balance, err
}

// Purchase - credit a user with a strictly positive amount
func (l *Ledger) Purchase(trx storage.Transaction, user string, amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}
	balance, err := l.Balance(trx, user)
	if nil != err {
		return 0, err
	}
	newBalance, err := credit(balance, amount)
	if nil != err {
		return 0, err
	}
	trx.PutN(l.balances, []byte(user), newBalance)
	return newBalance, nil
}

// Transfer - move an amount between users, both sides or neither
func (l *Ledger) Transfer(trx storage.Transaction, from string, to string, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	fromBalance, err := l.Balance(trx, from)
	if nil != err {
		return err
	}
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}

	if from == to {
		return nil
	}

	toBalance, err := l.Balance(trx, to)
	if nil != err {
		return err
	}
	toBalance, err = credit(toBalance, amount)
	if nil != err {
		return err
	}

	trx.PutN(l.balances, []byte(from), fromBalance-amount)
	trx.PutN(l.balances, []byte(to), toBalance)
	return nil
}

// Spend - debit a user for gated access, a zero cost is allowed
func (l *Ledger) Spend(trx storage.Transaction, user string, amount uint64) (uint64, error) {
	balance, err := l.Balance(trx, user)
	if nil != err {
		return 0, err
	}
	if balance < amount {
		return balance, fault.ErrInsufficientBalance
	}
	if 0 == amount {
		return balance, nil
	}
	balance -= amount
	trx.PutN(l.balances, []byte(user), balance)
	return balance, nil
}

func credit(balance uint64, amount uint64) (uint64, error) {
	total := balance + amount
	if total < balance {
		return 0, fault.ErrBalanceOverflow
	}
	return total, nil
}
