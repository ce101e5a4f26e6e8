// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// SetOwner - transfer ownership, only the current owner may do this
func (e *Engine) SetOwner(id string, newOwner string, actingUser string) error {
	if err := validUsers(newOwner, actingUser); nil != err {
		return err
	}
	return e.update("SetOwner", func(trx storage.Transaction) error {
		return e.rights.SetOwner(trx, id, newOwner, actingUser)
	})
}

// Owner - current owner of a resource
func (e *Engine) Owner(id string) (string, error) {
	owner := ""
	err := e.view("Owner", func(trx storage.Transaction) error {
		var err error
		owner, err = e.rights.Owner(trx, id)
		return err
	})
	return owner, err
}

// Grant - add actions to a user's right set, only the owner may do this
func (e *Engine) Grant(id string, user string, actions []string, actingUser string) error {
	if err := validUsers(user, actingUser); nil != err {
		return err
	}
	return e.update("Grant", func(trx storage.Transaction) error {
		return e.rights.Grant(trx, id, user, actions, actingUser)
	})
}

// Rights - the sorted right set of a user on a resource
func (e *Engine) Rights(id string, user string) ([]string, error) {
	var actions []string
	err := e.view("Rights", func(trx storage.Transaction) error {
		var err error
		actions, err = e.rights.Rights(trx, id, user)
		return err
	})
	if nil != err {
		return nil, err
	}
	return actions, nil
}

// Check - decision for an action on a resource
func (e *Engine) Check(id string, user string, action string) (rights.Decision, error) {
	decision := rights.Denied
	err := e.view("Check", func(trx storage.Transaction) error {
		var err error
		decision, err = e.rights.Check(trx, id, user, action)
		return err
	})
	return decision, err
}
