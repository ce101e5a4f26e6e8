// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/accesstoken"
	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/resource"
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
	"github.com/FlamoDynamo/demo-0002-algolib/tokens"
)

// the action checked by gated reads
const ReadAction = "read"

const maxUserLength = 255

// Engine - composes the registry components over one store
type Engine struct {
	sync.Mutex

	log *logger.L

	resources    *resource.Store
	rights       *rights.Manager
	tokens       *tokens.Ledger
	index        *docindex.Index
	integrity    *integrity.Verifier
	accessTokens *accesstoken.Registry

	begin func() (storage.Transaction, error)
	clock func() time.Time
}

// New - create an engine, the cipher serves encrypted resources
func New(store *storage.Store, c cipher.Cipher) *Engine {
	r := rights.New(store)
	ix := docindex.New(store)

	return &Engine{
		log:          logger.New("registry"),
		resources:    resource.New(store, r, ix, c),
		rights:       r,
		tokens:       tokens.New(store),
		index:        ix,
		integrity:    integrity.New(store),
		accessTokens: accesstoken.New(store),
		begin:        store.Begin,
		clock:        time.Now,
	}
}

// update - run one state transition, committing only on success
func (e *Engine) update(operation string, fn func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", operation, err)
		return err
	}

	if err := fn(trx); nil != err {
		trx.Abort()
		e.log.Debugf("%s: rejected: %s", operation, err)
		return err
	}

	if err := trx.Commit(); nil != err {
		e.log.Errorf("%s: commit error: %s", operation, err)
		return fault.ProcessError("commit failed: " + err.Error())
	}
	e.log.Debugf("%s: committed", operation)
	return nil
}

// view - run a read only query, nothing is ever committed
func (e *Engine) view(operation string, fn func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", operation, err)
		return err
	}
	defer trx.Abort()

	return fn(trx)
}

// identities are opaque but are stored inside NUL separated keys
func validUser(user string) error {
	if 0 == len(user) || len(user) > maxUserLength {
		return fault.ErrInvalidUser
	}
	if strings.IndexByte(user, 0) >= 0 {
		return fault.ErrInvalidUser
	}
	return nil
}

func validUsers(users ...string) error {
	for _, user := range users {
		if err := validUser(user); nil != err {
			return err
		}
	}
	return nil
}
