// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"

	"github.com/FlamoDynamo/demo-0002-algolib/accesstoken"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// IssueAccessToken - record a new token for a user
func (e *Engine) IssueAccessToken(user string, ttl time.Duration) (string, time.Time, error) {
	if err := validUser(user); nil != err {
		return "", time.Time{}, err
	}
	token := ""
	expires := time.Time{}
	err := e.update("IssueAccessToken", func(trx storage.Transaction) error {
		var err error
		token, expires, err = e.accessTokens.Issue(trx, user, ttl, e.clock())
		return err
	})
	if nil != err {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// VerifyAccessToken - holder of an issued, live token
func (e *Engine) VerifyAccessToken(token string) (*accesstoken.Holder, error) {
	var holder *accesstoken.Holder
	err := e.view("VerifyAccessToken", func(trx storage.Transaction) error {
		var err error
		holder, err = e.accessTokens.Verify(trx, token, e.clock())
		return err
	})
	if nil != err {
		return nil, err
	}
	return holder, nil
}

// RevokeAccessToken - remove a token, only its holder may do this
func (e *Engine) RevokeAccessToken(token string, actingUser string) error {
	return e.update("RevokeAccessToken", func(trx storage.Transaction) error {
		return e.accessTokens.Revoke(trx, token, actingUser)
	})
}

// PurgeExpiredAccessTokens - delete up to limit expired token records
func (e *Engine) PurgeExpiredAccessTokens(limit int) (int, error) {
	n := 0
	err := e.update("PurgeExpiredAccessTokens", func(trx storage.Transaction) error {
		var err error
		n, err = e.accessTokens.Purge(trx, e.clock(), limit)
		return err
	})
	if nil != err {
		return 0, err
	}
	return n, nil
}

// ResolveCaller - identity for a call that names a caller, a token or both
//
// a token must verify and, when a caller is also named, belong to it
func (e *Engine) ResolveCaller(caller string, token string) (string, error) {
	if "" == token {
		return caller, validUser(caller)
	}
	holder, err := e.VerifyAccessToken(token)
	if nil != err {
		return "", err
	}
	if "" != caller && caller != holder.User {
		return "", fault.ErrNotTokenHolder
	}
	return holder.User, nil
}
