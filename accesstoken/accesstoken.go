// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesstoken

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/mr-tron/base58"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// stops a purge scan once enough records are deleted
const errPurgeLimit = fault.ProcessError("purge limit reached")

// sizes and limits
const (
	tokenLength       = 24
	MaximumTimeToLive = 30 * 24 * time.Hour
)

// Registry - issued access tokens
//
// a token is valid only while its record exists and has not expired,
// nothing is ever derived from the clock alone
type Registry struct {
	tokens *storage.PoolHandle
}

// Holder - the decoded token record
type Holder struct {
	User    string    `json:"user"`
	Expires time.Time `json:"expires"`
}

// New - create a registry over the token pool of a store
func New(store *storage.Store) *Registry {
	return &Registry{
		tokens: store.Pool.Tokens,
	}
}

// Issue - create and record a new random token for a user
func (r *Registry) Issue(trx storage.Transaction, user string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if ttl <= 0 || ttl > MaximumTimeToLive {
		return "", time.Time{}, fault.ErrInvalidTimeToLive
	}

	raw := make([]byte, tokenLength)
	if _, err := rand.Read(raw); nil != err {
		return "", time.Time{}, err
	}

	expires := now.Add(ttl).Truncate(time.Second)

	value := make([]byte, 0, len(user)+9)
	value = append(value, user...)
	value = append(value, 0x00)
	expiry := make([]byte, 8)
	binary.BigEndian.PutUint64(expiry, uint64(expires.Unix()))
	value = append(value, expiry...)

	trx.Put(r.tokens, raw, value)
	return base58.Encode(raw), expires, nil
}

// Verify - token must have been issued, not revoked and not expired
func (r *Registry) Verify(trx storage.Transaction, token string, now time.Time) (*Holder, error) {
	_, holder, err := r.lookup(trx, token)
	if nil != err {
		return nil, err
	}
	if !now.Before(holder.Expires) {
		return nil, fault.ErrTokenExpired
	}
	return holder, nil
}

// Revoke - remove a token, only its holder may do this
//
// an expired token can still be revoked to clear its record
func (r *Registry) Revoke(trx storage.Transaction, token string, actingUser string) error {
	raw, holder, err := r.lookup(trx, token)
	if nil != err {
		return err
	}
	if holder.User != actingUser {
		return fault.ErrNotTokenHolder
	}
	trx.Delete(r.tokens, raw)
	return nil
}

func (r *Registry) lookup(trx storage.Transaction, token string) ([]byte, *Holder, error) {
	raw, err := base58.Decode(token)
	if nil != err || tokenLength != len(raw) {
		return nil, nil, fault.ErrInvalidToken
	}

	value, err := trx.Get(r.tokens, raw)
	if nil != err {
		return nil, nil, err
	}
	if nil == value {
		return nil, nil, fault.ErrTokenNotFound
	}

	holder, err := unpackHolder(value)
	if nil != err {
		return nil, nil, err
	}
	return raw, holder, nil
}

// Purge - delete up to limit committed tokens that have expired
//
// the scan covers committed records only so it must run in a
// transaction with no staged token writes; live tokens are skipped, so
// a result below limit means no expired record is left
func (r *Registry) Purge(trx storage.Transaction, now time.Time, limit int) (int, error) {
	if limit <= 0 {
		return 0, fault.ErrInvalidCount
	}

	n := 0
	err := r.tokens.Map(nil, func(key []byte, value []byte) error {
		holder, err := unpackHolder(value)
		if nil != err {
			return err
		}
		if now.Before(holder.Expires) {
			return nil
		}
		trx.Delete(r.tokens, key)
		n += 1
		if n >= limit {
			return errPurgeLimit
		}
		return nil
	})
	if nil != err && errPurgeLimit != err {
		return n, err
	}
	return n, nil
}

// user ++ 0x00 ++ expiry(8 BE)
func unpackHolder(value []byte) (*Holder, error) {
	n := len(value) - 9
	if n < 0 || 0x00 != value[n] {
		return nil, fault.ProcessError("corrupt access token record")
	}

	return &Holder{
		User:    string(value[:n]),
		Expires: time.Unix(int64(binary.BigEndian.Uint64(value[n+1:])), 0),
	}, nil
}
