// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rights

import (
	"sort"
	"strings"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
	"github.com/FlamoDynamo/demo-0002-algolib/util"
)

// limits on action tags
const (
	maxActionLength = 64
	maxActions      = 64
)

// Manager - ownership and per user rights of resources
type Manager struct {
	owners *storage.PoolHandle
	rights *storage.PoolHandle
}

// New - create a manager over the owner and rights pools of a store
func New(store *storage.Store) *Manager {
	return &Manager{
		owners: store.Pool.Owners,
		rights: store.Pool.Rights,
	}
}

// SetInitialOwner - record the creator of a new resource
//
// only the resource creation path calls this, so no checks are made
func (m *Manager) SetInitialOwner(trx storage.Transaction, id string, creator string) {
	trx.Put(m.owners, []byte(id), []byte(creator))
}

// Owner - current owner of a resource
func (m *Manager) Owner(trx storage.Transaction, id string) (string, error) {
	owner, err := trx.Get(m.owners, []byte(id))
	if nil != err {
		return "", err
	}
	if nil == owner {
		return "", fault.ErrResourceNotFound
	}
	return string(owner), nil
}

// SetOwner - transfer ownership, the acting user must be the current owner
func (m *Manager) SetOwner(trx storage.Transaction, id string, newOwner string, actingUser string) error {
	if err := m.requireOwner(trx, id, actingUser); nil != err {
		return err
	}
	trx.Put(m.owners, []byte(id), []byte(newOwner))
	return nil
}

// Grant - union actions into a user's right set
func (m *Manager) Grant(trx storage.Transaction, id string, user string, actions []string, actingUser string) error {
	if err := m.requireOwner(trx, id, actingUser); nil != err {
		return err
	}
	if 0 == len(actions) {
		return fault.ErrInvalidRights
	}

	current, err := m.Rights(trx, id, user)
	if nil != err {
		return err
	}

	set := make(map[string]struct{}, len(current)+len(actions))
	for _, a := range current {
		set[a] = struct{}{}
	}
	for _, a := range actions {
		action, err := NormaliseAction(a)
		if nil != err {
			return err
		}
		set[action] = struct{}{}
	}
	if len(set) > maxActions {
		return fault.ErrInvalidRights
	}

	merged := make([]string, 0, len(set))
	for a := range set {
		merged = append(merged, a)
	}
	sort.Strings(merged)

	trx.Put(m.rights, rightsKey(id, user), packActions(merged))
	return nil
}

// Rights - sorted right set of a user, empty if none were granted
func (m *Manager) Rights(trx storage.Transaction, id string, user string) ([]string, error) {
	packed, err := trx.Get(m.rights, rightsKey(id, user))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return []string{}, nil
	}
	return unpackActions(packed)
}

// Check - owner first, then explicit rights, otherwise denied
func (m *Manager) Check(trx storage.Transaction, id string, user string, action string) (Decision, error) {
	owner, err := trx.Get(m.owners, []byte(id))
	if nil != err {
		return Denied, err
	}
	if nil == owner {
		return Denied, nil
	}
	if string(owner) == user {
		return OwnerAllowed, nil
	}

	action, err = NormaliseAction(action)
	if nil != err {
		return Denied, nil
	}
	actions, err := m.Rights(trx, id, user)
	if nil != err {
		return Denied, err
	}
	for _, a := range actions {
		if a == action {
			return RightAllowed, nil
		}
	}
	return Denied, nil
}

// NormaliseAction - trimmed lower case tag of bounded length
func NormaliseAction(action string) (string, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if 0 == len(action) || len(action) > maxActionLength {
		return "", fault.ErrInvalidAction
	}
	return action, nil
}

func (m *Manager) requireOwner(trx storage.Transaction, id string, actingUser string) error {
	owner, err := m.Owner(trx, id)
	if nil != err {
		return err
	}
	if owner != actingUser {
		return fault.ErrNotOwner
	}
	return nil
}

// key: id ++ 0x00 ++ user
func rightsKey(id string, user string) []byte {
	key := make([]byte, 0, len(id)+len(user)+1)
	key = append(key, id...)
	key = append(key, 0x00)
	return append(key, user...)
}

// Varint64(count) followed by each action as Varint64(length) ++ bytes
func packActions(actions []string) []byte {
	buffer := util.ToVarint64(uint64(len(actions)))
	for _, a := range actions {
		buffer = util.AppendString(buffer, a)
	}
	return buffer
}

func unpackActions(buffer []byte) ([]string, error) {
	count, n := util.ClippedVarint64(buffer, 0, maxActions)
	if 0 == n {
		return nil, fault.ProcessError("corrupt rights record")
	}
	actions := make([]string, 0, count)
	for i := 0; i < count; i += 1 {
		action, length := util.ExtractBytes(buffer[n:], 1, maxActionLength)
		if 0 == length {
			return nil, fault.ProcessError("corrupt rights record")
		}
		n += length
		actions = append(actions, string(action))
	}
	return actions, nil
}
