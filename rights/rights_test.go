// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rights_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

func setup(t *testing.T) (*storage.Store, storage.Transaction, *rights.Manager) {
	store, err := storage.Open("", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	trx, err := store.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	m := rights.New(store)
	m.SetInitialOwner(trx, "r", "u1")
	return store, trx, m
}

func TestGrantReadOnly(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	err := m.Grant(trx, "r", "u2", []string{"read"}, "u1")
	assert.Nil(t, err, "grant error")

	d, err := m.Check(trx, "r", "u2", "read")
	assert.Nil(t, err, "check error")
	assert.Equal(t, rights.RightAllowed, d, "granted right denied")
	assert.True(t, d.Allowed(), "allowed decision")

	d, err = m.Check(trx, "r", "u2", "write")
	assert.Nil(t, err, "check error")
	assert.Equal(t, rights.Denied, d, "ungranted right allowed")

	d, _ = m.Check(trx, "r", "u3", "read")
	assert.Equal(t, rights.Denied, d, "stranger allowed")
}

func TestOwnerAlwaysAllowed(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	for _, action := range []string{"read", "write", "anything"} {
		d, err := m.Check(trx, "r", "u1", action)
		assert.Nil(t, err, "check error")
		assert.Equal(t, rights.OwnerAllowed, d, "owner denied: %s", action)
	}

	// owner match wins over an explicit entry
	_ = m.Grant(trx, "r", "u1", []string{"read"}, "u1")
	d, _ := m.Check(trx, "r", "u1", "read")
	assert.Equal(t, rights.OwnerAllowed, d, "explicit right evaluated before owner")
}

func TestGrantIsMonotonic(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	err := m.Grant(trx, "r", "u2", []string{"write", " READ "}, "u1")
	assert.Nil(t, err, "grant error")

	actions, _ := m.Rights(trx, "r", "u2")
	assert.Equal(t, []string{"read", "write"}, actions, "wrong first set")

	err = m.Grant(trx, "r", "u2", []string{"annotate", "read"}, "u1")
	assert.Nil(t, err, "grant error")

	actions, _ = m.Rights(trx, "r", "u2")
	assert.Equal(t, []string{"annotate", "read", "write"}, actions, "grant replaced the set")

	d, _ := m.Check(trx, "r", "u2", "Write")
	assert.Equal(t, rights.RightAllowed, d, "check is not normalised")
}

func TestGrantErrors(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	err := m.Grant(trx, "missing", "u2", []string{"read"}, "u1")
	assert.Equal(t, fault.ErrResourceNotFound, err, "grant on missing resource")

	err = m.Grant(trx, "r", "u2", []string{"read"}, "u2")
	assert.Equal(t, fault.ErrNotOwner, err, "grant by non owner")
	assert.True(t, fault.IsErrPermission(err), "wrong class")

	err = m.Grant(trx, "r", "u2", []string{}, "u1")
	assert.Equal(t, fault.ErrInvalidRights, err, "empty grant")

	err = m.Grant(trx, "r", "u2", []string{"read", "  "}, "u1")
	assert.Equal(t, fault.ErrInvalidAction, err, "blank action")

	err = m.Grant(trx, "r", "u2", []string{strings.Repeat("a", 65)}, "u1")
	assert.Equal(t, fault.ErrInvalidAction, err, "long action")

	actions, _ := m.Rights(trx, "r", "u2")
	assert.Equal(t, []string{}, actions, "failed grants left rights")
}

func TestSetOwner(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	err := m.SetOwner(trx, "r", "u2", "u3")
	assert.Equal(t, fault.ErrNotOwner, err, "transfer by non owner")

	err = m.SetOwner(trx, "missing", "u2", "u1")
	assert.Equal(t, fault.ErrResourceNotFound, err, "transfer of missing resource")

	err = m.SetOwner(trx, "r", "u2", "u1")
	assert.Nil(t, err, "transfer error")

	owner, err := m.Owner(trx, "r")
	assert.Nil(t, err, "owner error")
	assert.Equal(t, "u2", owner, "wrong owner")

	err = m.SetOwner(trx, "r", "u1", "u1")
	assert.Equal(t, fault.ErrNotOwner, err, "previous owner kept control")

	d, _ := m.Check(trx, "r", "u1", "read")
	assert.Equal(t, rights.Denied, d, "previous owner still allowed")
}

func TestRightsAreScopedToResourceAndUser(t *testing.T) {
	store, trx, m := setup(t)
	defer store.Close()
	defer trx.Abort()

	m.SetInitialOwner(trx, "r2", "u1")
	_ = m.Grant(trx, "r", "u2", []string{"read"}, "u1")

	d, _ := m.Check(trx, "r2", "u2", "read")
	assert.Equal(t, rights.Denied, d, "right leaked to another resource")

	d, _ = m.Check(trx, "missing", "u2", "read")
	assert.Equal(t, rights.Denied, d, "missing resource allowed")
}

func TestDecisionText(t *testing.T) {
	for _, d := range []rights.Decision{rights.Denied, rights.OwnerAllowed, rights.RightAllowed} {
		buffer, _ := d.MarshalText()
		var recovered rights.Decision
		_ = recovered.UnmarshalText(buffer)
		assert.Equal(t, d, recovered, "decision not preserved")
	}
	assert.False(t, rights.Denied.Allowed(), "denied is allowed")
}
