// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/counter"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/access"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/documents"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/fixtures"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/node"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/resources"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/server"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/tokens"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	store, err := storage.Open("", storage.ReadWrite)
	if nil != err {
		panic(err)
	}
	keyring, err := cipher.NewKeyring(logger.New(fixtures.LogCategory), &cipher.Configuration{
		Keys: []cipher.KeyConfiguration{{Handle: fixtures.KeyHandle, Key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"}},
	})
	if nil != err {
		panic(err)
	}

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", registry.New(store, keyring), keyring, &c)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go r.Accept(l)

	rc := m.Run()

	_ = l.Close()
	store.Close()
	fixtures.TeardownTestLogger()

	os.Exit(rc)
}

func dial(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", address)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return rpc.NewClient(conn)
}

// each call below fails or succeeds inside the named service
// which shows that the service is registered

func TestResourcesGet(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply registry.Metadata
	err := client.Call("Resources.Get", &resources.GetArguments{Id: "missing"}, &reply)
	assert.NotNil(t, err, "wrong error")
	assert.Equal(t, fault.ErrResourceNotFound.Error(), err.Error(), "wrong error")
}

func TestDocumentsContent(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply documents.ContentReply
	err := client.Call("Documents.Content", &documents.ContentArguments{Caller: "server-test", Id: "missing"}, &reply)
	assert.NotNil(t, err, "wrong error")
	assert.Equal(t, fault.ErrDocumentNotFound.Error(), err.Error(), "wrong error")
}

func TestTokensBuy(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply tokens.BalanceReply
	err := client.Call("Tokens.Buy", &tokens.BuyArguments{Caller: "server-test", Amount: 7}, &reply)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint64(7), reply.Balance, "wrong balance")
}

func TestIntegrityContent(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply integrity.SealedReply
	err := client.Call("Integrity.Content", &integrity.SealedArguments{}, &reply)
	assert.NotNil(t, err, "wrong error")
	assert.Equal(t, fault.ErrSealNotFound.Error(), err.Error(), "wrong error")
}

func TestAccessOwner(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply access.OwnerReply
	err := client.Call("Access.Owner", &access.OwnerArguments{Id: "missing"}, &reply)
	assert.NotNil(t, err, "wrong error")
	assert.Equal(t, fault.ErrResourceNotFound.Error(), err.Error(), "wrong error")
}

func TestNodeInfo(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, []string{fixtures.KeyHandle}, reply.KeyHandles, "wrong key handles")
}
