// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resources_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/fixtures"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/resources"
)

func TestResourcesAddGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	engine, done := fixtures.Engine(t)
	defer done()

	r := resources.New(logger.New(fixtures.LogCategory), engine)

	var reply resources.AddReply
	err := r.Add(&resources.AddArguments{Caller: "ana", Id: "r1", Content: "hello"}, &reply)
	assert.Nil(t, err, "add error")
	assert.Equal(t, resources.AddReply{Id: "r1", Owner: "ana"}, reply, "wrong reply")

	var metadata registry.Metadata
	err = r.Get(&resources.GetArguments{Id: "r1"}, &metadata)
	assert.Nil(t, err, "get error")
	expected := registry.Metadata{
		Id:     "r1",
		Type:   "Blob",
		Owner:  "ana",
		Size:   5,
		Digest: digest.NewDigest([]byte("hello")),
	}
	assert.Equal(t, expected, metadata, "wrong metadata")

	// metadata carries no content so a caller without rights learns
	// nothing more from Get and is still refused by Access
	buffer, err := json.Marshal(metadata)
	assert.Nil(t, err, "marshal error")
	assert.NotContains(t, string(buffer), "hello", "content in metadata")

	var accessReply resources.AccessReply
	err = r.Access(&resources.AccessArguments{Caller: "ben", Id: "r1"}, &accessReply)
	assert.Equal(t, fault.ErrAccessDenied, err, "access without right")

	err = r.Add(&resources.AddArguments{Caller: "ben", Id: "r1", Content: "again"}, &reply)
	assert.Equal(t, fault.ErrResourceExists, err, "duplicate add")

	err = r.Get(&resources.GetArguments{Id: "missing"}, &metadata)
	assert.Equal(t, fault.ErrResourceNotFound, err, "missing get")
}

func TestResourcesAccess(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	engine, done := fixtures.Engine(t)
	defer done()

	r := resources.New(logger.New(fixtures.LogCategory), engine)

	var addReply resources.AddReply
	_ = r.Add(&resources.AddArguments{Caller: "ana", Id: "r1", Content: "hello"}, &addReply)
	_, _ = engine.BuyTokens("ana", 3)

	var reply resources.AccessReply
	err := r.Access(&resources.AccessArguments{Caller: "ana", Id: "r1", TokenCost: 2}, &reply)
	assert.Nil(t, err, "access error")
	assert.Equal(t, uint64(1), reply.Remaining, "wrong remaining")
	assert.Equal(t, "Blob", reply.Resource.Record, "wrong record")

	err = r.Access(&resources.AccessArguments{Caller: "ben", Id: "r1", TokenCost: 0}, &reply)
	assert.Equal(t, fault.ErrAccessDenied, err, "access without right")
}

func TestResourcesAccessWithToken(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	engine, done := fixtures.Engine(t)
	defer done()

	r := resources.New(logger.New(fixtures.LogCategory), engine)

	var addReply resources.AddReply
	_ = r.Add(&resources.AddArguments{Caller: "ana", Id: "r1", Content: "hello"}, &addReply)

	token, _, err := engine.IssueAccessToken("ana", time.Hour)
	assert.Nil(t, err, "issue error")

	var reply resources.AccessReply
	err = r.Access(&resources.AccessArguments{Token: token, Id: "r1"}, &reply)
	assert.Nil(t, err, "access by token error")
	assert.Equal(t, &resourcerecord.Blob{Content: []byte("hello")}, reply.Resource.Data, "wrong data")

	err = r.Access(&resources.AccessArguments{Caller: "ben", Token: token, Id: "r1"}, &reply)
	assert.Equal(t, fault.ErrNotTokenHolder, err, "token used by another caller")

	err = engine.RevokeAccessToken(token, "ana")
	assert.Nil(t, err, "revoke error")

	err = r.Access(&resources.AccessArguments{Token: token, Id: "r1"}, &reply)
	assert.Equal(t, fault.ErrTokenNotFound, err, "revoked token accepted")
}

func TestResourcesEncrypted(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	engine, done := fixtures.Engine(t)
	defer done()

	r := resources.New(logger.New(fixtures.LogCategory), engine)

	var addReply resources.AddReply
	err := r.AddEncrypted(&resources.AddEncryptedArguments{Caller: "ana", Id: "e1", Content: "secret", KeyHandle: fixtures.KeyHandle}, &addReply)
	assert.Nil(t, err, "add encrypted error")

	err = r.AddEncrypted(&resources.AddEncryptedArguments{Caller: "ana", Id: "e2", Content: "secret"}, &addReply)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing key handle")

	var metadata registry.Metadata
	_ = r.Get(&resources.GetArguments{Id: "e1"}, &metadata)
	assert.Equal(t, "EncryptedBlob", metadata.Type, "wrong record type")
	assert.NotEqual(t, digest.NewDigest([]byte("secret")), metadata.Digest, "digest of plaintext")

	var reply resources.AccessReply
	err = r.Access(&resources.AccessArguments{Caller: "ana", Id: "e1", KeyHandle: fixtures.KeyHandle}, &reply)
	assert.Nil(t, err, "access error")
	assert.Equal(t, "secret", reply.Plaintext, "wrong plaintext")
	assert.Nil(t, reply.Resource, "record returned with plaintext")

	err = r.Access(&resources.AccessArguments{Caller: "ana", Id: "e1", KeyHandle: "other"}, &reply)
	assert.Equal(t, fault.ErrDecryptionFailed, err, "wrong key decrypted")
}
