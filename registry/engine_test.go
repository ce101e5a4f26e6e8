// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
)

func str(s string) *string { return &s }

func TestCreateReadAndOwner(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	err := e.AddResource("r", []byte("content"), "u")
	assert.Nil(t, err, "add error")

	m, err := e.ResourceMetadata("r")
	assert.Nil(t, err, "metadata error")
	expected := &registry.Metadata{
		Id:     "r",
		Type:   "Blob",
		Owner:  "u",
		Size:   7,
		Digest: digest.NewDigest([]byte("content")),
	}
	assert.Equal(t, expected, m, "wrong metadata")

	_, err = e.ResourceMetadata("missing")
	assert.Equal(t, fault.ErrResourceNotFound, err, "metadata of missing resource")

	owner, err := e.Owner("r")
	assert.Nil(t, err, "owner error")
	assert.Equal(t, "u", owner, "wrong owner")

	err = e.AddResource("r", []byte("other"), "v")
	assert.Equal(t, fault.ErrResourceExists, err, "second create allowed")
	assert.True(t, fault.IsErrExists(err), "wrong class")

	err = e.AddResource("x", []byte("content"), "")
	assert.Equal(t, fault.ErrInvalidUser, err, "empty creator allowed")
}

func TestAccessGate(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	_ = e.AddResource("r", []byte("content"), "owner")
	_, _ = e.BuyTokens("reader", 10)

	// missing resource
	_, _, err := e.Access("missing", "reader", 1)
	assert.Equal(t, fault.ErrResourceNotFound, err, "missing resource accessed")

	// no right
	_, _, err = e.Access("r", "reader", 1)
	assert.Equal(t, fault.ErrAccessDenied, err, "access without right")
	assert.True(t, fault.IsErrPermission(err), "wrong class")

	err = e.Grant("r", "reader", []string{"read"}, "owner")
	assert.Nil(t, err, "grant error")

	// rights pass, spend fails
	_, _, err = e.Access("r", "reader", 11)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overspend allowed")
	balance, _ := e.Balance("reader")
	assert.Equal(t, uint64(10), balance, "failed access debited")

	r, remaining, err := e.Access("r", "reader", 4)
	assert.Nil(t, err, "access error")
	assert.Equal(t, uint64(6), remaining, "wrong remaining")
	assert.Equal(t, &resourcerecord.Blob{Content: []byte("content")}, r, "wrong content")

	balance, _ = e.Balance("reader")
	assert.Equal(t, uint64(6), balance, "debit not committed")

	// owner reads without a grant and a zero cost is free
	_, remaining, err = e.Access("r", "owner", 0)
	assert.Nil(t, err, "owner access error")
	assert.Equal(t, uint64(0), remaining, "wrong owner balance")
}

func TestAccessEncrypted(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	err := e.AddEncryptedResource("e", []byte("secret"), "k1", "owner")
	assert.Nil(t, err, "add encrypted error")

	m, _ := e.ResourceMetadata("e")
	assert.Equal(t, "EncryptedBlob", m.Type, "stored plaintext")
	assert.NotEqual(t, digest.NewDigest([]byte("secret")), m.Digest, "stored plaintext")

	_, _ = e.BuyTokens("owner", 5)

	_, _, err = e.AccessEncrypted("e", "owner", 2, "k2")
	assert.Equal(t, fault.ErrDecryptionFailed, err, "wrong handle decrypted")
	balance, _ := e.Balance("owner")
	assert.Equal(t, uint64(5), balance, "failed decryption debited")

	plaintext, remaining, err := e.AccessEncrypted("e", "owner", 2, "k1")
	assert.Nil(t, err, "access encrypted error")
	assert.Equal(t, []byte("secret"), plaintext, "wrong plaintext")
	assert.Equal(t, uint64(3), remaining, "wrong remaining")

	err = e.AddEncryptedResource("e2", []byte("secret"), "unknown", "owner")
	assert.Equal(t, fault.ErrEncryptionFailed, err, "unknown key encrypted")
}

func TestOwnershipTransfer(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	_ = e.AddResource("r", []byte("content"), "u1")

	err := e.SetOwner("r", "u2", "u2")
	assert.Equal(t, fault.ErrNotOwner, err, "transfer by non owner")

	err = e.SetOwner("missing", "u2", "u1")
	assert.Equal(t, fault.ErrResourceNotFound, err, "transfer of missing resource")

	err = e.SetOwner("r", "u2", "u1")
	assert.Nil(t, err, "transfer error")

	d, _ := e.Check("r", "u2", "write")
	assert.Equal(t, rights.OwnerAllowed, d, "new owner not allowed")
	d, _ = e.Check("r", "u1", "read")
	assert.Equal(t, rights.Denied, d, "old owner still allowed")
}

func TestGrantScenario(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	_ = e.AddResource("r", []byte("content"), "u1")

	err := e.Grant("r", "u2", []string{"read"}, "u1")
	assert.Nil(t, err, "grant error")

	d, err := e.Check("r", "u2", "read")
	assert.Nil(t, err, "check error")
	assert.NotEqual(t, rights.Denied, d, "granted read denied")

	d, _ = e.Check("r", "u2", "write")
	assert.Equal(t, rights.Denied, d, "ungranted write allowed")

	err = e.Grant("r", "u2", []string{"write"}, "u2")
	assert.Equal(t, fault.ErrNotOwner, err, "grant by non owner")

	actions, _ := e.Rights("r", "u2")
	assert.Equal(t, []string{"read"}, actions, "wrong rights")
}

func TestTokenScenario(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	balance, err := e.BuyTokens("u", 10)
	assert.Nil(t, err, "buy error")
	assert.Equal(t, uint64(10), balance, "wrong balance")

	_ = e.AddResource("r", []byte("content"), "u")
	_, _, err = e.Access("r", "u", 15)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overspend allowed")
	assert.True(t, fault.IsErrBalance(err), "wrong class")

	balance, _ = e.Balance("u")
	assert.Equal(t, uint64(10), balance, "balance changed")

	_, err = e.BuyTokens("u", 0)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero purchase")

	err = e.TransferTokens("u", "v", 11)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overdraft transfer")

	err = e.TransferTokens("u", "v", 7)
	assert.Nil(t, err, "transfer error")
	u, _ := e.Balance("u")
	v, _ := e.Balance("v")
	assert.Equal(t, uint64(3), u, "wrong sender balance")
	assert.Equal(t, uint64(7), v, "wrong recipient balance")
}

func TestDocumentScenario(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	doc := &resourcerecord.Document{Title: "Cells", Author: "Ana", Year: 2020, Field: "bio", Content: "mitosis"}
	err := e.AddDocument("doc1", doc, "ana")
	assert.Nil(t, err, "add document error")

	summaries, err := e.SearchDocuments(docindex.Criteria{Field: str("bio")})
	assert.Nil(t, err, "search error")
	assert.Equal(t, []resourcerecord.Summary{doc.Summarise("doc1")}, summaries, "wrong search result")

	summaries, err = e.SearchDocuments(docindex.Criteria{Field: str("bio"), Author: str("Ben")})
	assert.Nil(t, err, "search error")
	assert.Equal(t, []resourcerecord.Summary{}, summaries, "unexpected match")

	summaries, _ = e.SearchDocuments(docindex.Criteria{})
	assert.Equal(t, []resourcerecord.Summary{}, summaries, "no criteria matched something")

	m, err := e.ResourceMetadata("doc1")
	assert.Nil(t, err, "metadata error")
	assert.Equal(t, "Document", m.Type, "wrong type")
	assert.Equal(t, doc.Summarise("doc1"), *m.Document, "wrong summary")

	content, remaining, err := e.GetDocumentContent("doc1", "ana", 0)
	assert.Nil(t, err, "content error")
	assert.Equal(t, "mitosis", content, "wrong content")
	assert.Equal(t, uint64(0), remaining, "wrong remaining")

	// readers need the read right and pay the cost like Access
	_, _ = e.BuyTokens("ben", 5)
	_, _, err = e.GetDocumentContent("doc1", "ben", 1)
	assert.Equal(t, fault.ErrAccessDenied, err, "content without right")
	balance, _ := e.Balance("ben")
	assert.Equal(t, uint64(5), balance, "denied read debited")

	_ = e.Grant("doc1", "ben", []string{"read"}, "ana")
	content, remaining, err = e.GetDocumentContent("doc1", "ben", 2)
	assert.Nil(t, err, "granted content error")
	assert.Equal(t, "mitosis", content, "wrong granted content")
	assert.Equal(t, uint64(3), remaining, "wrong remaining")

	_, _, err = e.GetDocumentContent("doc1", "", 0)
	assert.Equal(t, fault.ErrInvalidUser, err, "content without user")

	_ = e.AddResource("blob", []byte("x"), "ana")
	_, _, err = e.GetDocumentContent("blob", "ana", 0)
	assert.Equal(t, fault.ErrNotADocument, err, "blob read as document")

	_, _, err = e.GetDocumentContent("missing", "ana", 0)
	assert.Equal(t, fault.ErrDocumentNotFound, err, "missing document")

	// a failed document add leaves no postings
	err = e.AddDocument("doc1", &resourcerecord.Document{Title: "Again", Year: 2020, Field: "bio"}, "ana")
	assert.Equal(t, fault.ErrResourceExists, err, "duplicate document")
	summaries, _ = e.SearchDocuments(docindex.Criteria{Field: str("bio")})
	assert.Equal(t, 1, len(summaries), "failed add left a posting")
}

func TestIntegrity(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	d, err := e.StoreDataHash([]byte("data"))
	assert.Nil(t, err, "store error")
	assert.Equal(t, integrity.Seal([]byte("data")), d, "wrong digest")

	outcome, err := e.VerifyDataIntegrity([]byte("data"))
	assert.Nil(t, err, "verify error")
	assert.Equal(t, integrity.MatchesStored, outcome, "sealed data not matched")

	outcome, _ = e.VerifyDataIntegrity([]byte("data!"))
	assert.Equal(t, integrity.Unknown, outcome, "changed data matched")

	content, err := e.SealedContent(d)
	assert.Nil(t, err, "sealed content error")
	assert.Equal(t, []byte("data"), content, "wrong sealed content")

	_, err = e.StoreDataHash(nil)
	assert.Equal(t, fault.ErrZeroLengthContent, err, "empty content sealed")

	// seals never collide with resource ids
	err = e.AddResource(d.String(), []byte("data"), "u")
	assert.Nil(t, err, "resource named like a digest")
}

func TestAccessTokens(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	token, expires, err := e.IssueAccessToken("ana", time.Hour)
	assert.Nil(t, err, "issue error")
	assert.True(t, expires.After(time.Now()), "token already expired")

	holder, err := e.VerifyAccessToken(token)
	assert.Nil(t, err, "verify error")
	assert.Equal(t, "ana", holder.User, "wrong holder")

	err = e.RevokeAccessToken(token, "ben")
	assert.Equal(t, fault.ErrNotTokenHolder, err, "revoked by another user")

	err = e.RevokeAccessToken(token, "ana")
	assert.Nil(t, err, "revoke error")

	_, err = e.VerifyAccessToken(token)
	assert.Equal(t, fault.ErrTokenNotFound, err, "revoked token verified")

	_, _, err = e.IssueAccessToken("ana", 0)
	assert.Equal(t, fault.ErrInvalidTimeToLive, err, "zero ttl")
}

func TestResolveCaller(t *testing.T) {
	e, teardown := setupEngine(t)
	defer teardown()

	user, err := e.ResolveCaller("ana", "")
	assert.Nil(t, err, "caller only error")
	assert.Equal(t, "ana", user, "wrong caller")

	_, err = e.ResolveCaller("", "")
	assert.Equal(t, fault.ErrInvalidUser, err, "no caller and no token")

	token, _, _ := e.IssueAccessToken("ana", time.Hour)

	user, err = e.ResolveCaller("", token)
	assert.Nil(t, err, "token only error")
	assert.Equal(t, "ana", user, "wrong token holder")

	user, err = e.ResolveCaller("ana", token)
	assert.Nil(t, err, "caller and token error")
	assert.Equal(t, "ana", user, "wrong caller")

	_, err = e.ResolveCaller("ben", token)
	assert.Equal(t, fault.ErrNotTokenHolder, err, "token of another user")

	_ = e.RevokeAccessToken(token, "ana")
	_, err = e.ResolveCaller("", token)
	assert.Equal(t, fault.ErrTokenNotFound, err, "revoked token")

	// a token holder passes the same gate as the named caller
	_ = e.AddResource("r", []byte("content"), "ana")
	token, _, _ = e.IssueAccessToken("ana", time.Hour)
	user, _ = e.ResolveCaller("", token)
	_, _, err = e.Access("r", user, 0)
	assert.Nil(t, err, "access by token holder")
}
