// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package documents_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/documents"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/fixtures"
)

func TestDocuments(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	engine, done := fixtures.Engine(t)
	defer done()

	d := documents.New(logger.New(fixtures.LogCategory), engine)

	arguments := documents.AddArguments{
		Caller:  "ana",
		Id:      "doc1",
		Title:   "Cells",
		Author:  "Ana",
		Year:    2020,
		Field:   "bio",
		Content: "mitosis",
	}
	var addReply documents.AddReply
	err := d.Add(&arguments, &addReply)
	assert.Nil(t, err, "add error")

	expected := resourcerecord.Summary{Id: "doc1", Title: "Cells", Author: "Ana", Year: 2020, Field: "bio"}
	assert.Equal(t, expected, addReply.Document, "wrong summary")

	field := "bio"
	var searchReply documents.SearchReply
	err = d.Search(&docindex.Criteria{Field: &field}, &searchReply)
	assert.Nil(t, err, "search error")
	assert.Equal(t, []resourcerecord.Summary{expected}, searchReply.Documents, "wrong search")

	author := "Ben"
	err = d.Search(&docindex.Criteria{Field: &field, Author: &author}, &searchReply)
	assert.Nil(t, err, "search error")
	assert.Equal(t, 0, len(searchReply.Documents), "unexpected match")

	var contentReply documents.ContentReply
	err = d.Content(&documents.ContentArguments{Caller: "ben", Id: "doc1"}, &contentReply)
	assert.Equal(t, fault.ErrAccessDenied, err, "content without right")
	assert.Equal(t, "", contentReply.Content, "content leaked")

	err = d.Content(&documents.ContentArguments{Id: "doc1"}, &contentReply)
	assert.Equal(t, fault.ErrInvalidUser, err, "content without caller")

	err = d.Content(&documents.ContentArguments{Caller: "ana", Id: "doc1", TokenCost: 1}, &contentReply)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "content without balance")

	_, _ = engine.BuyTokens("ana", 3)
	err = d.Content(&documents.ContentArguments{Caller: "ana", Id: "doc1", TokenCost: 1}, &contentReply)
	assert.Nil(t, err, "content error")
	assert.Equal(t, "mitosis", contentReply.Content, "wrong content")
	assert.Equal(t, uint64(2), contentReply.Remaining, "wrong remaining")

	token, _, err := engine.IssueAccessToken("ana", time.Hour)
	assert.Nil(t, err, "issue error")
	err = d.Content(&documents.ContentArguments{Token: token, Id: "doc1"}, &contentReply)
	assert.Nil(t, err, "content by token error")
	assert.Equal(t, "mitosis", contentReply.Content, "wrong content by token")

	arguments.Id = "doc2"
	arguments.Year = 0
	err = d.Add(&arguments, &addReply)
	assert.Equal(t, fault.ErrYearOutOfRange, err, "invalid document added")
}
