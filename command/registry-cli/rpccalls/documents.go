// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/documents"
)

// DocumentData - metadata and content of a new document
type DocumentData struct {
	Id      string
	Title   string
	Author  string
	Year    uint64
	Field   string
	Content string
}

// AddDocument - store and index a document owned by the caller
func (client *Client) AddDocument(doc DocumentData) (*documents.AddReply, error) {
	arguments := documents.AddArguments{
		Caller:  client.caller,
		Id:      doc.Id,
		Title:   doc.Title,
		Author:  doc.Author,
		Year:    doc.Year,
		Field:   doc.Field,
		Content: doc.Content,
	}
	var reply documents.AddReply
	if err := client.call("Documents.Add", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Search - documents matching all of the non-nil criteria
func (client *Client) Search(criteria docindex.Criteria) (*documents.SearchReply, error) {
	var reply documents.SearchReply
	if err := client.call("Documents.Search", &criteria, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DocumentContent - full text of a document paying its token cost
func (client *Client) DocumentContent(id string, tokenCost uint64) (*documents.ContentReply, error) {
	arguments := documents.ContentArguments{
		Caller:    client.caller,
		Token:     client.token,
		Id:        id,
		TokenCost: tokenCost,
	}
	var reply documents.ContentReply
	if err := client.call("Documents.Content", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
