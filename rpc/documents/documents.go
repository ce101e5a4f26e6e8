// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package documents

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/ratelimit"
)

// Documents
// ---------

const (
	rateLimitDocuments = 200
	rateBurstDocuments = 100
)

// Documents - type for the RPC
type Documents struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Engine
}

// New - create the documents service
func New(log *logger.L, engine *registry.Engine) *Documents {
	return &Documents{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitDocuments, rateBurstDocuments),
		Registry: engine,
	}
}

// Add a document
// --------------

// AddArguments - arguments for RPC
type AddArguments struct {
	Caller  string `json:"caller"`
	Id      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Year    uint64 `json:"year"`
	Field   string `json:"field"`
	Content string `json:"content"`
}

// AddReply - result of an add
type AddReply struct {
	Document resourcerecord.Summary `json:"document"`
	Owner    string                 `json:"owner"`
}

// Add - store and index a document
func (documents *Documents) Add(arguments *AddArguments, reply *AddReply) error {
	if err := ratelimit.Limit(documents.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	documents.Log.Infof("Documents.Add: id: %q  caller: %q", arguments.Id, arguments.Caller)

	document := &resourcerecord.Document{
		Title:   arguments.Title,
		Author:  arguments.Author,
		Year:    arguments.Year,
		Field:   arguments.Field,
		Content: arguments.Content,
	}
	err := documents.Registry.AddDocument(arguments.Id, document, arguments.Caller)
	if nil != err {
		return err
	}
	reply.Document = document.Summarise(arguments.Id)
	reply.Owner = arguments.Caller
	return nil
}

// Search
// ------

// SearchReply - matching documents without their content
type SearchReply struct {
	Documents []resourcerecord.Summary `json:"documents"`
}

// Search - documents matching every supplied criterion
func (documents *Documents) Search(arguments *docindex.Criteria, reply *SearchReply) error {
	if err := ratelimit.Limit(documents.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	documents.Log.Infof("Documents.Search: %+v", arguments)

	summaries, err := documents.Registry.SearchDocuments(*arguments)
	if nil != err {
		return err
	}
	reply.Documents = summaries
	return nil
}

// Content
// -------

// ContentArguments - arguments for RPC
type ContentArguments struct {
	Caller    string `json:"caller"`
	Token     string `json:"token,omitempty"`
	Id        string `json:"id"`
	TokenCost uint64 `json:"tokenCost"`
}

// ContentReply - the document text
type ContentReply struct {
	Id        string `json:"id"`
	Content   string `json:"content"`
	Remaining uint64 `json:"remaining"`
}

// Content - the content of a document, gated like Resources.Access
func (documents *Documents) Content(arguments *ContentArguments, reply *ContentReply) error {
	if err := ratelimit.Limit(documents.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := documents.Registry.ResolveCaller(arguments.Caller, arguments.Token)
	if nil != err {
		return err
	}

	documents.Log.Infof("Documents.Content: id: %q  caller: %q  cost: %d", arguments.Id, caller, arguments.TokenCost)

	content, remaining, err := documents.Registry.GetDocumentContent(arguments.Id, caller, arguments.TokenCost)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Content = content
	reply.Remaining = remaining
	return nil
}
