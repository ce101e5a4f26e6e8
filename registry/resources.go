// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/docindex"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// AddResource - store a plain blob owned by the creator
func (e *Engine) AddResource(id string, content []byte, creator string) error {
	if err := validUser(creator); nil != err {
		return err
	}
	blob := &resourcerecord.Blob{
		Content: content,
	}
	return e.update("AddResource", func(trx storage.Transaction) error {
		return e.resources.Create(trx, id, blob, creator)
	})
}

// AddDocument - store and index a document owned by the creator
func (e *Engine) AddDocument(id string, document *resourcerecord.Document, creator string) error {
	if err := validUser(creator); nil != err {
		return err
	}
	if nil == document {
		return fault.ErrMissingParameters
	}
	return e.update("AddDocument", func(trx storage.Transaction) error {
		return e.resources.Create(trx, id, document, creator)
	})
}

// AddEncryptedResource - store only the ciphertext of a blob
func (e *Engine) AddEncryptedResource(id string, plaintext []byte, keyHandle string, creator string) error {
	if err := validUser(creator); nil != err {
		return err
	}
	return e.update("AddEncryptedResource", func(trx storage.Transaction) error {
		return e.resources.CreateEncrypted(trx, id, plaintext, keyHandle, creator)
	})
}

// Metadata - what may be learnt about a resource without reading it
//
// the digest covers the stored bytes, which is the ciphertext for an
// encrypted blob
type Metadata struct {
	Id       string                  `json:"id"`
	Type     string                  `json:"type"`
	Owner    string                  `json:"owner"`
	Size     int                     `json:"size"`
	Digest   digest.Digest           `json:"digest"`
	Document *resourcerecord.Summary `json:"document,omitempty"`
}

// ResourceMetadata - type, owner, size and digest of a stored resource
func (e *Engine) ResourceMetadata(id string) (*Metadata, error) {
	var m *Metadata
	err := e.view("ResourceMetadata", func(trx storage.Transaction) error {
		r, err := e.resources.Read(trx, id)
		if nil != err {
			return err
		}
		owner, err := e.rights.Owner(trx, id)
		if nil != err {
			return err
		}

		m = &Metadata{
			Id:    id,
			Owner: owner,
		}
		switch tr := r.(type) {
		case *resourcerecord.Blob:
			m.Type = resourcerecord.BlobTag.String()
			if tr.Encrypted() {
				m.Type = resourcerecord.EncryptedBlobTag.String()
			}
			m.Size = len(tr.Content)
			m.Digest = digest.NewDigest(tr.Content)
		case *resourcerecord.Document:
			summary := tr.Summarise(id)
			m.Type = resourcerecord.DocumentTag.String()
			m.Size = len(tr.Content)
			m.Digest = digest.NewDigest([]byte(tr.Content))
			m.Document = &summary
		default:
			return fault.ErrNotPackedResource
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return m, nil
}

// GetDocumentContent - gated read of a document's text
//
// same gate as Access: read right or ownership, then the debit
func (e *Engine) GetDocumentContent(id string, user string, tokenCost uint64) (string, uint64, error) {
	if err := validUser(user); nil != err {
		return "", 0, err
	}

	content := ""
	remaining := uint64(0)
	err := e.update("GetDocumentContent", func(trx storage.Transaction) error {
		r, err := e.resources.Read(trx, id)
		if nil != err {
			if fault.IsErrNotFound(err) {
				return fault.ErrDocumentNotFound
			}
			return err
		}
		document, ok := r.(*resourcerecord.Document)
		if !ok {
			return fault.ErrNotADocument
		}

		remaining, err = e.gate(trx, id, user, tokenCost)
		if nil != err {
			return err
		}
		content = document.Content
		return nil
	})
	if nil != err {
		return "", 0, err
	}
	return content, remaining, nil
}

// SearchDocuments - summaries of the documents matching every criterion
func (e *Engine) SearchDocuments(criteria docindex.Criteria) ([]resourcerecord.Summary, error) {
	summaries := []resourcerecord.Summary{}
	err := e.view("SearchDocuments", func(trx storage.Transaction) error {
		ids, err := e.index.Search(trx, criteria)
		if nil != err {
			return err
		}
		for _, id := range ids {
			r, err := e.resources.Read(trx, id)
			if nil != err {
				return err
			}
			document, ok := r.(*resourcerecord.Document)
			if !ok {
				return fault.ProcessError("index refers to a non document: " + id)
			}
			summaries = append(summaries, document.Summarise(id))
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return summaries, nil
}
