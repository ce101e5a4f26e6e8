// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcerecord

// TagType - type code for resources
type TagType uint64

// enumerate the possible resource record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	BlobTag          = TagType(iota) // opaque content
	EncryptedBlobTag = TagType(iota) // ciphertext + algorithm + key handle
	DocumentTag      = TagType(iota) // structured document

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Resource - generic resource interface
//
// the set of implementations is closed: *Blob and *Document
type Resource interface {
	Pack() (Packed, error)
	isResource()
}

// byte sizes for various fields
const (
	MaxIdentifierLength = 255
	maxContentLength    = 1 << 20
	maxTextLength       = 256
	maxAlgorithmLength  = 32
	maxKeyHandleLength  = 64
	MaxYear             = 9999
)

// Blob - the unpacked opaque resource
//
// when Algorithm is not empty the content is ciphertext that can only
// be recovered through the cipher named by Algorithm using KeyHandle
type Blob struct {
	Content   []byte `json:"content"`             // base64
	Algorithm string `json:"algorithm,omitempty"` // cipher tag
	KeyHandle string `json:"keyHandle,omitempty"` // key material handle
}

// Document - the unpacked document resource
type Document struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Year    uint64 `json:"year"`
	Field   string `json:"field"`
	Content string `json:"content"`
}

// Summary - document fields without the content
type Summary struct {
	Id     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   uint64 `json:"year"`
	Field  string `json:"field"`
}

func (*Blob) isResource()     {}
func (*Document) isResource() {}

// Encrypted - true if the blob holds ciphertext
func (blob *Blob) Encrypted() bool {
	return "" != blob.Algorithm
}

// Summarise - extract the searchable part of a document
func (document *Document) Summarise(id string) Summary {
	return Summary{
		Id:     id,
		Title:  document.Title,
		Author: document.Author,
		Year:   document.Year,
		Field:  document.Field,
	}
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := FromVarint(record)
	if 0 == n {
		return NullTag
	}
	return recordType
}

// String - name of a record type
func (t TagType) String() string {
	switch t {
	case BlobTag:
		return "Blob"
	case EncryptedBlobTag:
		return "EncryptedBlob"
	case DocumentTag:
		return "Document"
	default:
		return "*unknown*"
	}
}
