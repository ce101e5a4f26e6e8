// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcerecord

import (
	"strings"
	"unicode/utf8"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/util"
)

// ValidIdentifier - check a resource id is usable as a storage key
//
// NUL is the separator inside composite keys so it cannot appear in an id
func ValidIdentifier(id string) error {
	if 0 == len(id) || len(id) > MaxIdentifierLength {
		return fault.ErrInvalidResourceId
	}
	if strings.IndexByte(id, 0) >= 0 {
		return fault.ErrInvalidResourceId
	}
	return nil
}

// pack Blob
//
// Pack Varint64(tag) followed by the content, an encrypted blob
// also carries the algorithm and key handle
func (blob *Blob) Pack() (Packed, error) {
	if 0 == len(blob.Content) {
		return nil, fault.ErrZeroLengthContent
	}
	if len(blob.Content) > maxContentLength {
		return nil, fault.ErrContentTooLong
	}

	if !blob.Encrypted() {
		if "" != blob.KeyHandle {
			return nil, fault.ErrInvalidKeyHandle
		}
		message := util.ToVarint64(uint64(BlobTag))
		return util.AppendBytes(message, blob.Content), nil
	}

	if len(blob.Algorithm) > maxAlgorithmLength {
		return nil, fault.ErrUnsupportedAlgorithm
	}
	if 0 == len(blob.KeyHandle) || len(blob.KeyHandle) > maxKeyHandleLength {
		return nil, fault.ErrInvalidKeyHandle
	}

	message := util.ToVarint64(uint64(EncryptedBlobTag))
	message = util.AppendString(message, blob.Algorithm)
	message = util.AppendString(message, blob.KeyHandle)
	return util.AppendBytes(message, blob.Content), nil
}

// pack Document
//
// Pack Varint64(tag) followed by fields in order as struct above
func (document *Document) Pack() (Packed, error) {
	if 0 == len(document.Title) {
		return nil, fault.ErrZeroLengthResourceTitle
	}
	for _, s := range []string{document.Title, document.Author, document.Field} {
		if utf8.RuneCountInString(s) > maxTextLength {
			return nil, fault.ErrNameTooLong
		}
	}
	if 0 == document.Year || document.Year > MaxYear {
		return nil, fault.ErrYearOutOfRange
	}
	if len(document.Content) > maxContentLength {
		return nil, fault.ErrContentTooLong
	}

	message := util.ToVarint64(uint64(DocumentTag))
	message = util.AppendString(message, document.Title)
	message = util.AppendString(message, document.Author)
	message = util.AppendVarint64(message, document.Year)
	message = util.AppendString(message, document.Field)
	return util.AppendString(message, document.Content), nil
}
