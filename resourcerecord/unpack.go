// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcerecord

import (
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/util"
)

// FromVarint - read the leading tag of a packed record
func FromVarint(record []byte) (TagType, int) {
	recordType, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	return TagType(recordType), n
}

// turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *resourcerecord.Document:
func (record Packed) Unpack() (r Resource, n int, e error) {

	defer func() {
		if err := recover(); nil != err {
			e = fault.ErrNotPackedResource
		}
	}()

	recordType, n := FromVarint(record)
	if 0 == n {
		return nil, 0, fault.ErrNotPackedResource
	}

unpack_switch:
	switch recordType {

	case BlobTag:
		content, contentLength := util.ExtractBytes(record[n:], 1, maxContentLength)
		if 0 == contentLength {
			break unpack_switch
		}
		n += contentLength

		return &Blob{Content: content}, n, nil

	case EncryptedBlobTag:
		algorithm, algorithmLength := util.ExtractBytes(record[n:], 1, maxAlgorithmLength)
		if 0 == algorithmLength {
			break unpack_switch
		}
		n += algorithmLength

		keyHandle, keyHandleLength := util.ExtractBytes(record[n:], 1, maxKeyHandleLength)
		if 0 == keyHandleLength {
			break unpack_switch
		}
		n += keyHandleLength

		content, contentLength := util.ExtractBytes(record[n:], 1, maxContentLength)
		if 0 == contentLength {
			break unpack_switch
		}
		n += contentLength

		b := &Blob{
			Content:   content,
			Algorithm: string(algorithm),
			KeyHandle: string(keyHandle),
		}
		return b, n, nil

	case DocumentTag:
		title, titleLength := util.ExtractBytes(record[n:], 1, 4*maxTextLength)
		if 0 == titleLength {
			break unpack_switch
		}
		n += titleLength

		author, authorLength := util.ExtractBytes(record[n:], 0, 4*maxTextLength)
		if 0 == authorLength {
			break unpack_switch
		}
		n += authorLength

		year, yearLength := util.FromVarint64(record[n:])
		if 0 == yearLength {
			break unpack_switch
		}
		n += yearLength

		field, fieldLength := util.ExtractBytes(record[n:], 0, 4*maxTextLength)
		if 0 == fieldLength {
			break unpack_switch
		}
		n += fieldLength

		content, contentLength := util.ExtractBytes(record[n:], 0, maxContentLength)
		if 0 == contentLength {
			break unpack_switch
		}
		n += contentLength

		d := &Document{
			Title:   string(title),
			Author:  string(author),
			Year:    year,
			Field:   string(field),
			Content: string(content),
		}
		return d, n, nil

	default:
	}
	return nil, 0, fault.ErrNotPackedResource
}
