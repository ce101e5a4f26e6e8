// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendBytes - append a Varint64 length followed by the bytes
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a Varint64 length followed by the string bytes
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// ExtractBytes - read a Varint64 counted byte field from the start of buffer
//
// the result is a copy; the second value is the total number of bytes
// consumed, zero means the field was truncated or out of range
func ExtractBytes(buffer []byte, minimum int, maximum int) ([]byte, int) {
	length, n := ClippedVarint64(buffer, minimum, maximum)
	if 0 == n || n+length > len(buffer) {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length
}
