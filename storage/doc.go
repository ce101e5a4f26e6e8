// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes are staged in a single batch by a Transaction and only
// reach the database on Commit; reads through the transaction see
// the staged values first.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++          = concatenation of byte data
// 3. count       = successive index value as big endian uint64 (8 bytes)
// 4. year        = big endian uint64 (8 bytes)
// 5. digest      = SHA3-256 of content (32 bytes)
// 6. 0x00        = separator between variable length key parts
//
// Resources:
//
//   R ++ resourceId             - resource record
//                                 data: packed resource (tag ++ fields)
//   O ++ resourceId             - current owner
//                                 data: user id
//   A ++ resourceId ++ 0x00 ++ user
//                               - access rights of one user
//                                 data: count ++ [ length ++ action ]
//
// Tokens:
//
//   B ++ user                   - token balance
//                                 data: big endian uint64
//   T ++ token                  - issued access token
//                                 data: user ++ 0x00 ++ expiry (unix seconds, 8 bytes)
//
// Document index:
//
//   N ++ kind ++ value          - next count value for a postings list
//                                 data: count
//   F ++ field ++ 0x00 ++ count - field postings
//                                 data: resourceId
//   W ++ author ++ 0x00 ++ count
//                               - author postings
//                                 data: resourceId
//   Y ++ year ++ count          - year postings
//                                 data: resourceId
//
// Integrity:
//
//   S ++ digest                 - sealed content
//                                 data: content bytes
package storage
