// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cipher

// Algorithm - tag recorded with every ciphertext produced here
const Algorithm = "secretbox"

// Cipher - symmetric encryption by key handle
//
// callers never see key bytes, only the handle and the algorithm tag
type Cipher interface {
	Encrypt(keyHandle string, plaintext []byte) ([]byte, string, error)
	Decrypt(keyHandle string, algorithm string, ciphertext []byte) ([]byte, error)
}
