// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// SHA3-256 of the empty string
const emptyDigest = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

func TestNewDigest(t *testing.T) {
	d := digest.NewDigest([]byte{})
	assert.Equal(t, emptyDigest, d.String(), "wrong empty digest")
	assert.Equal(t, "<SHA3-256:"+emptyDigest+">", fmt.Sprintf("%#v", d), "wrong go string")
}

func TestDeterministic(t *testing.T) {
	content := []byte("the quick brown fox")
	assert.Equal(t, digest.NewDigest(content), digest.NewDigest(content), "digest is not deterministic")
	assert.NotEqual(t, digest.NewDigest(content), digest.NewDigest([]byte("the quick brown fix")), "different content gave same digest")
}

func TestJSON(t *testing.T) {
	d := digest.NewDigest([]byte("json"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+d.String()+`"`, string(buffer), "wrong JSON")

	var d2 digest.Digest
	err = json.Unmarshal(buffer, &d2)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, d2, "round trip mismatch")
}

func TestFromString(t *testing.T) {
	d, err := digest.FromString(emptyDigest)
	assert.Nil(t, err, "valid hex rejected")
	assert.Equal(t, digest.NewDigest(nil), d, "wrong digest")

	_, err = digest.FromString("abcd")
	assert.Equal(t, fault.ErrWrongDigestLength, err, "short hex accepted")

	_, err = digest.FromString(emptyDigest[:62] + "zz")
	assert.NotNil(t, err, "bad hex accepted")
}

func TestFromBytes(t *testing.T) {
	var d digest.Digest
	err := digest.FromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrWrongDigestLength, err, "short buffer accepted")

	source := digest.NewDigest([]byte("bytes"))
	err = digest.FromBytes(&d, source[:])
	assert.Nil(t, err, "valid buffer rejected")
	assert.Equal(t, source, d, "wrong digest")
}
