// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/integrity"
)

// Seal - record the digest of some content
func (client *Client) Seal(content string) (*integrity.StoreReply, error) {
	arguments := integrity.ContentArguments{
		Content: content,
	}
	var reply integrity.StoreReply
	if err := client.call("Integrity.Store", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Verify - whether content matches a previously sealed digest
func (client *Client) Verify(content string) (*integrity.VerifyReply, error) {
	arguments := integrity.ContentArguments{
		Content: content,
	}
	var reply integrity.VerifyReply
	if err := client.call("Integrity.Verify", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Sealed - content recorded under a digest
func (client *Client) Sealed(d digest.Digest) (*integrity.SealedReply, error) {
	arguments := integrity.SealedArguments{
		Digest: d,
	}
	var reply integrity.SealedReply
	if err := client.call("Integrity.Content", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
