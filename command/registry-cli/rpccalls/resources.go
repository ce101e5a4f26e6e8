// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/resources"
)

// AddResource - store opaque content owned by the caller
func (client *Client) AddResource(id string, content string) (*resources.AddReply, error) {
	arguments := resources.AddArguments{
		Caller:  client.caller,
		Id:      id,
		Content: content,
	}
	var reply resources.AddReply
	if err := client.call("Resources.Add", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddEncryptedResource - store content encrypted under a server key
func (client *Client) AddEncryptedResource(id string, content string, keyHandle string) (*resources.AddReply, error) {
	arguments := resources.AddEncryptedArguments{
		Caller:    client.caller,
		Id:        id,
		Content:   content,
		KeyHandle: keyHandle,
	}
	var reply resources.AddReply
	if err := client.call("Resources.AddEncrypted", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ResourceMetadata - type, owner, size and digest of a stored resource
func (client *Client) ResourceMetadata(id string) (*registry.Metadata, error) {
	arguments := resources.GetArguments{
		Id: id,
	}
	var reply registry.Metadata
	if err := client.call("Resources.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Access - read a resource through the rights and token gate
func (client *Client) Access(id string, tokenCost uint64, keyHandle string) (*resources.AccessReply, error) {
	arguments := resources.AccessArguments{
		Caller:    client.caller,
		Token:     client.token,
		Id:        id,
		TokenCost: tokenCost,
		KeyHandle: keyHandle,
	}
	var reply resources.AccessReply
	if err := client.call("Resources.Access", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
