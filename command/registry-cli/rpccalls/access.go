// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/access"
)

// SetOwner - hand a resource over to a new owner
func (client *Client) SetOwner(id string, owner string) (*access.OwnerReply, error) {
	arguments := access.SetOwnerArguments{
		Caller: client.caller,
		Token:  client.token,
		Id:     id,
		Owner:  owner,
	}
	var reply access.OwnerReply
	if err := client.call("Access.SetOwner", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owner - current owner of a resource
func (client *Client) Owner(id string) (*access.OwnerReply, error) {
	arguments := access.OwnerArguments{
		Id: id,
	}
	var reply access.OwnerReply
	if err := client.call("Access.Owner", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Grant - give a user actions on a resource
func (client *Client) Grant(id string, user string, actions []string) (*access.RightsReply, error) {
	arguments := access.GrantArguments{
		Caller:  client.caller,
		Token:   client.token,
		Id:      id,
		User:    user,
		Actions: actions,
	}
	var reply access.RightsReply
	if err := client.call("Access.Grant", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Rights - actions a user holds on a resource
func (client *Client) Rights(id string, user string) (*access.RightsReply, error) {
	arguments := access.RightsArguments{
		Id:   id,
		User: user,
	}
	var reply access.RightsReply
	if err := client.call("Access.Rights", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Check - decide one action for a user
func (client *Client) Check(id string, user string, action string) (*access.CheckReply, error) {
	arguments := access.CheckArguments{
		Id:     id,
		User:   user,
		Action: action,
	}
	var reply access.CheckReply
	if err := client.call("Access.Check", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IssueToken - new access token for the caller, ttl in seconds
func (client *Client) IssueToken(ttl uint64) (*access.TokenReply, error) {
	arguments := access.IssueTokenArguments{
		Caller:     client.caller,
		TimeToLive: ttl,
	}
	var reply access.TokenReply
	if err := client.call("Access.IssueToken", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// VerifyToken - confirm a token is live
func (client *Client) VerifyToken(token string) (*access.TokenReply, error) {
	arguments := access.TokenArguments{
		Caller: client.caller,
		Token:  token,
	}
	var reply access.TokenReply
	if err := client.call("Access.VerifyToken", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RevokeToken - invalidate a token
func (client *Client) RevokeToken(token string) (*access.RevokeReply, error) {
	arguments := access.TokenArguments{
		Caller: client.caller,
		Token:  token,
	}
	var reply access.RevokeReply
	if err := client.call("Access.RevokeToken", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
