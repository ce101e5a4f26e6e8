// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/tokens"
)

// Buy - credit the caller's balance
func (client *Client) Buy(amount uint64) (*tokens.BalanceReply, error) {
	arguments := tokens.BuyArguments{
		Caller: client.caller,
		Amount: amount,
	}
	var reply tokens.BalanceReply
	if err := client.call("Tokens.Buy", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move tokens from the caller to another user
func (client *Client) Transfer(to string, amount uint64) (*tokens.BalanceReply, error) {
	arguments := tokens.TransferArguments{
		Caller: client.caller,
		To:     to,
		Amount: amount,
	}
	var reply tokens.BalanceReply
	if err := client.call("Tokens.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - of a user, empty user means the caller
func (client *Client) Balance(user string) (*tokens.BalanceReply, error) {
	arguments := tokens.BalanceArguments{
		Caller: client.caller,
		User:   user,
	}
	var reply tokens.BalanceReply
	if err := client.call("Tokens.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
