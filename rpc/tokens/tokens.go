// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/ratelimit"
)

const (
	rateLimitTokens = 200
	rateBurstTokens = 100
)

// Tokens - type for the RPC
type Tokens struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Engine
}

// New - create the tokens service
func New(log *logger.L, engine *registry.Engine) *Tokens {
	return &Tokens{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		Registry: engine,
	}
}

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Caller string `json:"caller"`
	Amount uint64 `json:"amount"`
}

// BalanceReply - balance of one user
type BalanceReply struct {
	User    string `json:"user"`
	Balance uint64 `json:"balance"`
}

// Buy - credit tokens to the caller
func (tokens *Tokens) Buy(arguments *BuyArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	tokens.Log.Infof("Tokens.Buy: caller: %q  amount: %d", arguments.Caller, arguments.Amount)

	balance, err := tokens.Registry.BuyTokens(arguments.Caller, arguments.Amount)
	if nil != err {
		return err
	}
	reply.User = arguments.Caller
	reply.Balance = balance
	return nil
}

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller string `json:"caller"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// Transfer - move tokens from the caller to another user
func (tokens *Tokens) Transfer(arguments *TransferArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	tokens.Log.Infof("Tokens.Transfer: from: %q  to: %q  amount: %d", arguments.Caller, arguments.To, arguments.Amount)

	err := tokens.Registry.TransferTokens(arguments.Caller, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	balance, err := tokens.Registry.Balance(arguments.Caller)
	if nil != err {
		return err
	}
	reply.User = arguments.Caller
	reply.Balance = balance
	return nil
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Caller string `json:"caller"`
	User   string `json:"user"`
}

// Balance - tokens held by a user, the caller if no user is given
func (tokens *Tokens) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	user := arguments.User
	if "" == user {
		user = arguments.Caller
	}

	tokens.Log.Debugf("Tokens.Balance: user: %q", user)

	balance, err := tokens.Registry.Balance(user)
	if nil != err {
		return err
	}
	reply.User = user
	reply.Balance = balance
	return nil
}
