// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rights"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/ratelimit"
)

// Access
// ------

const (
	rateLimitAccess = 200
	rateBurstAccess = 100

	maximumGrantActions = 64
)

// Access - type for the RPC
type Access struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Engine
}

// New - create the access control service
func New(log *logger.L, engine *registry.Engine) *Access {
	return &Access{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccess, rateBurstAccess),
		Registry: engine,
	}
}

// Ownership
// ---------

// SetOwnerArguments - arguments for RPC
type SetOwnerArguments struct {
	Caller string `json:"caller"`
	Token  string `json:"token,omitempty"`
	Id     string `json:"id"`
	Owner  string `json:"owner"`
}

// OwnerReply - current owner of a resource
type OwnerReply struct {
	Id    string `json:"id"`
	Owner string `json:"owner"`
}

// SetOwner - transfer a resource to a new owner
func (access *Access) SetOwner(arguments *SetOwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := access.Registry.ResolveCaller(arguments.Caller, arguments.Token)
	if nil != err {
		return err
	}

	access.Log.Infof("Access.SetOwner: id: %q  owner: %q  caller: %q", arguments.Id, arguments.Owner, caller)

	err = access.Registry.SetOwner(arguments.Id, arguments.Owner, caller)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Owner = arguments.Owner
	return nil
}

// OwnerArguments - arguments for RPC
type OwnerArguments struct {
	Id string `json:"id"`
}

// Owner - owner of a resource
func (access *Access) Owner(arguments *OwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	owner, err := access.Registry.Owner(arguments.Id)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Owner = owner
	return nil
}

// Rights
// ------

// GrantArguments - arguments for RPC
type GrantArguments struct {
	Caller  string   `json:"caller"`
	Token   string   `json:"token,omitempty"`
	Id      string   `json:"id"`
	User    string   `json:"user"`
	Actions []string `json:"actions"`
}

// RightsReply - actions explicitly granted to a user
type RightsReply struct {
	Id      string   `json:"id"`
	User    string   `json:"user"`
	Actions []string `json:"actions"`
}

// Grant - give a user additional actions on a resource
func (access *Access) Grant(arguments *GrantArguments, reply *RightsReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(access.Limiter, len(arguments.Actions), maximumGrantActions); nil != err {
		return err
	}

	caller, err := access.Registry.ResolveCaller(arguments.Caller, arguments.Token)
	if nil != err {
		return err
	}

	access.Log.Infof("Access.Grant: id: %q  user: %q  actions: %v  caller: %q", arguments.Id, arguments.User, arguments.Actions, caller)

	err = access.Registry.Grant(arguments.Id, arguments.User, arguments.Actions, caller)
	if nil != err {
		return err
	}
	actions, err := access.Registry.Rights(arguments.Id, arguments.User)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.User = arguments.User
	reply.Actions = actions
	return nil
}

// RightsArguments - arguments for RPC
type RightsArguments struct {
	Id   string `json:"id"`
	User string `json:"user"`
}

// Rights - list the explicit rights of a user
func (access *Access) Rights(arguments *RightsArguments, reply *RightsReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	actions, err := access.Registry.Rights(arguments.Id, arguments.User)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.User = arguments.User
	reply.Actions = actions
	return nil
}

// CheckArguments - arguments for RPC
type CheckArguments struct {
	Id     string `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
}

// CheckReply - the access decision
type CheckReply struct {
	Decision rights.Decision `json:"decision"`
	Allowed  bool            `json:"allowed"`
}

// Check - decide whether a user may perform an action
func (access *Access) Check(arguments *CheckArguments, reply *CheckReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	decision, err := access.Registry.Check(arguments.Id, arguments.User, arguments.Action)
	if nil != err {
		return err
	}
	reply.Decision = decision
	reply.Allowed = decision.Allowed()
	return nil
}

// Access tokens
// -------------

// IssueTokenArguments - arguments for RPC
type IssueTokenArguments struct {
	Caller     string `json:"caller"`
	TimeToLive uint64 `json:"timeToLive"`
}

// TokenReply - an access token and its holder
type TokenReply struct {
	Token   string    `json:"token,omitempty"`
	User    string    `json:"user"`
	Expires time.Time `json:"expires"`
}

// IssueToken - create a bearer token for the caller
func (access *Access) IssueToken(arguments *IssueTokenArguments, reply *TokenReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	access.Log.Infof("Access.IssueToken: caller: %q  ttl: %ds", arguments.Caller, arguments.TimeToLive)

	ttl := time.Duration(arguments.TimeToLive) * time.Second
	token, expires, err := access.Registry.IssueAccessToken(arguments.Caller, ttl)
	if nil != err {
		return err
	}
	reply.Token = token
	reply.User = arguments.Caller
	reply.Expires = expires
	return nil
}

// TokenArguments - arguments for RPC
type TokenArguments struct {
	Caller string `json:"caller"`
	Token  string `json:"token"`
}

// VerifyToken - resolve a token to its holder
func (access *Access) VerifyToken(arguments *TokenArguments, reply *TokenReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	holder, err := access.Registry.VerifyAccessToken(arguments.Token)
	if nil != err {
		return err
	}
	reply.User = holder.User
	reply.Expires = holder.Expires
	return nil
}

// RevokeReply - result of revocation
type RevokeReply struct {
	Revoked bool `json:"revoked"`
}

// RevokeToken - withdraw a token held by the caller
func (access *Access) RevokeToken(arguments *TokenArguments, reply *RevokeReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	access.Log.Infof("Access.RevokeToken: caller: %q", arguments.Caller)

	err := access.Registry.RevokeAccessToken(arguments.Token, arguments.Caller)
	if nil != err {
		return err
	}
	reply.Revoked = true
	return nil
}
