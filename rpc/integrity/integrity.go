// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integrity

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/ratelimit"
)

const (
	rateLimitIntegrity = 200
	rateBurstIntegrity = 100
)

// Integrity - type for the RPC
type Integrity struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Engine
}

// New - create the integrity service
func New(log *logger.L, engine *registry.Engine) *Integrity {
	return &Integrity{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitIntegrity, rateBurstIntegrity),
		Registry: engine,
	}
}

// ContentArguments - arguments for RPC
type ContentArguments struct {
	Content string `json:"content"`
}

// StoreReply - digest of the sealed content
type StoreReply struct {
	Digest digest.Digest `json:"digest"`
}

// Store - seal some content
func (i *Integrity) Store(arguments *ContentArguments, reply *StoreReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	d, err := i.Registry.StoreDataHash([]byte(arguments.Content))
	if nil != err {
		return err
	}

	i.Log.Infof("Integrity.Store: digest: %v", d)

	reply.Digest = d
	return nil
}

// VerifyReply - result of a verification
type VerifyReply struct {
	Outcome integrity.Outcome `json:"outcome"`
	Digest  digest.Digest     `json:"digest"`
}

// Verify - check content against the sealed records
func (i *Integrity) Verify(arguments *ContentArguments, reply *VerifyReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	content := []byte(arguments.Content)
	outcome, err := i.Registry.VerifyDataIntegrity(content)
	if nil != err {
		return err
	}
	reply.Outcome = outcome
	reply.Digest = integrity.Seal(content)
	return nil
}

// SealedArguments - arguments for RPC
type SealedArguments struct {
	Digest digest.Digest `json:"digest"`
}

// SealedReply - content stored under a digest
type SealedReply struct {
	Content string `json:"content"`
}

// Content - fetch sealed content by digest
func (i *Integrity) Content(arguments *SealedArguments, reply *SealedReply) error {
	if err := ratelimit.Limit(i.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	content, err := i.Registry.SealedContent(arguments.Digest)
	if nil != err {
		return err
	}
	reply.Content = string(content)
	return nil
}
