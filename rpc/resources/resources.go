// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resources

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/ratelimit"
)

// Resources
// ---------

const (
	rateLimitResources = 200
	rateBurstResources = 100
)

// Resources - type for the RPC
type Resources struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Engine
}

// New - create the resources service
func New(log *logger.L, engine *registry.Engine) *Resources {
	return &Resources{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitResources, rateBurstResources),
		Registry: engine,
	}
}

// Record - a resource tagged with its record type
type Record struct {
	Record string      `json:"record"`
	Id     string      `json:"id"`
	Data   interface{} `json:"data"`
}

// MakeRecord - name the variant held by a resource
func MakeRecord(id string, r resourcerecord.Resource) Record {
	name := "Blob"
	switch tr := r.(type) {
	case *resourcerecord.Blob:
		if tr.Encrypted() {
			name = "EncryptedBlob"
		}
	case *resourcerecord.Document:
		name = "Document"
	}
	return Record{
		Record: name,
		Id:     id,
		Data:   r,
	}
}

// Add a blob
// ----------

// AddArguments - arguments for RPC
type AddArguments struct {
	Caller  string `json:"caller"`
	Id      string `json:"id"`
	Content string `json:"content"`
}

// AddEncryptedArguments - arguments for RPC
type AddEncryptedArguments struct {
	Caller    string `json:"caller"`
	Id        string `json:"id"`
	Content   string `json:"content"`
	KeyHandle string `json:"keyHandle"`
}

// AddReply - result of an add
type AddReply struct {
	Id    string `json:"id"`
	Owner string `json:"owner"`
}

// Add - store a plain blob
func (resources *Resources) Add(arguments *AddArguments, reply *AddReply) error {
	if err := ratelimit.Limit(resources.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	resources.Log.Infof("Resources.Add: id: %q  caller: %q", arguments.Id, arguments.Caller)

	err := resources.Registry.AddResource(arguments.Id, []byte(arguments.Content), arguments.Caller)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Owner = arguments.Caller
	return nil
}

// AddEncrypted - store only the ciphertext of a blob
func (resources *Resources) AddEncrypted(arguments *AddEncryptedArguments, reply *AddReply) error {
	if err := ratelimit.Limit(resources.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.KeyHandle {
		return fault.ErrMissingParameters
	}

	resources.Log.Infof("Resources.AddEncrypted: id: %q  caller: %q  key: %q", arguments.Id, arguments.Caller, arguments.KeyHandle)

	err := resources.Registry.AddEncryptedResource(arguments.Id, []byte(arguments.Content), arguments.KeyHandle, arguments.Caller)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	reply.Owner = arguments.Caller
	return nil
}

// Get a resource
// --------------

// GetArguments - arguments for RPC
type GetArguments struct {
	Id string `json:"id"`
}

// Get - metadata of a stored resource, the content needs Access
func (resources *Resources) Get(arguments *GetArguments, reply *registry.Metadata) error {
	if err := ratelimit.Limit(resources.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	resources.Log.Infof("Resources.Get: id: %q", arguments.Id)

	m, err := resources.Registry.ResourceMetadata(arguments.Id)
	if nil != err {
		return err
	}
	*reply = *m
	return nil
}

// Gated access
// ------------

// AccessArguments - arguments for RPC
type AccessArguments struct {
	Caller    string `json:"caller"`
	Token     string `json:"token,omitempty"`
	Id        string `json:"id"`
	TokenCost uint64 `json:"tokenCost"`
	KeyHandle string `json:"keyHandle,omitempty"`
}

// AccessReply - content and the caller's remaining balance
type AccessReply struct {
	Resource  *Record `json:"resource,omitempty"`
	Plaintext string  `json:"plaintext,omitempty"`
	Remaining uint64  `json:"remaining"`
}

// Access - read a resource paying its token cost
//
// with a key handle the resource must be encrypted and the reply holds
// the plaintext instead of the stored record
func (resources *Resources) Access(arguments *AccessArguments, reply *AccessReply) error {
	if err := ratelimit.Limit(resources.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	caller, err := resources.Registry.ResolveCaller(arguments.Caller, arguments.Token)
	if nil != err {
		return err
	}

	resources.Log.Infof("Resources.Access: id: %q  caller: %q  cost: %d", arguments.Id, caller, arguments.TokenCost)

	if "" != arguments.KeyHandle {
		plaintext, remaining, err := resources.Registry.AccessEncrypted(arguments.Id, caller, arguments.TokenCost, arguments.KeyHandle)
		if nil != err {
			return err
		}
		reply.Plaintext = string(plaintext)
		reply.Remaining = remaining
		return nil
	}

	r, remaining, err := resources.Registry.Access(arguments.Id, caller, arguments.TokenCost)
	if nil != err {
		return err
	}
	record := MakeRecord(arguments.Id, r)
	reply.Resource = &record
	reply.Remaining = remaining
	return nil
}
