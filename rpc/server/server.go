// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/counter"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/access"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/documents"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/integrity"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/node"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/resources"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/tokens"
)

// Create - an RPC server with every registry service registered
func Create(log *logger.L, version string, engine *registry.Engine, keys node.KeyHandles, rpcCount *counter.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(resources.New(log, engine))
	_ = server.Register(documents.New(log, engine))
	_ = server.Register(tokens.New(log, engine))
	_ = server.Register(integrity.New(log, engine))
	_ = server.Register(access.New(log, engine))
	_ = server.Register(node.New(log, start, version, rpcCount, keys))

	return server
}
