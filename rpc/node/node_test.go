// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/counter"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/fixtures"
	"github.com/FlamoDynamo/demo-0002-algolib/rpc/node"
)

type handles []string

func (h handles) Handles() []string {
	return h
}

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Minute), "1.0", &c, handles{"k1", "k2"})

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info error")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, []string{"k1", "k2"}, reply.KeyHandles, "wrong key handles")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestInfoWithoutKeys(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", &c, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info error")
	assert.Equal(t, []string{}, reply.KeyHandles, "unexpected key handles")
}
