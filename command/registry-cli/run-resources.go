// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/rpc/resources"
)

func runAdd(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	content := c.String("content")
	if "" == content {
		return fmt.Errorf("content is required")
	}
	keyHandle := c.String("key")

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	var response *resources.AddReply
	if "" == keyHandle {
		response, err = client.AddResource(id, content)
	} else {
		response, err = client.AddEncryptedResource(id, content, keyHandle)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ResourceMetadata(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAccess(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Access(id, c.Uint64("cost"), c.String("key"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
