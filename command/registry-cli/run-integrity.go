// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/digest"
)

func runSeal(c *cli.Context) error {

	content := c.String("content")
	if "" == content {
		return fmt.Errorf("content is required")
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Seal(content)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runVerify(c *cli.Context) error {

	content := c.String("content")
	if "" == content {
		return fmt.Errorf("content is required")
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Verify(content)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSealed(c *cli.Context) error {

	s, err := checkString(c, "digest")
	if nil != err {
		return err
	}
	d, err := digest.FromString(s)
	if nil != err {
		return err
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Sealed(d)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
