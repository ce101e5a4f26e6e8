// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/rpc/access"
)

func runOwner(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	newOwner := strings.TrimSpace(c.String("new"))

	m, client, err := connect(c, "" != newOwner)
	if nil != err {
		return err
	}
	defer client.Close()

	var response *access.OwnerReply
	if "" == newOwner {
		response, err = client.Owner(id)
	} else {
		response, err = client.SetOwner(id, newOwner)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGrant(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	receiver, err := checkString(c, "receiver")
	if nil != err {
		return err
	}
	actions := c.StringSlice("action")
	if 0 == len(actions) {
		return fmt.Errorf("action is required")
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Grant(id, receiver, actions)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRights(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	user, err := userOrSelf(c, m, "owner")
	if nil != err {
		return err
	}

	response, err := client.Rights(id, user)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCheck(c *cli.Context) error {

	id, err := checkString(c, "id")
	if nil != err {
		return err
	}
	action, err := checkString(c, "action")
	if nil != err {
		return err
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	user, err := userOrSelf(c, m, "owner")
	if nil != err {
		return err
	}

	response, err := client.Check(id, user, action)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokenIssue(c *cli.Context) error {

	ttl := c.Duration("ttl")
	if ttl < time.Second {
		return fmt.Errorf("invalid ttl: %s", ttl)
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IssueToken(uint64(ttl.Seconds()))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokenVerify(c *cli.Context) error {

	token := c.Args().First()
	if "" == token {
		return fmt.Errorf("token is required")
	}

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VerifyToken(token)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTokenRevoke(c *cli.Context) error {

	token := c.Args().First()
	if "" == token {
		return fmt.Errorf("token is required")
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RevokeToken(token)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
