// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBuy(c *cli.Context) error {

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Buy(amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {

	receiver, err := checkString(c, "receiver")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	m, client, err := connect(c, true)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(receiver, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalance(c *cli.Context) error {

	m, client, err := connect(c, false)
	if nil != err {
		return err
	}
	defer client.Close()

	user, err := userOrSelf(c, m, "owner")
	if nil != err {
		return err
	}

	response, err := client.Balance(user)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
