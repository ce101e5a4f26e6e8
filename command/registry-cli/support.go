// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/command/registry-cli/rpccalls"
)

// connect as the configured user, which must be set when required
func connect(c *cli.Context, needUser bool) (*metadata, *rpccalls.Client, error) {

	m := c.App.Metadata["config"].(*metadata)

	token := c.GlobalString("token")
	if needUser && "" == m.config.User && "" == token {
		return nil, nil, ErrMissingUser
	}

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connect)
		fmt.Fprintf(m.e, "user: %s\n", m.config.User)
	}

	client, err := rpccalls.NewClient(m.config.Connect, m.config.User, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	client.UseToken(token)
	return m, client, nil
}

// fetch a mandatory string option
func checkString(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

// option naming another user, falling back to the current one
func userOrSelf(c *cli.Context, m *metadata, name string) (string, error) {
	user := strings.TrimSpace(c.String(name))
	if "" != user {
		return user, nil
	}
	if "" == m.config.User {
		return "", ErrMissingUser
	}
	return m.config.User, nil
}
