// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/command/registry-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.file {
		return ErrNoConfigHome
	}
	if "" == m.config.User {
		return ErrMissingUser
	}

	err := configuration.Save(m.file, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "saved config file: %s\n", m.file)
	}

	return printJson(m.w, m.config)
}
