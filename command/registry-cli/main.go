// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/urfave/cli"

	"github.com/FlamoDynamo/demo-0002-algolib/command/registry-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "client for the registryd resource registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "",
			Usage:  " registryd host/IP and port, `HOST:PORT`",
			EnvVar: "REGISTRY_CONNECT",
		},
		cli.StringFlag{
			Name:   "user, u",
			Value:  "",
			Usage:  " act as user `NAME`",
			EnvVar: "REGISTRY_USER",
		},
		cli.StringFlag{
			Name:   "token, T",
			Value:  "",
			Usage:  " access `TOKEN` identifying the user on gated calls",
			EnvVar: "REGISTRY_TOKEN",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "save connection and user in the configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runSetup,
		},
		{
			Name:   "info",
			Usage:  "display registryd info",
			Action: runInfo,
		},
		{
			Name:      "add",
			Usage:     "store a new resource owned by the current user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.StringFlag{
					Name:  "content, t",
					Value: "",
					Usage: "*resource `CONTENT`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " encrypt under server key `HANDLE`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "get",
			Usage:     "display the metadata of a stored resource",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "access",
			Usage:     "read a resource paying its token cost",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.Uint64Flag{
					Name:  "cost, n",
					Value: 0,
					Usage: " token cost `COUNT`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " decrypt with server key `HANDLE`",
				},
			},
			Action: runAccess,
		},
		{
			Name:      "document",
			Usage:     "store and index a new document",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*document `ID`",
				},
				cli.StringFlag{
					Name:  "title, T",
					Value: "",
					Usage: "*document `TITLE`",
				},
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: "*document `AUTHOR`",
				},
				cli.Uint64Flag{
					Name:  "year, y",
					Value: 0,
					Usage: "*publication `YEAR`",
				},
				cli.StringFlag{
					Name:  "field, f",
					Value: "",
					Usage: "*subject `FIELD`",
				},
				cli.StringFlag{
					Name:  "content, t",
					Value: "",
					Usage: "*document `CONTENT`",
				},
			},
			Action: runDocument,
		},
		{
			Name:      "search",
			Usage:     "list documents matching every given criterion",
			ArgsUsage: "\n   (+ = at least one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "field, f",
					Value: "",
					Usage: "+subject `FIELD`",
				},
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: "+document `AUTHOR`",
				},
				cli.Uint64Flag{
					Name:  "year, y",
					Value: 0,
					Usage: "+publication `YEAR`",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "content",
			Usage:     "display the text of a document paying its token cost",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*document `ID`",
				},
				cli.Uint64Flag{
					Name:  "cost, n",
					Value: 0,
					Usage: " token cost `COUNT`",
				},
			},
			Action: runContent,
		},
		{
			Name:      "buy",
			Usage:     "credit tokens to the current user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*token `COUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens to another user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `USER`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*token `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "balance",
			Usage:     "display a token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " balance of `USER` [current user]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "owner",
			Usage:     "display or change the owner of a resource",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.StringFlag{
					Name:  "new, N",
					Value: "",
					Usage: " hand the resource to `USER`",
				},
			},
			Action: runOwner,
		},
		{
			Name:      "grant",
			Usage:     "give a user actions on a resource",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `USER`",
				},
				cli.StringSliceFlag{
					Name:  "action, A",
					Usage: "*granted `ACTION` (repeatable)",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "rights",
			Usage:     "display the actions a user holds on a resource",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " rights of `USER` [current user]",
				},
			},
			Action: runRights,
		},
		{
			Name:      "check",
			Usage:     "decide whether a user may perform an action",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*resource `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " check `USER` [current user]",
				},
				cli.StringFlag{
					Name:  "action, A",
					Value: "read",
					Usage: " `ACTION` to check",
				},
			},
			Action: runCheck,
		},
		{
			Name:      "seal",
			Usage:     "record the digest of some content",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, t",
					Value: "",
					Usage: "*`CONTENT` to seal",
				},
			},
			Action: runSeal,
		},
		{
			Name:      "verify",
			Usage:     "compare content with the sealed records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, t",
					Value: "",
					Usage: "*`CONTENT` to verify",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "sealed",
			Usage:     "display the content sealed under a digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*hex `DIGEST`",
				},
			},
			Action: runSealed,
		},
		{
			Name:  "token",
			Usage: "manage access tokens",
			Subcommands: []cli.Command{
				{
					Name:  "issue",
					Usage: "issue a token for the current user",
					Flags: []cli.Flag{
						cli.DurationFlag{
							Name:  "ttl, l",
							Value: time.Hour,
							Usage: " token lifetime `DURATION`",
						},
					},
					Action: runTokenIssue,
				},
				{
					Name:      "verify",
					Usage:     "display the holder of a token",
					ArgsUsage: "TOKEN",
					Action:    runTokenVerify,
				},
				{
					Name:      "revoke",
					Usage:     "withdraw a token",
					ArgsUsage: "TOKEN",
					Action:    runTokenRevoke,
				},
			},
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := ""
		p := os.Getenv("XDG_CONFIG_HOME")
		if "" != p {
			file = path.Join(p, app.Name, app.Name+".json")
		}

		config := &configuration.Configuration{
			Connect: configuration.DefaultConnect,
		}
		if "" != file && "setup" != command {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			if _, err := os.Stat(file); nil == err {
				config, err = configuration.GetConfiguration(file)
				if nil != err {
					return err
				}
			}
		}

		// flags and environment override the file
		if connect := c.GlobalString("connect"); "" != connect {
			config.Connect = connect
		}
		if user := c.GlobalString("user"); "" != user {
			config.User = user
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
