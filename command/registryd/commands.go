// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/resourcerecord"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	defaultListCount = 100
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-key", "key":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing key handle argument")
		}
		c, err := cipher.GenerateKey(arguments[0])
		if nil != err {
			exitwithstatus.Message("generate key: %q error: %s", arguments[0], err)
		}
		printJson(c)

	case "start", "run":
		return false // continue processing

	case "stats", "list", "ls":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-key HANDLE             (key)    - print a random keyring entry for HANDLE\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  stats                               - count the records in each database pool\n")
		fmt.Printf("\n")

		fmt.Printf("  list [COUNT]               (ls)     - list stored resource identifiers\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can inspect it
func processDataCommand(log *logger.L, arguments []string, store *storage.Store) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "stats":
		counts, err := poolCounts(store)
		if nil != err {
			exitwithstatus.Message("count error: %s", err)
		}
		printJson(counts)

	case "list", "ls":
		count := defaultListCount
		if len(arguments) > 0 {
			n, err := strconv.Atoi(arguments[0])
			if nil != err || n <= 0 {
				exitwithstatus.Message("error: invalid count: %q", arguments[0])
			}
			count = n
		}
		entries, err := listResources(store, count)
		if nil != err {
			exitwithstatus.Message("list error: %s", err)
		}
		log.Infof("listed: %d resources", len(entries))
		printJson(entries)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

type poolCount struct {
	Pool  string `json:"pool"`
	Count int    `json:"count"`
}

func poolCounts(store *storage.Store) ([]poolCount, error) {
	pools := []struct {
		name   string
		handle *storage.PoolHandle
	}{
		{"resources", store.Pool.Resources},
		{"owners", store.Pool.Owners},
		{"rights", store.Pool.Rights},
		{"balances", store.Pool.Balances},
		{"tokens", store.Pool.Tokens},
		{"field-index", store.Pool.FieldIndex},
		{"author-index", store.Pool.AuthorIndex},
		{"year-index", store.Pool.YearIndex},
		{"seals", store.Pool.Seals},
	}

	counts := make([]poolCount, 0, len(pools))
	for _, p := range pools {
		n, err := p.handle.Count(nil)
		if nil != err {
			return nil, err
		}
		counts = append(counts, poolCount{Pool: p.name, Count: n})
	}
	return counts, nil
}

type resourceEntry struct {
	Id   string `json:"id"`
	Type string `json:"type"`
}

func listResources(store *storage.Store, count int) ([]resourceEntry, error) {
	elements, err := store.Pool.Resources.Fetch(nil, count)
	if nil != err {
		return nil, err
	}

	entries := make([]resourceEntry, 0, len(elements))
	for _, e := range elements {
		entries = append(entries, resourceEntry{
			Id:   string(e.Key),
			Type: resourcerecord.Packed(e.Value).Type().String(),
		})
	}
	return entries, nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

func printJson(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	_, _ = os.Stdout.Write(b)
	_, _ = os.Stdout.WriteString("\n")
}
