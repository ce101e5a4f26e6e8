// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main - registry-cli talks JSON-RPC over TLS to a registryd
//
// connection and user come from the --connect and --user options, the
// REGISTRY_CONNECT and REGISTRY_USER environment or the file written by
// the setup command under XDG_CONFIG_HOME
package main
