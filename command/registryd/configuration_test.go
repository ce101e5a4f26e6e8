// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlamoDynamo/demo-0002-algolib/util"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.pidfile = "registryd.pid"
M.client_rpc = {
    maximum_connections = 7,
    listen = { "127.0.0.1:2130" },
}
M.keyring = {
    file = "keyring.json",
    keys = {
        { handle = "k1", key = key_one },
    },
}
M.logging = {
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func writeConfiguration(t *testing.T, script string) (string, string) {
	dir, err := ioutil.TempDir("", "registryd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	// resolve any symlinked temporary directory
	dir, _ = filepath.EvalSymlinks(dir)

	fileName := filepath.Join(dir, "registryd.conf")
	if err := ioutil.WriteFile(fileName, []byte(script), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	c, err := getConfiguration(fileName, map[string]string{"key_one": key})
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, dir, c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "registryd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "registry.leveldb"), c.Database.Name, "wrong database")
	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.HttpsRPC.PrivateKey, "wrong https key")
	assert.Equal(t, uint64(defaultRPCClients), c.HttpsRPC.MaximumConnections, "default lost")
	assert.Equal(t, filepath.Join(dir, "keyring.json"), c.Keyring.File, "wrong key file")
	assert.Equal(t, 1, len(c.Keyring.Keys), "wrong key count")
	assert.Equal(t, "k1", c.Keyring.Keys[0].Handle, "wrong key handle")
	assert.Equal(t, key, c.Keyring.Keys[0].Key, "wrong key")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "wrong log file")

	assert.True(t, util.IsDirectory(c.Database.Directory), "database directory not created")
	assert.True(t, util.IsDirectory(c.Logging.Directory), "log directory not created")
}

func TestGetConfigurationErrors(t *testing.T) {
	scripts := []string{
		`return { data_directory = "" }`,
		`return { data_directory = "/no/such/registry/directory" }`,
		`return { data_directory = ".", database = { name = "sub/registry.leveldb" } }`,
		`return { data_directory = ".", logging = { file = "../registryd.log" } }`,
		`return {`,
	}

	for i, script := range scripts {
		dir, fileName := writeConfiguration(t, script)
		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, "%d: invalid configuration accepted", i)
		os.RemoveAll(dir)
	}
}
