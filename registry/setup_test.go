// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

const (
	testingDirName = "testing"
	testKey        = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// engine over a memory database with one key "k1" in its keyring
func setupEngine(t *testing.T) (*registry.Engine, func()) {
	setupTestLogger()

	store, err := storage.Open("", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	keyring, err := cipher.NewKeyring(logger.New("keyring"), &cipher.Configuration{
		Keys: []cipher.KeyConfiguration{{Handle: "k1", Key: testKey}},
	})
	if nil != err {
		t.Fatalf("keyring error: %s", err)
	}

	return registry.New(store, keyring), func() {
		store.Close()
		teardownTestLogger()
	}
}
