// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the RPC service tests
package fixtures

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/cipher"
	"github.com/FlamoDynamo/demo-0002-algolib/registry"
	"github.com/FlamoDynamo/demo-0002-algolib/storage"
)

// test settings
const (
	LogCategory = "testing"
	KeyHandle   = "k1"

	dir = "testing"
	key = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
)

// SetupTestLogger - critical only file logger in the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
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

// TeardownTestLogger - remove the testing directory
func TeardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Engine - registry over a memory database with KeyHandle in its keyring
func Engine(t *testing.T) (*registry.Engine, func()) {
	store, err := storage.Open("", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	keyring, err := cipher.NewKeyring(logger.New(LogCategory), &cipher.Configuration{
		Keys: []cipher.KeyConfiguration{{Handle: KeyHandle, Key: key}},
	})
	if nil != err {
		store.Close()
		t.Fatalf("keyring error: %s", err)
	}

	return registry.New(store, keyring), store.Close
}

// Certificate - a fresh self signed certificate and key in PEM form
func Certificate(t *testing.T) (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("registry test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return string(cert), string(key)
}
