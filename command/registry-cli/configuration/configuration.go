// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// DefaultConnect - registryd client RPC address on the local host
const DefaultConnect = "127.0.0.1:2130"

// Configuration - configuration file data format
type Configuration struct {
	Connect string `json:"connect"`
	User    string `json:"user"`
}

// GetConfiguration - read a JSON configuration file
func GetConfiguration(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}

	if "" == options.Connect {
		options.Connect = DefaultConnect
	}
	return options, nil
}

// Save - write the configuration, keeping the previous file as a backup
func Save(filename string, configuration *Configuration) error {
	if nil == configuration || "" == configuration.Connect {
		return fault.ErrMissingParameters
	}

	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	err = ioutil.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	// no previous file is not an error
	_ = os.Remove(previousFile)
	_ = os.Link(filename, previousFile)

	return os.Rename(tempFile, filename)
}
