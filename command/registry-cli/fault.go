// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingCriteria = fault.InvalidError("at least one search criterion is required")
	ErrMissingUser     = fault.InvalidError("user is not set, use --user or setup")
	ErrNoConfigHome    = fault.InvalidError("XDG_CONFIG_HOME environment is not set")
)
