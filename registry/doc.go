// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the externally callable registry operations
//
// every call takes the engine lock, opens one storage transaction,
// checks all of its preconditions, stages its writes and then either
// commits or aborts, so a failed call never leaves a partial effect
package registry
