// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - number of live connections, safe for concurrent use
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
//
// a counter already at zero is left at zero
func (ic *Counter) Decrement() uint64 {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if 0 == n {
			return 0
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n-1) {
			return n - 1
		}
	}
}

// Acquire - increment only while the counter is below limit
func (ic *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n+1) {
			return true
		}
	}
}

// Release - give back a slot taken by Acquire
func (ic *Counter) Release() {
	ic.Decrement()
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
