// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rights

// Decision - result of an access check
type Decision int

// possible decisions
const (
	Denied       Decision = iota
	OwnerAllowed Decision = iota
	RightAllowed Decision = iota
)

// String - convert the decision for printf
func (d Decision) String() string {
	switch d {
	case Denied:
		return "Denied"
	case OwnerAllowed:
		return "OwnerAllowed"
	case RightAllowed:
		return "RightAllowed"
	default:
		return "*Unknown*"
	}
}

// MarshalText - convert the decision for JSON
func (d Decision) MarshalText() ([]byte, error) {
	buffer := []byte(d.String())
	return buffer, nil
}

// UnmarshalText - convert the decision from JSON, anything unknown is denied
func (d *Decision) UnmarshalText(s []byte) error {
	switch string(s) {
	case "OwnerAllowed":
		*d = OwnerAllowed
	case "RightAllowed":
		*d = RightAllowed
	default:
		*d = Denied
	}
	return nil
}

// Allowed - true for any decision other than Denied
func (d Decision) Allowed() bool {
	return Denied != d
}
