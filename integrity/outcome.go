// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package integrity

// Outcome - result of verifying content against the stored seals
type Outcome int

// possible outcome values
const (
	Unknown       Outcome = iota
	MatchesStored Outcome = iota
	Tampered      Outcome = iota
)

// String - convert the outcome value for printf
func (o Outcome) String() string {
	switch o {
	case Unknown:
		return "Unknown"
	case MatchesStored:
		return "MatchesStored"
	case Tampered:
		return "Tampered"
	default:
		return "*Invalid*"
	}
}

// MarshalText - convert the outcome value for JSON
func (o Outcome) MarshalText() ([]byte, error) {
	buffer := []byte(o.String())
	return buffer, nil
}

// UnmarshalText - convert the outcome value from JSON to enumeration
func (o *Outcome) UnmarshalText(s []byte) error {
	switch string(s) {
	case "MatchesStored":
		*o = MatchesStored
	case "Tampered":
		*o = Tampered
	default:
		*o = Unknown
	}
	return nil
}
