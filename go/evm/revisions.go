// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evm

import (
	"fmt"
	"strings"
)

// Revision is an enumeration for EVM specification revisions (aka. Hard-Forks).
type Revision int

// The list of supported revisions.
const (
	R07_Istanbul Revision = iota
	R09_Berlin
	R10_London
	R11_Paris
	R12_Shanghai
	R13_Cancun
	numRevisions int = iota
)

// NewestSupportedRevision is the latest revision covered by the engine.
// Cancun is known but requires transient storage and blob support.
const NewestSupportedRevision = R12_Shanghai

func (r Revision) String() string {
	switch r {
	case R07_Istanbul:
		return "Istanbul"
	case R09_Berlin:
		return "Berlin"
	case R10_London:
		return "London"
	case R11_Paris:
		return "Paris"
	case R12_Shanghai:
		return "Shanghai"
	case R13_Cancun:
		return "Cancun"
	}
	return fmt.Sprintf("Revision(%d)", r)
}

// ParseRevision resolves a revision by its case-insensitive name.
func ParseRevision(name string) (Revision, error) {
	for i := 0; i < numRevisions; i++ {
		if strings.EqualFold(Revision(i).String(), name) {
			return Revision(i), nil
		}
	}
	return 0, fmt.Errorf("unknown revision: %s", name)
}

// ErrUnsupportedRevision is reported for runs with an unknown revision.
type ErrUnsupportedRevision struct {
	Revision Revision
}

func (e *ErrUnsupportedRevision) Error() string {
	return fmt.Sprintf("unsupported revision %d", e.Revision)
}

// GetAllKnownRevisions lists all revisions in chronological order.
func GetAllKnownRevisions() []Revision {
	res := make([]Revision, 0, numRevisions)
	for i := 0; i < numRevisions; i++ {
		res = append(res, Revision(i))
	}
	return res
}
