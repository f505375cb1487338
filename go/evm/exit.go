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

import "fmt"

// Status enumerates the ways an execution frame may terminate.
type Status byte

const (
	Stopped        Status = iota // < execution stopped with a STOP or ran out of code
	Returned                     // < execution stopped with a RETURN
	SelfDestructed               // < execution stopped with a SELFDESTRUCT
	Reverted                     // < execution stopped with a REVERT
	Failed                       // < execution aborted by an error (out of gas, invalid jump, ...)
	Fatal                        // < execution aborted by a condition the engine can not recover from
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Returned:
		return "returned"
	case SelfDestructed:
		return "self-destructed"
	case Reverted:
		return "reverted"
	case Failed:
		return "failed"
	case Fatal:
		return "fatal"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// ExitReason is the terminal result of an execution frame. Err is only set
// for the Failed and Fatal states.
type ExitReason struct {
	Status Status
	Err    error
}

var (
	ExitStopped        = ExitReason{Status: Stopped}
	ExitReturned       = ExitReason{Status: Returned}
	ExitSelfDestructed = ExitReason{Status: SelfDestructed}
	ExitReverted       = ExitReason{Status: Reverted}
)

// ExitWithError creates a Failed exit reason caused by the given error.
func ExitWithError(err error) ExitReason {
	return ExitReason{Status: Failed, Err: err}
}

// ExitWithFatal creates a Fatal exit reason caused by the given error.
func ExitWithFatal(err error) ExitReason {
	return ExitReason{Status: Fatal, Err: err}
}

// IsSucceed reports whether the frame ended without reverting any effects.
func (r ExitReason) IsSucceed() bool {
	return r.Status == Stopped || r.Status == Returned || r.Status == SelfDestructed
}

func (r ExitReason) IsRevert() bool {
	return r.Status == Reverted
}

func (r ExitReason) IsError() bool {
	return r.Status == Failed
}

func (r ExitReason) IsFatal() bool {
	return r.Status == Fatal
}

func (r ExitReason) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%v: %v", r.Status, r.Err)
	}
	return r.Status.String()
}
