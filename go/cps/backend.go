// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cps

import "github.com/Fantom-foundation/cps/go/evm"

//go:generate mockgen -source backend.go -destination backend_mock.go -package cps

// Backend is the host-delegated logic of a single frame wrapped by an
// Executor. It answers all state queries, accounts for gas and decides
// whether a sub-call completes in place or needs to be suspended.
type Backend interface {
	evm.Handler

	// CreateFeedback reconciles the outcome of a suspended creation.
	CreateFeedback(evm.CreateFeedback) error
	// CallFeedback reconciles the outcome of a suspended call.
	CallFeedback(evm.CallFeedback) error

	Gas() evm.Gas
	Refund() evm.Gas
	// ReservedGas is the endowment handed to the outstanding sub-call.
	ReservedGas() (evm.Gas, bool)
	IntoState() evm.Host
}

// Runtime is a steppable bytecode engine. Run executes until the frame
// terminates or a sub-call suspends it. A suspended runtime is continued by
// one of the Resume methods followed by another Run.
type Runtime interface {
	Run(evm.Handler) (evm.ExitReason, evm.Interrupt)
	ResumeCreate(evm.CreateFeedback) error
	ResumeCall(evm.CallFeedback) error
}
