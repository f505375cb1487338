// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"fmt"

	"github.com/Fantom-foundation/cps/go/evm"
)

// MaxRecursiveDepth is the maximum nesting level of frames. The top-level
// frame has depth 0.
const MaxRecursiveDepth = 1024

// Config describes the frame a StackExecutor is accounting for.
type Config struct {
	Revision evm.Revision
	Depth    int
	Static   bool    // < no state modifications are allowed
	Gas      evm.Gas // < gas available to the frame
}

// Validate checks that the configuration describes a frame the executor
// is able to handle.
func (c Config) Validate() error {
	if c.Revision < evm.R07_Istanbul || c.Revision > evm.NewestSupportedRevision {
		return &evm.ErrUnsupportedRevision{Revision: c.Revision}
	}
	if c.Depth < 0 || c.Depth > MaxRecursiveDepth {
		return fmt.Errorf("invalid depth %d, must be in [0, %d]", c.Depth, MaxRecursiveDepth)
	}
	if c.Gas < 0 {
		return fmt.Errorf("invalid gas %d, must not be negative", c.Gas)
	}
	return nil
}
