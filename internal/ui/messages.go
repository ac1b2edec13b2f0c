// SPDX-License-Identifier: Apache-2.0

// Message types for the Bubble Tea Model-View-Update loop.

package ui

import (
	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

// resultMsg carries a finished calculation back into the update loop.
type resultMsg struct {
	result   tax.Result
	stateTax statetax.Assessment
}

// computeFailedMsg is sent when the calculator rejected the inputs.
type computeFailedMsg struct{ err error }
