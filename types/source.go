package types

import (
	"fmt"
	"strings"
)

// FeeSource tags the protocol action that produced a routed amount. The router
// treats it as opaque and only records it against index accruals and events.
type FeeSource string

const (
	SourceBorrow             FeeSource = "borrow"
	SourceRepay              FeeSource = "repay"
	SourceWithdraw           FeeSource = "withdraw"
	SourceFlashLoan          FeeSource = "flash_loan"
	SourceCloseRollingCredit FeeSource = "close_rolling_credit"
	SourceIndexMint          FeeSource = "index_mint"
	SourceIndexBurn          FeeSource = "index_burn"
	SourceAuction            FeeSource = "auction"
	SourceMaintenance        FeeSource = "maintenance"
	SourcePenalty            FeeSource = "penalty"
)

// String implements fmt.Stringer.
func (s FeeSource) String() string { return string(s) }

// Validate rejects empty or whitespace-only tags.
func (s FeeSource) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return fmt.Errorf("fee source cannot be empty")
	}
	return nil
}
