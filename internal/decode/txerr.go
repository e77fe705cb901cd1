package decode

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"solana-geyser-client/internal/geyser"
)

// Solana encodes TransactionError with bincode: a little-endian u32 variant
// index, optionally followed by variant payload. The variant order below
// must match the Solana SDK enum declaration order.
var transactionErrorNames = []string{
	"AccountInUse",
	"AccountLoadedTwice",
	"AccountNotFound",
	"ProgramAccountNotFound",
	"InsufficientFundsForFee",
	"InvalidAccountForFee",
	"AlreadyProcessed",
	"BlockhashNotFound",
	"InstructionError",
	"CallChainTooDeep",
	"MissingSignatureForFee",
	"InvalidAccountIndex",
	"SignatureFailure",
	"InvalidProgramForExecution",
	"SanitizeFailure",
	"ClusterMaintenance",
	"AccountBorrowOutstanding",
	"WouldExceedMaxBlockCostLimit",
	"UnsupportedVersion",
	"InvalidWritableAccount",
	"WouldExceedMaxAccountCostLimit",
	"WouldExceedAccountDataBlockLimit",
	"TooManyAccountLocks",
	"AddressLookupTableNotFound",
	"InvalidAddressLookupTableOwner",
	"InvalidAddressLookupTableData",
	"InvalidAddressLookupTableIndex",
	"InvalidRentPayingAccount",
	"WouldExceedMaxVoteCostLimit",
	"WouldExceedAccountDataTotalLimit",
	"DuplicateInstruction",
	"InsufficientFundsForRent",
	"MaxLoadedAccountsDataSizeExceeded",
	"InvalidLoadedAccountsDataSizeLimit",
	"ResanitizationNeeded",
	"ProgramExecutionTemporarilyRestricted",
	"UnbalancedTransaction",
}

const (
	txErrInstructionError      = 8
	txErrDuplicateInstruction  = 30
	txErrInsufficientFundsRent = 31
	txErrProgramExecRestricted = 35
)

// renderTransactionError maps the wire transaction-error encoding into a
// readable description. nil means the transaction succeeded. Encodings this
// client cannot interpret are rendered as hex rather than dropped.
func renderTransactionError(e *geyser.TransactionError) *string {
	if e == nil {
		return nil
	}

	desc := describeTransactionError(e.Err)
	return &desc
}

func describeTransactionError(raw []byte) string {
	if len(raw) < 4 {
		return fmt.Sprintf("unparsed error 0x%s", hex.EncodeToString(raw))
	}

	variant := binary.LittleEndian.Uint32(raw[:4])
	if int(variant) >= len(transactionErrorNames) {
		return fmt.Sprintf("unknown error variant %d (0x%s)", variant, hex.EncodeToString(raw))
	}

	name := transactionErrorNames[variant]
	payload := raw[4:]

	switch variant {
	case txErrInstructionError:
		if len(payload) < 5 {
			return name
		}
		index := payload[0]
		code := binary.LittleEndian.Uint32(payload[1:5])
		return fmt.Sprintf("%s(%d, code=%d)", name, index, code)
	case txErrDuplicateInstruction, txErrInsufficientFundsRent, txErrProgramExecRestricted:
		if len(payload) < 1 {
			return name
		}
		return fmt.Sprintf("%s(%d)", name, payload[0])
	default:
		return name
	}
}
