package decode

import (
	"testing"

	"solana-geyser-client/internal/geyser"
)

func TestRenderTransactionErrorNil(t *testing.T) {
	if got := renderTransactionError(nil); got != nil {
		t.Errorf("nil error rendered as %q, want nil", *got)
	}
}

func TestDescribeTransactionError(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "simple variant",
			raw:  []byte{0, 0, 0, 0},
			want: "AccountInUse",
		},
		{
			name: "blockhash not found",
			raw:  []byte{7, 0, 0, 0},
			want: "BlockhashNotFound",
		},
		{
			name: "last known variant",
			raw:  []byte{36, 0, 0, 0},
			want: "UnbalancedTransaction",
		},
		{
			name: "instruction error with payload",
			raw:  []byte{8, 0, 0, 0, 2, 3, 0, 0, 0},
			want: "InstructionError(2, code=3)",
		},
		{
			name: "instruction error without payload",
			raw:  []byte{8, 0, 0, 0},
			want: "InstructionError",
		},
		{
			name: "duplicate instruction",
			raw:  []byte{30, 0, 0, 0, 4},
			want: "DuplicateInstruction(4)",
		},
		{
			name: "insufficient funds for rent",
			raw:  []byte{31, 0, 0, 0, 1},
			want: "InsufficientFundsForRent(1)",
		},
		{
			name: "program execution restricted",
			raw:  []byte{35, 0, 0, 0, 2},
			want: "ProgramExecutionTemporarilyRestricted(2)",
		},
		{
			name: "unknown variant",
			raw:  []byte{99, 0, 0, 0},
			want: "unknown error variant 99 (0x63000000)",
		},
		{
			name: "truncated encoding",
			raw:  []byte{1, 2},
			want: "unparsed error 0x0102",
		},
		{
			name: "empty encoding",
			raw:  nil,
			want: "unparsed error 0x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := describeTransactionError(tc.raw); got != tc.want {
				t.Errorf("describeTransactionError(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRenderTransactionErrorWraps(t *testing.T) {
	got := renderTransactionError(&geyser.TransactionError{Err: []byte{2, 0, 0, 0}})
	if got == nil || *got != "AccountNotFound" {
		t.Errorf("rendered = %v, want AccountNotFound", got)
	}
}
