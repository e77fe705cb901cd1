package decode

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"solana-geyser-client/internal/geyser"
)

func testPubkeyBytes(fill byte) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = fill
	}
	return b
}

func testSignatureBytes(fill byte) []byte {
	b := make([]byte, 64)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestDecodeAccount(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Filters: []string{"client"},
		Account: &geyser.SubscribeUpdateAccount{
			Slot:      1234,
			IsStartup: false,
			Account: &geyser.SubscribeUpdateAccountInfo{
				Pubkey:       testPubkeyBytes(1),
				Lamports:     5000,
				Owner:        testPubkeyBytes(2),
				Executable:   true,
				RentEpoch:    361,
				Data:         []byte{0xde, 0xad, 0xbe, 0xef},
				WriteVersion: 42,
				TxnSignature: testSignatureBytes(3),
			},
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	account, ok := record.(*Account)
	if !ok {
		t.Fatalf("record = %T, want *Account", record)
	}

	if account.Kind() != KindAccount {
		t.Errorf("kind = %s, want account", account.Kind())
	}
	if account.Slot != 1234 {
		t.Errorf("slot = %d, want 1234", account.Slot)
	}
	if !bytes.Equal(account.Pubkey.Bytes(), testPubkeyBytes(1)) {
		t.Errorf("pubkey round-trip mismatch: %s", account.Pubkey)
	}
	if !bytes.Equal(account.Owner.Bytes(), testPubkeyBytes(2)) {
		t.Errorf("owner round-trip mismatch: %s", account.Owner)
	}
	if account.Lamports != 5000 {
		t.Errorf("lamports = %d, want 5000", account.Lamports)
	}
	if account.Data != "deadbeef" {
		t.Errorf("data = %q, want deadbeef", account.Data)
	}
	if account.WriteVersion != 42 {
		t.Errorf("write version = %d, want 42", account.WriteVersion)
	}
	if account.TxnSignature == "" {
		t.Error("expected txn signature to be rendered")
	}
}

func TestDecodeAccountStartupWithoutSignature(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Account: &geyser.SubscribeUpdateAccount{
			Slot:      10,
			IsStartup: true,
			Account: &geyser.SubscribeUpdateAccountInfo{
				Pubkey: testPubkeyBytes(1),
				Owner:  testPubkeyBytes(2),
			},
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	account := record.(*Account)
	if !account.IsStartup {
		t.Error("expected startup flag")
	}
	if account.TxnSignature != "" {
		t.Errorf("txn signature = %q, want empty for startup accounts", account.TxnSignature)
	}
}

func TestDecodeAccountMissingInfo(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Account: &geyser.SubscribeUpdateAccount{Slot: 1},
	}

	_, err := Decode(update)
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error = %v, want ContractError", err)
	}
	if contractErr.Variant != KindAccount || contractErr.Field != "account" {
		t.Errorf("contract error = %+v, want account/account", contractErr)
	}
}

func TestDecodeAccountBadPubkey(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Account: &geyser.SubscribeUpdateAccount{
			Account: &geyser.SubscribeUpdateAccountInfo{
				Pubkey: []byte{1, 2, 3},
				Owner:  testPubkeyBytes(2),
			},
		},
	}

	_, err := Decode(update)
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error = %v, want ContractError", err)
	}
	if contractErr.Field != "pubkey" {
		t.Errorf("field = %q, want pubkey", contractErr.Field)
	}
}

func TestDecodeSlot(t *testing.T) {
	parent := uint64(99)
	update := &geyser.SubscribeUpdate{
		Slot: &geyser.SubscribeUpdateSlot{
			Slot:   100,
			Parent: &parent,
			Status: int32(geyser.CommitmentConfirmed),
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	slot, ok := record.(*Slot)
	if !ok {
		t.Fatalf("record = %T, want *Slot", record)
	}
	if slot.Slot != 100 || slot.Parent == nil || *slot.Parent != 99 {
		t.Errorf("slot = %+v", slot)
	}
	if slot.Status != geyser.CommitmentConfirmed {
		t.Errorf("status = %s, want confirmed", slot.Status)
	}
}

func TestDecodeTransaction(t *testing.T) {
	cu := uint64(2100)
	update := &geyser.SubscribeUpdate{
		Transaction: &geyser.SubscribeUpdateTransaction{
			Slot: 555,
			Transaction: &geyser.SubscribeUpdateTransactionInfo{
				Signature: testSignatureBytes(7),
				IsVote:    false,
				Index:     3,
				Meta: &geyser.TransactionStatusMeta{
					Fee:                  5000,
					ComputeUnitsConsumed: &cu,
					LogMessages:          []string{"Program log: hello"},
				},
			},
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	tx, ok := record.(*Transaction)
	if !ok {
		t.Fatalf("record = %T, want *Transaction", record)
	}
	if tx.Slot != 555 || tx.Index != 3 || tx.Fee != 5000 {
		t.Errorf("transaction = %+v", tx)
	}
	if tx.Err != nil {
		t.Errorf("err = %v, want nil for successful transaction", *tx.Err)
	}
	if tx.ComputeUnitsConsumed == nil || *tx.ComputeUnitsConsumed != 2100 {
		t.Errorf("compute units = %v, want 2100", tx.ComputeUnitsConsumed)
	}
	if len(tx.LogMessages) != 1 {
		t.Errorf("log messages = %v", tx.LogMessages)
	}
	if !strings.Contains(tx.String(), "result=ok") {
		t.Errorf("rendering = %q, want result=ok", tx.String())
	}
}

func TestDecodeTransactionLogMessagesNone(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Transaction: &geyser.SubscribeUpdateTransaction{
			Transaction: &geyser.SubscribeUpdateTransactionInfo{
				Signature: testSignatureBytes(7),
				Meta: &geyser.TransactionStatusMeta{
					LogMessages:     []string{"should be dropped"},
					LogMessagesNone: true,
				},
			},
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if logs := record.(*Transaction).LogMessages; logs != nil {
		t.Errorf("log messages = %v, want nil when log_messages_none is set", logs)
	}
}

func TestDecodeTransactionMissingInfo(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Transaction: &geyser.SubscribeUpdateTransaction{Slot: 1},
	}

	_, err := Decode(update)
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error = %v, want ContractError", err)
	}
	if contractErr.Variant != KindTransaction {
		t.Errorf("variant = %s, want transaction", contractErr.Variant)
	}
}

func TestDecodeTransactionStatus(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		TransactionStatus: &geyser.SubscribeUpdateTransactionStatus{
			Slot:      777,
			Signature: testSignatureBytes(9),
			IsVote:    true,
			Index:     12,
			Err:       &geyser.TransactionError{Err: []byte{7, 0, 0, 0}},
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	status, ok := record.(*TransactionStatus)
	if !ok {
		t.Fatalf("record = %T, want *TransactionStatus", record)
	}
	if status.Slot != 777 || !status.IsVote || status.Index != 12 {
		t.Errorf("status = %+v", status)
	}
	if status.Err == nil || *status.Err != "BlockhashNotFound" {
		t.Errorf("err = %v, want BlockhashNotFound", status.Err)
	}
}

func TestDecodeTransactionStatusBadSignature(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		TransactionStatus: &geyser.SubscribeUpdateTransactionStatus{
			Signature: []byte{1, 2},
		},
	}

	_, err := Decode(update)
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("error = %v, want ContractError", err)
	}
	if contractErr.Variant != KindTransactionStatus || contractErr.Field != "signature" {
		t.Errorf("contract error = %+v", contractErr)
	}
}

func TestDecodeBlock(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		Block: &geyser.SubscribeUpdateBlock{
			Slot:                     2000,
			Blockhash:                "hash2000",
			ParentSlot:               1999,
			ParentBlockhash:          "hash1999",
			BlockTime:                &geyser.UnixTimestamp{Timestamp: 1700000000},
			BlockHeight:              &geyser.BlockHeight{BlockHeight: 1800},
			ExecutedTransactionCount: 321,
			UpdatedAccountCount:      654,
			EntriesCount:             64,
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	block, ok := record.(*Block)
	if !ok {
		t.Fatalf("record = %T, want *Block", record)
	}
	if block.Slot != 2000 || block.Blockhash != "hash2000" || block.ParentSlot != 1999 {
		t.Errorf("block = %+v", block)
	}
	if block.BlockTime == nil || *block.BlockTime != 1700000000 {
		t.Errorf("block time = %v", block.BlockTime)
	}
	if block.BlockHeight == nil || *block.BlockHeight != 1800 {
		t.Errorf("block height = %v", block.BlockHeight)
	}
}

func TestDecodeBlockMeta(t *testing.T) {
	update := &geyser.SubscribeUpdate{
		BlockMeta: &geyser.SubscribeUpdateBlockMeta{
			Slot:                     3000,
			Blockhash:                "hash3000",
			ParentSlot:               2999,
			ExecutedTransactionCount: 11,
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	meta, ok := record.(*BlockMeta)
	if !ok {
		t.Fatalf("record = %T, want *BlockMeta", record)
	}
	if meta.Slot != 3000 || meta.Blockhash != "hash3000" {
		t.Errorf("block meta = %+v", meta)
	}
	if meta.BlockTime != nil || meta.BlockHeight != nil {
		t.Errorf("optional fields should stay nil when absent: %+v", meta)
	}
}

func TestDecodeEntry(t *testing.T) {
	hash := []byte{0xca, 0xfe}
	update := &geyser.SubscribeUpdate{
		Entry: &geyser.SubscribeUpdateEntry{
			Slot:                     4000,
			Index:                    2,
			NumHashes:                12500,
			Hash:                     hash,
			ExecutedTransactionCount: 5,
		},
	}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	entry, ok := record.(*Entry)
	if !ok {
		t.Fatalf("record = %T, want *Entry", record)
	}
	if entry.Hash != hex.EncodeToString(hash) {
		t.Errorf("hash = %q, want %q", entry.Hash, hex.EncodeToString(hash))
	}
}

func TestDecodeControlFrames(t *testing.T) {
	record, err := Decode(&geyser.SubscribeUpdate{Ping: &geyser.SubscribeUpdatePing{}})
	if err != nil {
		t.Fatalf("Decode ping failed: %v", err)
	}
	if record.Kind() != KindPing || !record.Kind().IsControl() {
		t.Errorf("ping kind = %s, control = %t", record.Kind(), record.Kind().IsControl())
	}

	record, err = Decode(&geyser.SubscribeUpdate{Pong: &geyser.SubscribeUpdatePong{Id: 5}})
	if err != nil {
		t.Fatalf("Decode pong failed: %v", err)
	}
	pong, ok := record.(*Pong)
	if !ok {
		t.Fatalf("record = %T, want *Pong", record)
	}
	if pong.ID != 5 || !pong.Kind().IsControl() {
		t.Errorf("pong = %+v", pong)
	}
}

func TestDecodeUnknownVariant(t *testing.T) {
	update := &geyser.SubscribeUpdate{Filters: []string{"client"}}

	record, err := Decode(update)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	unknown, ok := record.(*Unknown)
	if !ok {
		t.Fatalf("record = %T, want *Unknown", record)
	}
	if len(unknown.Filters) != 1 || unknown.Filters[0] != "client" {
		t.Errorf("filters = %v", unknown.Filters)
	}
	if unknown.Kind().IsControl() {
		t.Error("unknown frames count as data updates")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindAccount:           "account",
		KindSlot:              "slot",
		KindTransaction:       "transaction",
		KindTransactionStatus: "transaction_status",
		KindBlock:             "block",
		KindBlockMeta:         "block_meta",
		KindEntry:             "entry",
		KindPing:              "ping",
		KindPong:              "pong",
		KindUnknown:           "unknown",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
