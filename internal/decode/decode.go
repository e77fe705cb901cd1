// Package decode turns raw subscription update frames into typed,
// human-inspectable records. Pure: no I/O, no state.
package decode

import (
	"encoding/hex"
	"fmt"

	"solana-geyser-client/internal/geyser"
	"solana-geyser-client/internal/solkey"
)

// Kind identifies the update variant.
type Kind int

// Update variants. KindUnknown covers frames whose variant this client does
// not recognize; they decode to a pass-through record instead of failing.
const (
	KindUnknown Kind = iota
	KindAccount
	KindSlot
	KindTransaction
	KindTransactionStatus
	KindBlock
	KindBlockMeta
	KindEntry
	KindPing
	KindPong
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindSlot:
		return "slot"
	case KindTransaction:
		return "transaction"
	case KindTransactionStatus:
		return "transaction_status"
	case KindBlock:
		return "block"
	case KindBlockMeta:
		return "block_meta"
	case KindEntry:
		return "entry"
	case KindPing:
		return "ping"
	case KindPong:
		return "pong"
	default:
		return "unknown"
	}
}

// IsControl reports whether the variant is a keepalive control frame rather
// than a data update.
func (k Kind) IsControl() bool {
	return k == KindPing || k == KindPong
}

// Update is one decoded frame.
type Update interface {
	Kind() Kind
	String() string
}

// ContractError reports a structurally required field absent from an
// otherwise well-formed frame. The server is expected to always populate
// these fields; continuing after a violation would present corrupted state.
type ContractError struct {
	Variant Kind
	Field   string
	Reason  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("decode %s update: %s: %s", e.Variant, e.Field, e.Reason)
}

func contractErr(variant Kind, field, reason string) error {
	return &ContractError{Variant: variant, Field: field, Reason: reason}
}

// Account is a decoded account mutation.
type Account struct {
	Slot         uint64
	IsStartup    bool
	Pubkey       solkey.Pubkey
	Lamports     uint64
	Owner        solkey.Pubkey
	Executable   bool
	RentEpoch    uint64
	Data         string // lowercase hex
	WriteVersion uint64
	TxnSignature string // base58, empty when absent
}

func (a *Account) Kind() Kind { return KindAccount }

func (a *Account) String() string {
	return fmt.Sprintf("account{slot=%d pubkey=%s owner=%s lamports=%d write_version=%d data=%dB}",
		a.Slot, a.Pubkey, a.Owner, a.Lamports, a.WriteVersion, len(a.Data)/2)
}

// Transaction is a decoded processed transaction.
type Transaction struct {
	Slot                 uint64
	Signature            solkey.Signature
	IsVote               bool
	Index                uint64
	Err                  *string // nil when the transaction succeeded
	Fee                  uint64
	ComputeUnitsConsumed *uint64
	LogMessages          []string
}

func (t *Transaction) Kind() Kind { return KindTransaction }

func (t *Transaction) String() string {
	outcome := "ok"
	if t.Err != nil {
		outcome = *t.Err
	}
	return fmt.Sprintf("transaction{slot=%d signature=%s vote=%t index=%d fee=%d result=%s}",
		t.Slot, t.Signature, t.IsVote, t.Index, t.Fee, outcome)
}

// TransactionStatus is a decoded transaction outcome notification.
type TransactionStatus struct {
	Slot      uint64
	Signature solkey.Signature
	IsVote    bool
	Index     uint64
	Err       *string
}

func (t *TransactionStatus) Kind() Kind { return KindTransactionStatus }

func (t *TransactionStatus) String() string {
	outcome := "ok"
	if t.Err != nil {
		outcome = *t.Err
	}
	return fmt.Sprintf("transaction_status{slot=%d signature=%s vote=%t index=%d result=%s}",
		t.Slot, t.Signature, t.IsVote, t.Index, outcome)
}

// Slot is a decoded slot status notification.
type Slot struct {
	Slot   uint64
	Parent *uint64
	Status geyser.CommitmentLevel
}

func (s *Slot) Kind() Kind { return KindSlot }

func (s *Slot) String() string {
	if s.Parent != nil {
		return fmt.Sprintf("slot{slot=%d parent=%d status=%s}", s.Slot, *s.Parent, s.Status)
	}
	return fmt.Sprintf("slot{slot=%d status=%s}", s.Slot, s.Status)
}

// Block is a decoded full-block notification.
type Block struct {
	Slot                     uint64
	Blockhash                string
	ParentSlot               uint64
	ParentBlockhash          string
	BlockTime                *int64
	BlockHeight              *uint64
	ExecutedTransactionCount uint64
	UpdatedAccountCount      uint64
	EntriesCount             uint64
}

func (b *Block) Kind() Kind { return KindBlock }

func (b *Block) String() string {
	return fmt.Sprintf("block{slot=%d blockhash=%s parent=%d transactions=%d}",
		b.Slot, b.Blockhash, b.ParentSlot, b.ExecutedTransactionCount)
}

// BlockMeta is a decoded block metadata notification.
type BlockMeta struct {
	Slot                     uint64
	Blockhash                string
	ParentSlot               uint64
	ParentBlockhash          string
	BlockTime                *int64
	BlockHeight              *uint64
	ExecutedTransactionCount uint64
}

func (b *BlockMeta) Kind() Kind { return KindBlockMeta }

func (b *BlockMeta) String() string {
	return fmt.Sprintf("block_meta{slot=%d blockhash=%s parent=%d transactions=%d}",
		b.Slot, b.Blockhash, b.ParentSlot, b.ExecutedTransactionCount)
}

// Entry is a decoded ledger entry notification.
type Entry struct {
	Slot                     uint64
	Index                    uint64
	NumHashes                uint64
	Hash                     string // lowercase hex
	ExecutedTransactionCount uint64
}

func (e *Entry) Kind() Kind { return KindEntry }

func (e *Entry) String() string {
	return fmt.Sprintf("entry{slot=%d index=%d hash=%s}", e.Slot, e.Index, e.Hash)
}

// Ping is the server keepalive probe.
type Ping struct{}

func (p *Ping) Kind() Kind     { return KindPing }
func (p *Ping) String() string { return "ping{}" }

// Pong echoes a client ping id.
type Pong struct {
	ID int32
}

func (p *Pong) Kind() Kind     { return KindPong }
func (p *Pong) String() string { return fmt.Sprintf("pong{id=%d}", p.ID) }

// Unknown is the pass-through record for unrecognized variants.
type Unknown struct {
	Filters []string
}

func (u *Unknown) Kind() Kind     { return KindUnknown }
func (u *Unknown) String() string { return fmt.Sprintf("unknown{filters=%v}", u.Filters) }

// Decode converts one raw update frame into its typed record. It is total
// over the known variants; an unrecognized frame decodes to Unknown. A
// missing structurally required field returns a ContractError.
func Decode(u *geyser.SubscribeUpdate) (Update, error) {
	switch {
	case u.Account != nil:
		return decodeAccount(u.Account)
	case u.Slot != nil:
		return decodeSlot(u.Slot), nil
	case u.Transaction != nil:
		return decodeTransaction(u.Transaction)
	case u.TransactionStatus != nil:
		return decodeTransactionStatus(u.TransactionStatus)
	case u.Block != nil:
		return decodeBlock(u.Block), nil
	case u.BlockMeta != nil:
		return decodeBlockMeta(u.BlockMeta), nil
	case u.Entry != nil:
		return decodeEntry(u.Entry), nil
	case u.Ping != nil:
		return &Ping{}, nil
	case u.Pong != nil:
		return &Pong{ID: u.Pong.Id}, nil
	default:
		return &Unknown{Filters: append([]string(nil), u.Filters...)}, nil
	}
}

func decodeAccount(u *geyser.SubscribeUpdateAccount) (*Account, error) {
	info := u.Account
	if info == nil {
		return nil, contractErr(KindAccount, "account", "missing account info")
	}

	pubkey, err := solkey.PubkeyFromBytes(info.Pubkey)
	if err != nil {
		return nil, contractErr(KindAccount, "pubkey", err.Error())
	}
	owner, err := solkey.PubkeyFromBytes(info.Owner)
	if err != nil {
		return nil, contractErr(KindAccount, "owner", err.Error())
	}

	account := &Account{
		Slot:         u.Slot,
		IsStartup:    u.IsStartup,
		Pubkey:       pubkey,
		Lamports:     info.Lamports,
		Owner:        owner,
		Executable:   info.Executable,
		RentEpoch:    info.RentEpoch,
		Data:         hex.EncodeToString(info.Data),
		WriteVersion: info.WriteVersion,
	}

	// TxnSignature is optional on the wire: startup snapshot accounts
	// have no originating transaction.
	if len(info.TxnSignature) > 0 {
		sig, err := solkey.SignatureFromBytes(info.TxnSignature)
		if err != nil {
			return nil, contractErr(KindAccount, "txn_signature", err.Error())
		}
		account.TxnSignature = sig.String()
	}

	return account, nil
}

func decodeSlot(u *geyser.SubscribeUpdateSlot) *Slot {
	return &Slot{
		Slot:   u.Slot,
		Parent: u.Parent,
		Status: geyser.CommitmentLevel(u.Status),
	}
}

func decodeTransaction(u *geyser.SubscribeUpdateTransaction) (*Transaction, error) {
	info := u.Transaction
	if info == nil {
		return nil, contractErr(KindTransaction, "transaction", "missing transaction info")
	}

	sig, err := solkey.SignatureFromBytes(info.Signature)
	if err != nil {
		return nil, contractErr(KindTransaction, "signature", err.Error())
	}

	tx := &Transaction{
		Slot:      u.Slot,
		Signature: sig,
		IsVote:    info.IsVote,
		Index:     info.Index,
	}

	if meta := info.Meta; meta != nil {
		tx.Err = renderTransactionError(meta.Err)
		tx.Fee = meta.Fee
		tx.ComputeUnitsConsumed = meta.ComputeUnitsConsumed
		if !meta.LogMessagesNone {
			tx.LogMessages = append([]string(nil), meta.LogMessages...)
		}
	}

	return tx, nil
}

func decodeTransactionStatus(u *geyser.SubscribeUpdateTransactionStatus) (*TransactionStatus, error) {
	sig, err := solkey.SignatureFromBytes(u.Signature)
	if err != nil {
		return nil, contractErr(KindTransactionStatus, "signature", err.Error())
	}

	return &TransactionStatus{
		Slot:      u.Slot,
		Signature: sig,
		IsVote:    u.IsVote,
		Index:     u.Index,
		Err:       renderTransactionError(u.Err),
	}, nil
}

func decodeBlock(u *geyser.SubscribeUpdateBlock) *Block {
	b := &Block{
		Slot:                     u.Slot,
		Blockhash:                u.Blockhash,
		ParentSlot:               u.ParentSlot,
		ParentBlockhash:          u.ParentBlockhash,
		ExecutedTransactionCount: u.ExecutedTransactionCount,
		UpdatedAccountCount:      u.UpdatedAccountCount,
		EntriesCount:             u.EntriesCount,
	}
	if u.BlockTime != nil {
		t := u.BlockTime.Timestamp
		b.BlockTime = &t
	}
	if u.BlockHeight != nil {
		h := u.BlockHeight.BlockHeight
		b.BlockHeight = &h
	}
	return b
}

func decodeBlockMeta(u *geyser.SubscribeUpdateBlockMeta) *BlockMeta {
	b := &BlockMeta{
		Slot:                     u.Slot,
		Blockhash:                u.Blockhash,
		ParentSlot:               u.ParentSlot,
		ParentBlockhash:          u.ParentBlockhash,
		ExecutedTransactionCount: u.ExecutedTransactionCount,
	}
	if u.BlockTime != nil {
		t := u.BlockTime.Timestamp
		b.BlockTime = &t
	}
	if u.BlockHeight != nil {
		h := u.BlockHeight.BlockHeight
		b.BlockHeight = &h
	}
	return b
}

func decodeEntry(u *geyser.SubscribeUpdateEntry) *Entry {
	return &Entry{
		Slot:                     u.Slot,
		Index:                    u.Index,
		NumHashes:                u.NumHashes,
		Hash:                     hex.EncodeToString(u.Hash),
		ExecutedTransactionCount: u.ExecutedTransactionCount,
	}
}
