package geyser

import "fmt"

// Wire messages for the Geyser gRPC protocol, declared by hand with protobuf
// struct tags so the module does not depend on proto code generation. The
// gRPC proto codec handles these through its legacy message support.

// CommitmentLevel is the confirmation depth requested from the server.
type CommitmentLevel int32

// Commitment levels, in increasing depth.
const (
	CommitmentProcessed CommitmentLevel = 0
	CommitmentConfirmed CommitmentLevel = 1
	CommitmentFinalized CommitmentLevel = 2
)

// ParseCommitmentLevel maps a configuration string to a commitment level.
// Unknown values default to Processed.
func ParseCommitmentLevel(s string) CommitmentLevel {
	switch s {
	case "confirmed":
		return CommitmentConfirmed
	case "finalized":
		return CommitmentFinalized
	default:
		return CommitmentProcessed
	}
}

func (c CommitmentLevel) String() string {
	switch c {
	case CommitmentProcessed:
		return "processed"
	case CommitmentConfirmed:
		return "confirmed"
	case CommitmentFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("commitment(%d)", int32(c))
	}
}

// SubscribeRequest is the first frame sent on the subscription stream and is
// resent (partially) on resubscription and ping acknowledgment. Each filter
// category maps a group label to that category's criteria.
type SubscribeRequest struct {
	Accounts           map[string]*SubscribeRequestFilterAccounts     `protobuf:"bytes,1,rep,name=accounts"`
	Slots              map[string]*SubscribeRequestFilterSlots        `protobuf:"bytes,2,rep,name=slots"`
	Transactions       map[string]*SubscribeRequestFilterTransactions `protobuf:"bytes,3,rep,name=transactions"`
	TransactionsStatus map[string]*SubscribeRequestFilterTransactions `protobuf:"bytes,10,rep,name=transactions_status"`
	Blocks             map[string]*SubscribeRequestFilterBlocks       `protobuf:"bytes,4,rep,name=blocks"`
	BlocksMeta         map[string]*SubscribeRequestFilterBlocksMeta   `protobuf:"bytes,5,rep,name=blocks_meta"`
	Entry              map[string]*SubscribeRequestFilterEntry        `protobuf:"bytes,8,rep,name=entry"`
	Commitment         *int32                                         `protobuf:"varint,6,opt,name=commitment"`
	AccountsDataSlice  []*SubscribeRequestAccountsDataSlice           `protobuf:"bytes,7,rep,name=accounts_data_slice"`
	Ping               *SubscribeRequestPing                          `protobuf:"bytes,9,opt,name=ping"`
}

func (x *SubscribeRequest) Reset()         { *x = SubscribeRequest{} }
func (x *SubscribeRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequest) ProtoMessage()  {}

// SubscribeRequestFilterAccounts selects account updates by address, owner
// and data predicates. All predicates are ANDed by the server.
type SubscribeRequestFilterAccounts struct {
	Account []string                                `protobuf:"bytes,2,rep,name=account"`
	Owner   []string                                `protobuf:"bytes,3,rep,name=owner"`
	Filters []*SubscribeRequestFilterAccountsFilter `protobuf:"bytes,4,rep,name=filters"`
}

func (x *SubscribeRequestFilterAccounts) Reset()         { *x = SubscribeRequestFilterAccounts{} }
func (x *SubscribeRequestFilterAccounts) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterAccounts) ProtoMessage()  {}

// SubscribeRequestFilterAccountsFilter is one account data predicate. On the
// wire this is a oneof; exactly one of the fields is populated.
type SubscribeRequestFilterAccountsFilter struct {
	Memcmp            *SubscribeRequestFilterAccountsFilterMemcmp `protobuf:"bytes,1,opt,name=memcmp"`
	Datasize          *uint64                                     `protobuf:"varint,2,opt,name=datasize"`
	TokenAccountState *bool                                       `protobuf:"varint,3,opt,name=token_account_state"`
}

func (x *SubscribeRequestFilterAccountsFilter) Reset() {
	*x = SubscribeRequestFilterAccountsFilter{}
}
func (x *SubscribeRequestFilterAccountsFilter) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterAccountsFilter) ProtoMessage()  {}

// SubscribeRequestFilterAccountsFilterMemcmp matches account data bytes at
// an offset. The pattern is carried base58-encoded.
type SubscribeRequestFilterAccountsFilterMemcmp struct {
	Offset uint64  `protobuf:"varint,1,opt,name=offset"`
	Base58 *string `protobuf:"bytes,3,opt,name=base58"`
}

func (x *SubscribeRequestFilterAccountsFilterMemcmp) Reset() {
	*x = SubscribeRequestFilterAccountsFilterMemcmp{}
}
func (x *SubscribeRequestFilterAccountsFilterMemcmp) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterAccountsFilterMemcmp) ProtoMessage()  {}

// SubscribeRequestFilterSlots selects slot status updates.
type SubscribeRequestFilterSlots struct {
	FilterByCommitment *bool `protobuf:"varint,1,opt,name=filter_by_commitment"`
}

func (x *SubscribeRequestFilterSlots) Reset()         { *x = SubscribeRequestFilterSlots{} }
func (x *SubscribeRequestFilterSlots) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterSlots) ProtoMessage()  {}

// SubscribeRequestFilterTransactions selects transaction updates. Shared by
// the transactions and transactions-status categories.
type SubscribeRequestFilterTransactions struct {
	Vote            *bool    `protobuf:"varint,1,opt,name=vote"`
	Failed          *bool    `protobuf:"varint,2,opt,name=failed"`
	Signature       *string  `protobuf:"bytes,3,opt,name=signature"`
	AccountInclude  []string `protobuf:"bytes,4,rep,name=account_include"`
	AccountExclude  []string `protobuf:"bytes,5,rep,name=account_exclude"`
	AccountRequired []string `protobuf:"bytes,6,rep,name=account_required"`
}

func (x *SubscribeRequestFilterTransactions) Reset()         { *x = SubscribeRequestFilterTransactions{} }
func (x *SubscribeRequestFilterTransactions) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterTransactions) ProtoMessage()  {}

// SubscribeRequestFilterBlocks selects full block updates.
type SubscribeRequestFilterBlocks struct {
	AccountInclude      []string `protobuf:"bytes,1,rep,name=account_include"`
	IncludeTransactions *bool    `protobuf:"varint,2,opt,name=include_transactions"`
	IncludeAccounts     *bool    `protobuf:"varint,3,opt,name=include_accounts"`
	IncludeEntries      *bool    `protobuf:"varint,4,opt,name=include_entries"`
}

func (x *SubscribeRequestFilterBlocks) Reset()         { *x = SubscribeRequestFilterBlocks{} }
func (x *SubscribeRequestFilterBlocks) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterBlocks) ProtoMessage()  {}

// SubscribeRequestFilterBlocksMeta selects block metadata updates.
type SubscribeRequestFilterBlocksMeta struct{}

func (x *SubscribeRequestFilterBlocksMeta) Reset()         { *x = SubscribeRequestFilterBlocksMeta{} }
func (x *SubscribeRequestFilterBlocksMeta) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterBlocksMeta) ProtoMessage()  {}

// SubscribeRequestFilterEntry selects ledger entry updates.
type SubscribeRequestFilterEntry struct{}

func (x *SubscribeRequestFilterEntry) Reset()         { *x = SubscribeRequestFilterEntry{} }
func (x *SubscribeRequestFilterEntry) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestFilterEntry) ProtoMessage()  {}

// SubscribeRequestAccountsDataSlice requests a byte range projection of
// returned account data.
type SubscribeRequestAccountsDataSlice struct {
	Offset uint64 `protobuf:"varint,1,opt,name=offset"`
	Length uint64 `protobuf:"varint,2,opt,name=length"`
}

func (x *SubscribeRequestAccountsDataSlice) Reset()         { *x = SubscribeRequestAccountsDataSlice{} }
func (x *SubscribeRequestAccountsDataSlice) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestAccountsDataSlice) ProtoMessage()  {}

// SubscribeRequestPing carries the keepalive echo id.
type SubscribeRequestPing struct {
	Id int32 `protobuf:"varint,1,opt,name=id"`
}

func (x *SubscribeRequestPing) Reset()         { *x = SubscribeRequestPing{} }
func (x *SubscribeRequestPing) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeRequestPing) ProtoMessage()  {}

// SubscribeUpdate is one inbound frame. On the wire the variants form a
// oneof; at most one of the update fields is set. Filters lists the group
// labels that matched this update.
type SubscribeUpdate struct {
	Filters           []string                           `protobuf:"bytes,1,rep,name=filters"`
	Account           *SubscribeUpdateAccount            `protobuf:"bytes,2,opt,name=account"`
	Slot              *SubscribeUpdateSlot               `protobuf:"bytes,3,opt,name=slot"`
	Transaction       *SubscribeUpdateTransaction        `protobuf:"bytes,4,opt,name=transaction"`
	TransactionStatus *SubscribeUpdateTransactionStatus  `protobuf:"bytes,10,opt,name=transaction_status"`
	Block             *SubscribeUpdateBlock              `protobuf:"bytes,5,opt,name=block"`
	Ping              *SubscribeUpdatePing               `protobuf:"bytes,6,opt,name=ping"`
	Pong              *SubscribeUpdatePong               `protobuf:"bytes,9,opt,name=pong"`
	BlockMeta         *SubscribeUpdateBlockMeta          `protobuf:"bytes,7,opt,name=block_meta"`
	Entry             *SubscribeUpdateEntry              `protobuf:"bytes,8,opt,name=entry"`
}

func (x *SubscribeUpdate) Reset()         { *x = SubscribeUpdate{} }
func (x *SubscribeUpdate) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdate) ProtoMessage()  {}

// SubscribeUpdateAccount is an account mutation notification.
type SubscribeUpdateAccount struct {
	Account   *SubscribeUpdateAccountInfo `protobuf:"bytes,1,opt,name=account"`
	Slot      uint64                      `protobuf:"varint,2,opt,name=slot"`
	IsStartup bool                        `protobuf:"varint,3,opt,name=is_startup"`
}

func (x *SubscribeUpdateAccount) Reset()         { *x = SubscribeUpdateAccount{} }
func (x *SubscribeUpdateAccount) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateAccount) ProtoMessage()  {}

// SubscribeUpdateAccountInfo is the account state carried by an account
// update. The server always populates it.
type SubscribeUpdateAccountInfo struct {
	Pubkey       []byte `protobuf:"bytes,1,opt,name=pubkey"`
	Lamports     uint64 `protobuf:"varint,2,opt,name=lamports"`
	Owner        []byte `protobuf:"bytes,3,opt,name=owner"`
	Executable   bool   `protobuf:"varint,4,opt,name=executable"`
	RentEpoch    uint64 `protobuf:"varint,5,opt,name=rent_epoch"`
	Data         []byte `protobuf:"bytes,6,opt,name=data"`
	WriteVersion uint64 `protobuf:"varint,7,opt,name=write_version"`
	TxnSignature []byte `protobuf:"bytes,8,opt,name=txn_signature"`
}

func (x *SubscribeUpdateAccountInfo) Reset()         { *x = SubscribeUpdateAccountInfo{} }
func (x *SubscribeUpdateAccountInfo) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateAccountInfo) ProtoMessage()  {}

// SubscribeUpdateSlot is a slot status notification.
type SubscribeUpdateSlot struct {
	Slot   uint64  `protobuf:"varint,1,opt,name=slot"`
	Parent *uint64 `protobuf:"varint,2,opt,name=parent"`
	Status int32   `protobuf:"varint,3,opt,name=status"`
}

func (x *SubscribeUpdateSlot) Reset()         { *x = SubscribeUpdateSlot{} }
func (x *SubscribeUpdateSlot) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateSlot) ProtoMessage()  {}

// SubscribeUpdateTransaction is a processed transaction notification.
type SubscribeUpdateTransaction struct {
	Transaction *SubscribeUpdateTransactionInfo `protobuf:"bytes,1,opt,name=transaction"`
	Slot        uint64                          `protobuf:"varint,2,opt,name=slot"`
}

func (x *SubscribeUpdateTransaction) Reset()         { *x = SubscribeUpdateTransaction{} }
func (x *SubscribeUpdateTransaction) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateTransaction) ProtoMessage()  {}

// SubscribeUpdateTransactionInfo is the transaction body carried by a
// transaction update. The server always populates it.
type SubscribeUpdateTransactionInfo struct {
	Signature []byte                 `protobuf:"bytes,1,opt,name=signature"`
	IsVote    bool                   `protobuf:"varint,2,opt,name=is_vote"`
	Meta      *TransactionStatusMeta `protobuf:"bytes,4,opt,name=meta"`
	Index     uint64                 `protobuf:"varint,5,opt,name=index"`
}

func (x *SubscribeUpdateTransactionInfo) Reset()         { *x = SubscribeUpdateTransactionInfo{} }
func (x *SubscribeUpdateTransactionInfo) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateTransactionInfo) ProtoMessage()  {}

// TransactionStatusMeta is the execution result subset this client renders.
type TransactionStatusMeta struct {
	Err                  *TransactionError `protobuf:"bytes,1,opt,name=err"`
	Fee                  uint64            `protobuf:"varint,2,opt,name=fee"`
	PreBalances          []uint64          `protobuf:"varint,3,rep,name=pre_balances"`
	PostBalances         []uint64          `protobuf:"varint,4,rep,name=post_balances"`
	LogMessages          []string          `protobuf:"bytes,6,rep,name=log_messages"`
	LogMessagesNone      bool              `protobuf:"varint,11,opt,name=log_messages_none"`
	ComputeUnitsConsumed *uint64           `protobuf:"varint,16,opt,name=compute_units_consumed"`
}

func (x *TransactionStatusMeta) Reset()         { *x = TransactionStatusMeta{} }
func (x *TransactionStatusMeta) String() string { return fmt.Sprintf("%+v", *x) }
func (x *TransactionStatusMeta) ProtoMessage()  {}

// TransactionError carries the bincode-encoded Solana transaction error.
type TransactionError struct {
	Err []byte `protobuf:"bytes,1,opt,name=err"`
}

func (x *TransactionError) Reset()         { *x = TransactionError{} }
func (x *TransactionError) String() string { return fmt.Sprintf("%+v", *x) }
func (x *TransactionError) ProtoMessage()  {}

// SubscribeUpdateTransactionStatus is a lightweight transaction outcome
// notification.
type SubscribeUpdateTransactionStatus struct {
	Slot      uint64            `protobuf:"varint,1,opt,name=slot"`
	Signature []byte            `protobuf:"bytes,2,opt,name=signature"`
	IsVote    bool              `protobuf:"varint,3,opt,name=is_vote"`
	Index     uint64            `protobuf:"varint,4,opt,name=index"`
	Err       *TransactionError `protobuf:"bytes,5,opt,name=err"`
}

func (x *SubscribeUpdateTransactionStatus) Reset()         { *x = SubscribeUpdateTransactionStatus{} }
func (x *SubscribeUpdateTransactionStatus) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateTransactionStatus) ProtoMessage()  {}

// SubscribeUpdateBlock is a full block notification.
type SubscribeUpdateBlock struct {
	Slot                     uint64         `protobuf:"varint,1,opt,name=slot"`
	Blockhash                string         `protobuf:"bytes,2,opt,name=blockhash"`
	BlockTime                *UnixTimestamp `protobuf:"bytes,4,opt,name=block_time"`
	BlockHeight              *BlockHeight   `protobuf:"bytes,5,opt,name=block_height"`
	ParentSlot               uint64         `protobuf:"varint,7,opt,name=parent_slot"`
	ParentBlockhash          string         `protobuf:"bytes,8,opt,name=parent_blockhash"`
	ExecutedTransactionCount uint64         `protobuf:"varint,9,opt,name=executed_transaction_count"`
	UpdatedAccountCount      uint64         `protobuf:"varint,10,opt,name=updated_account_count"`
	EntriesCount             uint64         `protobuf:"varint,12,opt,name=entries_count"`
}

func (x *SubscribeUpdateBlock) Reset()         { *x = SubscribeUpdateBlock{} }
func (x *SubscribeUpdateBlock) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateBlock) ProtoMessage()  {}

// SubscribeUpdateBlockMeta is a block metadata notification, without the
// transactions.
type SubscribeUpdateBlockMeta struct {
	Slot                     uint64         `protobuf:"varint,1,opt,name=slot"`
	Blockhash                string         `protobuf:"bytes,2,opt,name=blockhash"`
	BlockTime                *UnixTimestamp `protobuf:"bytes,4,opt,name=block_time"`
	BlockHeight              *BlockHeight   `protobuf:"bytes,5,opt,name=block_height"`
	ParentSlot               uint64         `protobuf:"varint,6,opt,name=parent_slot"`
	ParentBlockhash          string         `protobuf:"bytes,7,opt,name=parent_blockhash"`
	ExecutedTransactionCount uint64         `protobuf:"varint,8,opt,name=executed_transaction_count"`
}

func (x *SubscribeUpdateBlockMeta) Reset()         { *x = SubscribeUpdateBlockMeta{} }
func (x *SubscribeUpdateBlockMeta) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateBlockMeta) ProtoMessage()  {}

// SubscribeUpdateEntry is a ledger entry notification.
type SubscribeUpdateEntry struct {
	Slot                     uint64 `protobuf:"varint,1,opt,name=slot"`
	Index                    uint64 `protobuf:"varint,2,opt,name=index"`
	NumHashes                uint64 `protobuf:"varint,3,opt,name=num_hashes"`
	Hash                     []byte `protobuf:"bytes,4,opt,name=hash"`
	ExecutedTransactionCount uint64 `protobuf:"varint,5,opt,name=executed_transaction_count"`
	StartingTransactionIndex uint64 `protobuf:"varint,6,opt,name=starting_transaction_index"`
}

func (x *SubscribeUpdateEntry) Reset()         { *x = SubscribeUpdateEntry{} }
func (x *SubscribeUpdateEntry) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdateEntry) ProtoMessage()  {}

// SubscribeUpdatePing is the server keepalive probe.
type SubscribeUpdatePing struct{}

func (x *SubscribeUpdatePing) Reset()         { *x = SubscribeUpdatePing{} }
func (x *SubscribeUpdatePing) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdatePing) ProtoMessage()  {}

// SubscribeUpdatePong echoes a client ping id.
type SubscribeUpdatePong struct {
	Id int32 `protobuf:"varint,1,opt,name=id"`
}

func (x *SubscribeUpdatePong) Reset()         { *x = SubscribeUpdatePong{} }
func (x *SubscribeUpdatePong) String() string { return fmt.Sprintf("%+v", *x) }
func (x *SubscribeUpdatePong) ProtoMessage()  {}

// UnixTimestamp wraps a unix timestamp in seconds.
type UnixTimestamp struct {
	Timestamp int64 `protobuf:"varint,1,opt,name=timestamp"`
}

func (x *UnixTimestamp) Reset()         { *x = UnixTimestamp{} }
func (x *UnixTimestamp) String() string { return fmt.Sprintf("%+v", *x) }
func (x *UnixTimestamp) ProtoMessage()  {}

// BlockHeight wraps a block height value.
type BlockHeight struct {
	BlockHeight uint64 `protobuf:"varint,1,opt,name=block_height"`
}

func (x *BlockHeight) Reset()         { *x = BlockHeight{} }
func (x *BlockHeight) String() string { return fmt.Sprintf("%+v", *x) }
func (x *BlockHeight) ProtoMessage()  {}

// Unary request/response messages.

// PingRequest asks the server to echo a counter.
type PingRequest struct {
	Count int32 `protobuf:"varint,1,opt,name=count"`
}

func (x *PingRequest) Reset()         { *x = PingRequest{} }
func (x *PingRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *PingRequest) ProtoMessage()  {}

// PongResponse echoes the ping counter.
type PongResponse struct {
	Count int32 `protobuf:"varint,1,opt,name=count"`
}

func (x *PongResponse) Reset()         { *x = PongResponse{} }
func (x *PongResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *PongResponse) ProtoMessage()  {}

// GetLatestBlockhashRequest requests the most recent blockhash.
type GetLatestBlockhashRequest struct {
	Commitment *int32 `protobuf:"varint,1,opt,name=commitment"`
}

func (x *GetLatestBlockhashRequest) Reset()         { *x = GetLatestBlockhashRequest{} }
func (x *GetLatestBlockhashRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetLatestBlockhashRequest) ProtoMessage()  {}

// GetLatestBlockhashResponse carries the blockhash and its validity bound.
type GetLatestBlockhashResponse struct {
	Slot                 uint64 `protobuf:"varint,1,opt,name=slot"`
	Blockhash            string `protobuf:"bytes,2,opt,name=blockhash"`
	LastValidBlockHeight uint64 `protobuf:"varint,3,opt,name=last_valid_block_height"`
}

func (x *GetLatestBlockhashResponse) Reset()         { *x = GetLatestBlockhashResponse{} }
func (x *GetLatestBlockhashResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetLatestBlockhashResponse) ProtoMessage()  {}

// GetBlockHeightRequest requests the current block height.
type GetBlockHeightRequest struct {
	Commitment *int32 `protobuf:"varint,1,opt,name=commitment"`
}

func (x *GetBlockHeightRequest) Reset()         { *x = GetBlockHeightRequest{} }
func (x *GetBlockHeightRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetBlockHeightRequest) ProtoMessage()  {}

// GetBlockHeightResponse carries the current block height.
type GetBlockHeightResponse struct {
	BlockHeight uint64 `protobuf:"varint,1,opt,name=block_height"`
}

func (x *GetBlockHeightResponse) Reset()         { *x = GetBlockHeightResponse{} }
func (x *GetBlockHeightResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetBlockHeightResponse) ProtoMessage()  {}

// GetSlotRequest requests the current slot.
type GetSlotRequest struct {
	Commitment *int32 `protobuf:"varint,1,opt,name=commitment"`
}

func (x *GetSlotRequest) Reset()         { *x = GetSlotRequest{} }
func (x *GetSlotRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetSlotRequest) ProtoMessage()  {}

// GetSlotResponse carries the current slot.
type GetSlotResponse struct {
	Slot uint64 `protobuf:"varint,1,opt,name=slot"`
}

func (x *GetSlotResponse) Reset()         { *x = GetSlotResponse{} }
func (x *GetSlotResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetSlotResponse) ProtoMessage()  {}

// IsBlockhashValidRequest asks whether a blockhash is still valid.
type IsBlockhashValidRequest struct {
	Blockhash  string `protobuf:"bytes,1,opt,name=blockhash"`
	Commitment *int32 `protobuf:"varint,2,opt,name=commitment"`
}

func (x *IsBlockhashValidRequest) Reset()         { *x = IsBlockhashValidRequest{} }
func (x *IsBlockhashValidRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *IsBlockhashValidRequest) ProtoMessage()  {}

// IsBlockhashValidResponse carries the validity verdict.
type IsBlockhashValidResponse struct {
	Slot  uint64 `protobuf:"varint,1,opt,name=slot"`
	Valid bool   `protobuf:"varint,2,opt,name=valid"`
}

func (x *IsBlockhashValidResponse) Reset()         { *x = IsBlockhashValidResponse{} }
func (x *IsBlockhashValidResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *IsBlockhashValidResponse) ProtoMessage()  {}

// GetVersionRequest requests the server version.
type GetVersionRequest struct{}

func (x *GetVersionRequest) Reset()         { *x = GetVersionRequest{} }
func (x *GetVersionRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetVersionRequest) ProtoMessage()  {}

// GetVersionResponse carries the server version string.
type GetVersionResponse struct {
	Version string `protobuf:"bytes,1,opt,name=version"`
}

func (x *GetVersionResponse) Reset()         { *x = GetVersionResponse{} }
func (x *GetVersionResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (x *GetVersionResponse) ProtoMessage()  {}
