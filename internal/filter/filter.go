// Package filter assembles wire-ready subscription requests from user-level
// subscription options. Pure except for the optional address source read.
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"solana-geyser-client/internal/geyser"
)

// GroupLabel is the fixed name under which each populated filter category is
// registered. The wire format allows multiple named groups per category but
// this client never populates more than one.
const GroupLabel = "client"

// Configuration errors. Both are permanent: the supervisor never retries a
// request that failed to build.
var (
	// ErrInvalidFilter reports a malformed account data predicate.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidDataSlice reports a malformed data slice projection.
	ErrInvalidDataSlice = errors.New("invalid data slice")
)

// Spec is the user-declared subscription intent. Each category has a boolean
// gate plus category-specific options; gates left false produce empty filter
// groups.
type Spec struct {
	Accounts                  bool
	AccountsAccount           []string
	AccountsOwner             []string
	AccountsMemcmp            []string // "offset,base58data"
	AccountsDataSize          *uint64
	AccountsTokenAccountState bool
	AccountsDataSlice         []string // "offset,length"

	Slots                   bool
	SlotsFilterByCommitment bool

	Transactions                bool
	TransactionsVote            *bool
	TransactionsFailed          *bool
	TransactionsSignature       *string
	TransactionsAccountInclude  []string
	TransactionsAccountExclude  []string
	TransactionsAccountRequired []string

	TransactionsStatus                bool
	TransactionsStatusVote            *bool
	TransactionsStatusFailed          *bool
	TransactionsStatusSignature       *string
	TransactionsStatusAccountInclude  []string
	TransactionsStatusAccountExclude  []string
	TransactionsStatusAccountRequired []string

	Entries bool

	Blocks                    bool
	BlocksAccountInclude      []string
	BlocksIncludeTransactions *bool
	BlocksIncludeAccounts     *bool
	BlocksIncludeEntries      *bool

	BlocksMeta bool

	// Commitment is the confirmation depth for the subscription, nil for
	// the server default.
	Commitment *geyser.CommitmentLevel

	// PingID, when set, asks the server to echo this id in pong frames.
	PingID *int32

	// ResubscribeAfter is the number of data frames after which the
	// session replaces the filter set with a default slots-only one.
	// Zero disables resubscription.
	ResubscribeAfter int
}

// AddressSource supplies additional account addresses for the accounts
// allow-list. Implementations may read files or other external stores; the
// builder performs no other I/O.
type AddressSource interface {
	Addresses() ([]string, error)
}

// Build assembles the wire-ready subscription request from the spec. The
// optional source extends the accounts allow-list; addresses from the source
// are appended after the ones given in the spec, duplicates preserved.
func Build(spec Spec, source AddressSource) (*geyser.SubscribeRequest, error) {
	req := &geyser.SubscribeRequest{
		Accounts:           make(map[string]*geyser.SubscribeRequestFilterAccounts),
		Slots:              make(map[string]*geyser.SubscribeRequestFilterSlots),
		Transactions:       make(map[string]*geyser.SubscribeRequestFilterTransactions),
		TransactionsStatus: make(map[string]*geyser.SubscribeRequestFilterTransactions),
		Entry:              make(map[string]*geyser.SubscribeRequestFilterEntry),
		Blocks:             make(map[string]*geyser.SubscribeRequestFilterBlocks),
		BlocksMeta:         make(map[string]*geyser.SubscribeRequestFilterBlocksMeta),
	}

	if spec.Accounts {
		account := append([]string(nil), spec.AccountsAccount...)
		if source != nil {
			extra, err := source.Addresses()
			if err != nil {
				return nil, fmt.Errorf("read account addresses: %w", err)
			}
			account = append(account, extra...)
		}

		filters, err := buildAccountFilters(spec)
		if err != nil {
			return nil, err
		}

		req.Accounts[GroupLabel] = &geyser.SubscribeRequestFilterAccounts{
			Account: account,
			Owner:   append([]string(nil), spec.AccountsOwner...),
			Filters: filters,
		}
	}

	if spec.Slots {
		filterByCommitment := spec.SlotsFilterByCommitment
		req.Slots[GroupLabel] = &geyser.SubscribeRequestFilterSlots{
			FilterByCommitment: &filterByCommitment,
		}
	}

	if spec.Transactions {
		req.Transactions[GroupLabel] = &geyser.SubscribeRequestFilterTransactions{
			Vote:            spec.TransactionsVote,
			Failed:          spec.TransactionsFailed,
			Signature:       spec.TransactionsSignature,
			AccountInclude:  append([]string(nil), spec.TransactionsAccountInclude...),
			AccountExclude:  append([]string(nil), spec.TransactionsAccountExclude...),
			AccountRequired: append([]string(nil), spec.TransactionsAccountRequired...),
		}
	}

	if spec.TransactionsStatus {
		req.TransactionsStatus[GroupLabel] = &geyser.SubscribeRequestFilterTransactions{
			Vote:            spec.TransactionsStatusVote,
			Failed:          spec.TransactionsStatusFailed,
			Signature:       spec.TransactionsStatusSignature,
			AccountInclude:  append([]string(nil), spec.TransactionsStatusAccountInclude...),
			AccountExclude:  append([]string(nil), spec.TransactionsStatusAccountExclude...),
			AccountRequired: append([]string(nil), spec.TransactionsStatusAccountRequired...),
		}
	}

	if spec.Entries {
		req.Entry[GroupLabel] = &geyser.SubscribeRequestFilterEntry{}
	}

	if spec.Blocks {
		req.Blocks[GroupLabel] = &geyser.SubscribeRequestFilterBlocks{
			AccountInclude:      append([]string(nil), spec.BlocksAccountInclude...),
			IncludeTransactions: spec.BlocksIncludeTransactions,
			IncludeAccounts:     spec.BlocksIncludeAccounts,
			IncludeEntries:      spec.BlocksIncludeEntries,
		}
	}

	if spec.BlocksMeta {
		req.BlocksMeta[GroupLabel] = &geyser.SubscribeRequestFilterBlocksMeta{}
	}

	dataSlices, err := parseDataSlices(spec.AccountsDataSlice)
	if err != nil {
		return nil, err
	}
	req.AccountsDataSlice = dataSlices

	if spec.Commitment != nil {
		commitment := int32(*spec.Commitment)
		req.Commitment = &commitment
	}

	if spec.PingID != nil {
		req.Ping = &geyser.SubscribeRequestPing{Id: *spec.PingID}
	}

	return req, nil
}

// buildAccountFilters assembles the account data predicates. All predicates
// are ANDed by the server; combination legality is not validated here.
func buildAccountFilters(spec Spec) ([]*geyser.SubscribeRequestFilterAccountsFilter, error) {
	var filters []*geyser.SubscribeRequestFilterAccountsFilter

	for _, raw := range spec.AccountsMemcmp {
		offsetStr, data, found := strings.Cut(raw, ",")
		if !found {
			return nil, fmt.Errorf("%w: memcmp %q must be offset,data", ErrInvalidFilter, raw)
		}
		offset, err := strconv.ParseUint(strings.TrimSpace(offsetStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: memcmp %q has invalid offset", ErrInvalidFilter, raw)
		}
		base58Data := strings.TrimSpace(data)
		filters = append(filters, &geyser.SubscribeRequestFilterAccountsFilter{
			Memcmp: &geyser.SubscribeRequestFilterAccountsFilterMemcmp{
				Offset: offset,
				Base58: &base58Data,
			},
		})
	}

	if spec.AccountsDataSize != nil {
		datasize := *spec.AccountsDataSize
		filters = append(filters, &geyser.SubscribeRequestFilterAccountsFilter{
			Datasize: &datasize,
		})
	}

	if spec.AccountsTokenAccountState {
		tokenState := true
		filters = append(filters, &geyser.SubscribeRequestFilterAccountsFilter{
			TokenAccountState: &tokenState,
		})
	}

	return filters, nil
}

// parseDataSlices parses "offset,length" projections. Any malformed entry
// fails the whole build before a request is sent.
func parseDataSlices(raw []string) ([]*geyser.SubscribeRequestAccountsDataSlice, error) {
	var slices []*geyser.SubscribeRequestAccountsDataSlice

	for _, entry := range raw {
		offsetStr, lengthStr, found := strings.Cut(entry, ",")
		if !found {
			return nil, fmt.Errorf("%w: %q must be offset,length", ErrInvalidDataSlice, entry)
		}
		offset, err := strconv.ParseUint(strings.TrimSpace(offsetStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q has invalid offset", ErrInvalidDataSlice, entry)
		}
		length, err := strconv.ParseUint(strings.TrimSpace(lengthStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q has invalid length", ErrInvalidDataSlice, entry)
		}
		slices = append(slices, &geyser.SubscribeRequestAccountsDataSlice{
			Offset: offset,
			Length: length,
		})
	}

	return slices, nil
}

// ResubscribeRequest builds the request sent when the resubscribe threshold
// is reached: a fresh default slots group, every other category cleared.
func ResubscribeRequest() *geyser.SubscribeRequest {
	return &geyser.SubscribeRequest{
		Slots: map[string]*geyser.SubscribeRequestFilterSlots{
			GroupLabel: {},
		},
		Accounts:           map[string]*geyser.SubscribeRequestFilterAccounts{},
		Transactions:       map[string]*geyser.SubscribeRequestFilterTransactions{},
		TransactionsStatus: map[string]*geyser.SubscribeRequestFilterTransactions{},
		Entry:              map[string]*geyser.SubscribeRequestFilterEntry{},
		Blocks:             map[string]*geyser.SubscribeRequestFilterBlocks{},
		BlocksMeta:         map[string]*geyser.SubscribeRequestFilterBlocksMeta{},
	}
}
