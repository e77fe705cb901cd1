package filter

import (
	"errors"
	"testing"

	"solana-geyser-client/internal/geyser"
)

// staticSource is an AddressSource backed by a fixed slice.
type staticSource struct {
	addresses []string
	err       error
}

func (s *staticSource) Addresses() ([]string, error) {
	return s.addresses, s.err
}

func TestBuildEmptySpec(t *testing.T) {
	req, err := Build(Spec{}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(req.Accounts) != 0 {
		t.Errorf("expected empty accounts group, got %d entries", len(req.Accounts))
	}
	if len(req.Slots) != 0 {
		t.Errorf("expected empty slots group, got %d entries", len(req.Slots))
	}
	if len(req.Transactions) != 0 {
		t.Errorf("expected empty transactions group, got %d entries", len(req.Transactions))
	}
	if len(req.TransactionsStatus) != 0 {
		t.Errorf("expected empty transactions status group, got %d entries", len(req.TransactionsStatus))
	}
	if len(req.Entry) != 0 {
		t.Errorf("expected empty entry group, got %d entries", len(req.Entry))
	}
	if len(req.Blocks) != 0 {
		t.Errorf("expected empty blocks group, got %d entries", len(req.Blocks))
	}
	if len(req.BlocksMeta) != 0 {
		t.Errorf("expected empty blocks meta group, got %d entries", len(req.BlocksMeta))
	}
	if req.Commitment != nil {
		t.Errorf("expected nil commitment, got %d", *req.Commitment)
	}
	if req.Ping != nil {
		t.Error("expected nil ping")
	}
	if len(req.AccountsDataSlice) != 0 {
		t.Errorf("expected no data slices, got %d", len(req.AccountsDataSlice))
	}
}

func TestBuildAccountsGroup(t *testing.T) {
	size := uint64(165)
	spec := Spec{
		Accounts:                  true,
		AccountsAccount:           []string{"Addr1", "Addr2"},
		AccountsOwner:             []string{"Owner1"},
		AccountsMemcmp:            []string{"0,base58pattern"},
		AccountsDataSize:          &size,
		AccountsTokenAccountState: true,
	}

	req, err := Build(spec, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	group, ok := req.Accounts[GroupLabel]
	if !ok {
		t.Fatalf("accounts group %q missing, got %v", GroupLabel, req.Accounts)
	}
	if len(group.Account) != 2 || group.Account[0] != "Addr1" || group.Account[1] != "Addr2" {
		t.Errorf("unexpected account list: %v", group.Account)
	}
	if len(group.Owner) != 1 || group.Owner[0] != "Owner1" {
		t.Errorf("unexpected owner list: %v", group.Owner)
	}

	if len(group.Filters) != 3 {
		t.Fatalf("expected 3 predicates, got %d", len(group.Filters))
	}
	memcmp := group.Filters[0].Memcmp
	if memcmp == nil {
		t.Fatal("first predicate should be memcmp")
	}
	if memcmp.Offset != 0 {
		t.Errorf("memcmp offset = %d, want 0", memcmp.Offset)
	}
	if memcmp.Base58 == nil || *memcmp.Base58 != "base58pattern" {
		t.Errorf("memcmp data = %v, want base58pattern", memcmp.Base58)
	}
	if group.Filters[1].Datasize == nil || *group.Filters[1].Datasize != 165 {
		t.Errorf("datasize predicate = %v, want 165", group.Filters[1].Datasize)
	}
	if group.Filters[2].TokenAccountState == nil || !*group.Filters[2].TokenAccountState {
		t.Errorf("token account state predicate = %v, want true", group.Filters[2].TokenAccountState)
	}
}

func TestBuildMemcmpMalformed(t *testing.T) {
	cases := []string{
		"no-comma",
		"abc,data",
		"-1,data",
	}
	for _, raw := range cases {
		_, err := Build(Spec{Accounts: true, AccountsMemcmp: []string{raw}}, nil)
		if !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("memcmp %q: error = %v, want ErrInvalidFilter", raw, err)
		}
	}
}

func TestBuildDataSlices(t *testing.T) {
	req, err := Build(Spec{AccountsDataSlice: []string{"0,44", "128,32"}}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(req.AccountsDataSlice) != 2 {
		t.Fatalf("expected 2 data slices, got %d", len(req.AccountsDataSlice))
	}
	if req.AccountsDataSlice[0].Offset != 0 || req.AccountsDataSlice[0].Length != 44 {
		t.Errorf("first slice = %+v, want offset 0 length 44", req.AccountsDataSlice[0])
	}
	if req.AccountsDataSlice[1].Offset != 128 || req.AccountsDataSlice[1].Length != 32 {
		t.Errorf("second slice = %+v, want offset 128 length 32", req.AccountsDataSlice[1])
	}
}

func TestBuildDataSliceMalformed(t *testing.T) {
	cases := []string{
		"44",
		"x,44",
		"0,y",
	}
	for _, raw := range cases {
		_, err := Build(Spec{AccountsDataSlice: []string{raw}}, nil)
		if !errors.Is(err, ErrInvalidDataSlice) {
			t.Errorf("data slice %q: error = %v, want ErrInvalidDataSlice", raw, err)
		}
	}
}

func TestBuildAddressSourceAppended(t *testing.T) {
	source := &staticSource{addresses: []string{"FromFile1", "Addr1"}}
	spec := Spec{Accounts: true, AccountsAccount: []string{"Addr1"}}

	req, err := Build(spec, source)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	got := req.Accounts[GroupLabel].Account
	want := []string{"Addr1", "FromFile1", "Addr1"}
	if len(got) != len(want) {
		t.Fatalf("account list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("account[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildAddressSourceError(t *testing.T) {
	source := &staticSource{err: errors.New("file missing")}
	_, err := Build(Spec{Accounts: true}, source)
	if err == nil {
		t.Fatal("expected error from failing address source")
	}
}

func TestBuildAddressSourceIgnoredWhenAccountsOff(t *testing.T) {
	source := &staticSource{err: errors.New("should not be read")}
	if _, err := Build(Spec{Slots: true}, source); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
}

func TestBuildSlotsAndCommitment(t *testing.T) {
	commitment := geyser.CommitmentFinalized
	spec := Spec{
		Slots:                   true,
		SlotsFilterByCommitment: true,
		Commitment:              &commitment,
	}

	req, err := Build(spec, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	group, ok := req.Slots[GroupLabel]
	if !ok {
		t.Fatalf("slots group %q missing", GroupLabel)
	}
	if group.FilterByCommitment == nil || !*group.FilterByCommitment {
		t.Errorf("filter_by_commitment = %v, want true", group.FilterByCommitment)
	}
	if req.Commitment == nil || *req.Commitment != int32(geyser.CommitmentFinalized) {
		t.Errorf("commitment = %v, want %d", req.Commitment, geyser.CommitmentFinalized)
	}
}

func TestBuildTransactionsGroups(t *testing.T) {
	vote := false
	sig := "5sig"
	spec := Spec{
		Transactions:               true,
		TransactionsVote:           &vote,
		TransactionsSignature:      &sig,
		TransactionsAccountInclude: []string{"Inc1"},

		TransactionsStatus:                true,
		TransactionsStatusAccountRequired: []string{"Req1"},
	}

	req, err := Build(spec, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tx, ok := req.Transactions[GroupLabel]
	if !ok {
		t.Fatalf("transactions group %q missing", GroupLabel)
	}
	if tx.Vote == nil || *tx.Vote {
		t.Errorf("vote = %v, want false", tx.Vote)
	}
	if tx.Signature == nil || *tx.Signature != sig {
		t.Errorf("signature = %v, want %q", tx.Signature, sig)
	}
	if len(tx.AccountInclude) != 1 || tx.AccountInclude[0] != "Inc1" {
		t.Errorf("account include = %v", tx.AccountInclude)
	}

	st, ok := req.TransactionsStatus[GroupLabel]
	if !ok {
		t.Fatalf("transactions status group %q missing", GroupLabel)
	}
	if st.Vote != nil {
		t.Errorf("status vote = %v, want nil", st.Vote)
	}
	if len(st.AccountRequired) != 1 || st.AccountRequired[0] != "Req1" {
		t.Errorf("status account required = %v", st.AccountRequired)
	}
}

func TestBuildPing(t *testing.T) {
	id := int32(7)
	req, err := Build(Spec{PingID: &id}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if req.Ping == nil || req.Ping.Id != 7 {
		t.Errorf("ping = %+v, want id 7", req.Ping)
	}
}

func TestResubscribeRequest(t *testing.T) {
	req := ResubscribeRequest()

	if len(req.Slots) != 1 {
		t.Fatalf("expected 1 slots group, got %d", len(req.Slots))
	}
	group, ok := req.Slots[GroupLabel]
	if !ok {
		t.Fatalf("slots group %q missing", GroupLabel)
	}
	if group.FilterByCommitment != nil {
		t.Errorf("resubscribe slots group should use server defaults, got %+v", group)
	}

	if len(req.Accounts) != 0 || len(req.Transactions) != 0 || len(req.TransactionsStatus) != 0 ||
		len(req.Entry) != 0 || len(req.Blocks) != 0 || len(req.BlocksMeta) != 0 {
		t.Errorf("resubscribe request must clear every other category: %+v", req)
	}
	if req.Ping != nil || req.Commitment != nil || len(req.AccountsDataSlice) != 0 {
		t.Errorf("resubscribe request carries unexpected options: %+v", req)
	}
}
