package contract_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tidelock_dao/contract"
	"tidelock_dao/sdk"
)

const (
	adminAddr  = "hive:admin"
	aliceAddr  = "hive:alice"
	bobAddr    = "hive:bob"
	carolAddr  = "hive:carol"
	daveAddr   = "hive:dave"
	underlying = "hive"
	rewardTick = "hbd"
	startTime  = int64(1_700_000_000)
)

func ptr(s string) *string { return &s }

func day(n int64) int64 { return n * 86400 }

// setup initializes a fresh contract with relaxed governance parameters so
// individual tests only tweak what they care about.
func setup(t *testing.T) {
	t.Helper()
	setupWith(t, "1000", "5000")
}

// setupWith lets tests pick quorum and approval bps at init time.
func setupWith(t *testing.T, quorumBps string, approvalBps string) {
	t.Helper()
	sdk.MockReset()
	sdk.MockSetTimestamp(startTime)
	sdk.MockSetSender(adminAddr)
	payload := strings.Join([]string{
		adminAddr, underlying, "contract:treasury",
		quorumBps, approvalBps,
		strconv.FormatInt(day(3), 10),
		strconv.FormatInt(day(4), 10),
		strconv.FormatInt(day(30), 10),
		"0", "10", "16",
	}, "|")
	res := contract.ContractInit(ptr(payload))
	require.NotNil(t, res)
	require.Equal(t, "initialized", *res)
}

// expectRevert runs fn and asserts it reverts with the given symbol.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert with symbol %q", symbol)
		re, ok := r.(*sdk.RevertError)
		require.True(t, ok, "expected RevertError, got %T: %v", r, r)
		require.Equal(t, symbol, re.Symbol, "revert message: %s", re.Msg)
	}()
	fn()
}

// stakeAs funds the account, grants the allowance intent and stakes.
func stakeAs(t *testing.T, who string, amount float64) {
	t.Helper()
	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	sdk.MockSetSender(who)
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": underlying, "limit": amountStr},
	}})
	cur := sdk.MockBalance(who, sdk.Asset(underlying))
	sdk.MockSetBalance(who, sdk.Asset(underlying), cur+int64(amount*contract.AmountScale))
	res := contract.Stake(ptr(amountStr))
	require.NotNil(t, res)
	sdk.MockSetIntents(nil)
}

// whitelistReward registers a reward token as the admin.
func whitelistReward(t *testing.T, token string) {
	t.Helper()
	sdk.MockSetSender(adminAddr)
	res := contract.WhitelistToken(ptr(token))
	require.NotNil(t, res)
}

// donate books extra ledger balance on the contract, like a raw transfer would.
func donate(token string, amount int64) {
	cur := sdk.MockBalance(sdk.ContractId, sdk.Asset(token))
	sdk.MockSetBalance(sdk.ContractId, sdk.Asset(token), cur+amount)
}

// proposeTransferAs files a transfer proposal and returns its id.
func proposeTransferAs(t *testing.T, who string, token string, recipient string, amount float64) uint64 {
	t.Helper()
	sdk.MockSetSender(who)
	payload := token + "|" + recipient + "|" + strconv.FormatFloat(amount, 'f', -1, 64)
	res := contract.ProposeTransfer(ptr(payload))
	require.NotNil(t, res)
	return parseID(t, *res, "proposal:")
}

// proposeBoostAs files a boost proposal and returns its id.
func proposeBoostAs(t *testing.T, who string, token string, amount float64) uint64 {
	t.Helper()
	sdk.MockSetSender(who)
	payload := token + "|" + strconv.FormatFloat(amount, 'f', -1, 64)
	res := contract.ProposeBoost(ptr(payload))
	require.NotNil(t, res)
	return parseID(t, *res, "proposal:")
}

func parseID(t *testing.T, res string, prefix string) uint64 {
	t.Helper()
	require.True(t, strings.HasPrefix(res, prefix), "unexpected result %q", res)
	id, err := strconv.ParseUint(strings.TrimPrefix(res, prefix), 10, 64)
	require.NoError(t, err)
	return id
}

// voteAs casts a vote for the given account.
func voteAs(t *testing.T, who string, proposalID uint64, support bool) {
	t.Helper()
	sdk.MockSetSender(who)
	vote := "no"
	if support {
		vote = "yes"
	}
	res := contract.VoteProposal(ptr(strconv.FormatUint(proposalID, 10) + "|" + vote))
	require.NotNil(t, res)
}

// startCycle opens a cycle as an arbitrary keeper account.
func startCycle(t *testing.T) {
	t.Helper()
	sdk.MockSetSender(daveAddr)
	res := contract.CycleStart(nil)
	require.NotNil(t, res)
}

// allLogs joins the mock log lines for substring assertions.
func allLogs() string {
	return strings.Join(sdk.MockLogs(), "\n")
}
