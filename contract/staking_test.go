package contract_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidelock_dao/contract"
	"tidelock_dao/sdk"
)

func votingPowerOf(t *testing.T, who string) uint64 {
	t.Helper()
	res := contract.VotingPower(ptr(who))
	require.NotNil(t, res)
	power, err := strconv.ParseUint(*res, 10, 64)
	require.NoError(t, err)
	return power
}

// tokenDays converts raw power (scaled-balance times seconds) into whole
// token-days for readable assertions.
func tokenDays(power uint64) uint64 {
	return power / (86400 * contract.AmountScale)
}

func TestStakeAccruesVotingPowerOverTime(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 1000)

	assert.Equal(t, uint64(0), votingPowerOf(t, aliceAddr))

	sdk.MockAdvanceTime(day(100))
	assert.Equal(t, uint64(100_000), tokenDays(votingPowerOf(t, aliceAddr)))
}

func TestPartialUnstakeShrinksPowerQuadratically(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 1000)
	sdk.MockAdvanceTime(day(100))

	sdk.MockSetSender(aliceAddr)
	res := contract.Unstake(ptr("500"))
	require.Equal(t, "unstaked:500000", *res)

	// half the balance gone takes three quarters of the power with it
	assert.Equal(t, uint64(25_000), tokenDays(votingPowerOf(t, aliceAddr)))

	// restaking the withdrawn half restores balance but not the lost time
	stakeAs(t, aliceAddr, 500)
	assert.Equal(t, uint64(25_000), tokenDays(votingPowerOf(t, aliceAddr)))
}

func TestTopUpAveragesStakeStart(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 500)
	sdk.MockAdvanceTime(day(50))
	powerBefore := votingPowerOf(t, aliceAddr)

	stakeAs(t, aliceAddr, 500)
	// accrued power carries over exactly at the top-up instant
	assert.Equal(t, powerBefore, votingPowerOf(t, aliceAddr))

	sdk.MockAdvanceTime(day(1))
	assert.Equal(t, powerBefore+uint64(1_000_000)*uint64(day(1)), votingPowerOf(t, aliceAddr))
}

func TestUnstakeReturnsPrincipal(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	require.Equal(t, int64(0), sdk.MockBalance(aliceAddr, sdk.Asset(underlying)))

	sdk.MockSetSender(aliceAddr)
	contract.Unstake(ptr("40"))
	assert.Equal(t, int64(40_000), sdk.MockBalance(aliceAddr, sdk.Asset(underlying)))

	contract.Unstake(ptr("60"))
	assert.Equal(t, int64(100_000), sdk.MockBalance(aliceAddr, sdk.Asset(underlying)))

	// position is gone after a full exit
	expectRevert(t, "state_error", func() {
		contract.StakerGet(ptr(aliceAddr))
	})
}

func TestUnstakeMoreThanStakedReverts(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	sdk.MockSetSender(aliceAddr)
	expectRevert(t, "insufficient_stake", func() {
		contract.Unstake(ptr("100.001"))
	})
}

func TestStakeWithoutAllowanceReverts(t *testing.T) {
	setup(t)
	sdk.MockSetSender(aliceAddr)
	sdk.MockSetBalance(aliceAddr, sdk.Asset(underlying), 100_000)
	expectRevert(t, "balance_error", func() {
		contract.Stake(ptr("100"))
	})
}

func TestFeeOnTransferCreditsOnlyReceived(t *testing.T) {
	setup(t)
	sdk.MockSetTransferFeeBps(100)
	stakeAs(t, aliceAddr, 100)

	res := contract.StakerGet(ptr(aliceAddr))
	require.NotNil(t, res)
	parts := strings.Split(*res, "|")
	// credited balance is the post-fee amount, 99 tokens
	assert.Equal(t, "99000", parts[1])
}

func TestPauseGatesStakeButNotExit(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)

	sdk.MockSetSender(adminAddr)
	contract.PauseSet(ptr("true"))

	sdk.MockSetSender(aliceAddr)
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": underlying, "limit": "10"},
	}})
	sdk.MockSetBalance(aliceAddr, sdk.Asset(underlying), 10_000)
	expectRevert(t, "state_error", func() {
		contract.Stake(ptr("10"))
	})
	sdk.MockSetIntents(nil)

	// unstake and claim still work while paused
	sdk.MockSetSender(aliceAddr)
	res := contract.Unstake(ptr("50"))
	require.Equal(t, "unstaked:50000", *res)
	res = contract.ClaimRewards(nil)
	require.NotNil(t, res)
}

func TestPauseSetRequiresAdmin(t *testing.T) {
	setup(t)
	sdk.MockSetSender(aliceAddr)
	expectRevert(t, "auth_error", func() {
		contract.PauseSet(ptr("true"))
	})
}

func TestAccrueStreamsDonation(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	whitelistReward(t, rewardTick)
	donate(rewardTick, 300_000)

	sdk.MockSetSender(bobAddr)
	res := contract.AccrueRewards(ptr(rewardTick))
	require.Equal(t, "accrued:300000", *res)

	tok := contract.RewardTokenGet(ptr(rewardTick))
	parts := strings.Split(*tok, "|")
	assert.Equal(t, "0", parts[1], "pool starts empty")
	assert.Equal(t, "300000", parts[2], "full donation is streaming")
}

func TestVestingHalfwayThenClaim(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	whitelistReward(t, rewardTick)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(bobAddr)
	contract.AccrueRewards(ptr(rewardTick))

	sdk.MockAdvanceTime(day(15))
	out := contract.OutstandingRewards(ptr(aliceAddr + "|" + rewardTick))
	assert.Equal(t, rewardTick+"=150000", *out)

	sdk.MockAdvanceTime(day(15))
	sdk.MockSetSender(aliceAddr)
	contract.ClaimRewards(ptr(rewardTick))
	assert.Equal(t, int64(300_000), sdk.MockBalance(aliceAddr, sdk.Asset(rewardTick)))

	out = contract.OutstandingRewards(ptr(aliceAddr + "|" + rewardTick))
	assert.Equal(t, rewardTick+"=0", *out)
}

func TestLateJoinerSharesCurrentPool(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	whitelistReward(t, rewardTick)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(carolAddr)
	contract.AccrueRewards(ptr(rewardTick))

	sdk.MockAdvanceTime(day(15))
	stakeAs(t, bobAddr, 300)

	sdk.MockAdvanceTime(day(15))
	sdk.MockSetSender(aliceAddr)
	contract.ClaimRewards(ptr(rewardTick))
	// pool fully vested at 300000; alice holds 100 of 400 staked
	assert.Equal(t, int64(75_000), sdk.MockBalance(aliceAddr, sdk.Asset(rewardTick)))

	sdk.MockSetSender(bobAddr)
	contract.ClaimRewards(ptr(rewardTick))
	// bob's share comes from the remaining pool of 225000
	assert.Equal(t, int64(168_750), sdk.MockBalance(bobAddr, sdk.Asset(rewardTick)))
}

func TestFirstStakerAfterEmptyRestartsStream(t *testing.T) {
	setup(t)
	whitelistReward(t, rewardTick)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(bobAddr)
	contract.AccrueRewards(ptr(rewardTick))

	// a third of the stream vests while nobody is staked
	sdk.MockAdvanceTime(day(10))
	stakeAs(t, aliceAddr, 100)

	tok := contract.RewardTokenGet(ptr(rewardTick))
	parts := strings.Split(*tok, "|")
	assert.Equal(t, "0", parts[1], "idle vested funds are not instantly claimable")
	assert.Equal(t, "300000", parts[2], "everything restarts in a fresh stream")
	assert.Equal(t, strconv.FormatInt(startTime+day(10), 10), parts[3])
}

func TestAccrueUnderlyingExcludesPrincipal(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	donate(underlying, 50_000)

	sdk.MockSetSender(bobAddr)
	res := contract.AccrueRewards(ptr(underlying))
	assert.Equal(t, "accrued:50000", *res)
}

func TestAccrueWithNoSurplusReverts(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	sdk.MockSetSender(bobAddr)
	expectRevert(t, "state_error", func() {
		contract.AccrueRewards(ptr(underlying))
	})
}

func TestWhitelistRules(t *testing.T) {
	setup(t)
	sdk.MockSetSender(aliceAddr)
	expectRevert(t, "auth_error", func() {
		contract.WhitelistToken(ptr(rewardTick))
	})

	whitelistReward(t, rewardTick)
	sdk.MockSetSender(adminAddr)
	expectRevert(t, "token_error", func() {
		contract.WhitelistToken(ptr(rewardTick))
	})
	expectRevert(t, "token_error", func() {
		contract.AccrueRewards(ptr("unknown"))
	})
}

func TestCleanupRefusesWhileRewardsRemain(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)
	whitelistReward(t, rewardTick)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(bobAddr)
	contract.AccrueRewards(ptr(rewardTick))

	sdk.MockSetSender(adminAddr)
	expectRevert(t, "cleanup_error", func() {
		contract.CleanupRewardToken(ptr(rewardTick))
	})
	expectRevert(t, "token_error", func() {
		contract.CleanupRewardToken(ptr(underlying))
	})

	// drain the stream completely, then cleanup goes through
	sdk.MockAdvanceTime(day(30))
	sdk.MockSetSender(aliceAddr)
	contract.ClaimRewards(ptr(rewardTick))
	sdk.MockSetSender(adminAddr)
	res := contract.CleanupRewardToken(ptr(rewardTick))
	require.Equal(t, "cleaned:"+rewardTick, *res)

	expectRevert(t, "token_error", func() {
		contract.RewardTokenGet(ptr(rewardTick))
	})
}

func TestStreamsAreIsolatedPerToken(t *testing.T) {
	setup(t)
	whitelistReward(t, rewardTick)
	whitelistReward(t, "usdt")
	stakeAs(t, aliceAddr, 100)

	donate(rewardTick, 300_000)
	sdk.MockSetSender(aliceAddr)
	contract.AccrueRewards(ptr(rewardTick))

	sdk.MockAdvanceTime(day(10))
	before := *contract.RewardTokenGet(ptr(rewardTick))

	// crediting a second token must not move the first token's stream
	donate("usdt", 90_000)
	contract.AccrueRewards(ptr("usdt"))
	assert.Equal(t, before, *contract.RewardTokenGet(ptr(rewardTick)))
}

func TestSettlementIdempotentAtSameTimestamp(t *testing.T) {
	setup(t)
	whitelistReward(t, rewardTick)
	stakeAs(t, aliceAddr, 100)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(aliceAddr)
	contract.AccrueRewards(ptr(rewardTick))

	sdk.MockAdvanceTime(day(10))
	res := contract.ClaimRewards(ptr(rewardTick))
	require.Equal(t, "claimed:1", *res)
	paid := sdk.MockBalance(aliceAddr, sdk.Asset(rewardTick))
	assert.Equal(t, int64(100_000), paid)

	// settling again at the same instant finds nothing new
	res = contract.ClaimRewards(ptr(rewardTick))
	assert.Equal(t, "claimed:0", *res)
	assert.Equal(t, paid, sdk.MockBalance(aliceAddr, sdk.Asset(rewardTick)))
	expectRevert(t, "state_error", func() {
		contract.AccrueRewards(ptr(rewardTick))
	})
}

func TestUnstakeRoutesToRecipient(t *testing.T) {
	setup(t)
	stakeAs(t, aliceAddr, 100)

	sdk.MockSetSender(aliceAddr)
	res := contract.Unstake(ptr("40|hive:coldwallet"))
	require.Equal(t, "unstaked:40000", *res)

	assert.Equal(t, int64(40_000), sdk.MockBalance("hive:coldwallet", sdk.Asset(underlying)))
	assert.Equal(t, int64(0), sdk.MockBalance(aliceAddr, sdk.Asset(underlying)))
	assert.Contains(t, sdk.MockLastLog(), "us|by:"+aliceAddr+"|to:hive:coldwallet")
}

func TestClaimRoutesToRecipient(t *testing.T) {
	setup(t)
	whitelistReward(t, rewardTick)
	stakeAs(t, aliceAddr, 100)
	donate(rewardTick, 300_000)
	sdk.MockSetSender(aliceAddr)
	contract.AccrueRewards(ptr(rewardTick))
	sdk.MockAdvanceTime(day(30))

	res := contract.ClaimRewards(ptr(rewardTick + "|hive:coldwallet"))
	require.Equal(t, "claimed:1", *res)

	assert.Equal(t, int64(300_000), sdk.MockBalance("hive:coldwallet", sdk.Asset(rewardTick)))
	assert.Equal(t, int64(0), sdk.MockBalance(aliceAddr, sdk.Asset(rewardTick)))
	assert.Contains(t, allLogs(), "cl|by:"+aliceAddr+"|to:hive:coldwallet|tk:"+rewardTick)
}

func TestEntryPointsRequireInit(t *testing.T) {
	sdk.MockReset()
	sdk.MockSetSender(aliceAddr)
	expectRevert(t, "not_initialized", func() {
		contract.Stake(ptr("1"))
	})
}

func TestDoubleInitReverts(t *testing.T) {
	setup(t)
	sdk.MockSetSender(adminAddr)
	expectRevert(t, "state_error", func() {
		contract.ContractInit(ptr(adminAddr + "|" + underlying + "|contract:treasury"))
	})
}
