package contract

import (
	"strings"

	"tidelock_dao/sdk"
)

// Stake locks underlying tokens and starts (or extends) the sender's position.
// The credited amount is what actually arrived on the ledger, so tokens that
// shave transfer fees only ever credit what the contract received. Top-ups
// average the start time by balance so accrued power carries over.
// Example payload: "100.5"
func Stake(payload *string) *string {
	return withGuard(func() *string {
		cfg := loadConfig()
		requireNotPaused(cfg)
		raw := unwrapPayload(payload, "stake payload missing")
		amount := parseAmountField(raw, "stake amount")
		sender := getSenderAddress()
		now := blockNow()

		allow := getFirstTransferAllow()
		if allow == nil || allow.Token != cfg.Underlying || FloatToAmount(allow.Limit) < amount {
			sdk.Revert("missing transfer allowance", "balance_error")
		}

		before := Amount(sdk.GetBalance(contractAddress(), cfg.Underlying))
		sdk.HiveDraw(int64(amount), cfg.Underlying)
		after := Amount(sdk.GetBalance(contractAddress(), cfg.Underlying))
		received := after - before
		if received <= 0 {
			sdk.Revert("no funds received", "balance_error")
		}

		totals := loadStakingTotals()
		if totals.TotalStaked == 0 {
			// stake supply was empty, fold idle rewards into fresh streams
			restartStreamsForFirstStaker(cfg, now)
		}

		pos := loadStakerPosition(sender)
		if pos == nil {
			pos = &StakerPosition{Address: sender, Balance: received, StakeStartTime: now}
			totals.StakerCount++
		} else {
			pos.StakeStartTime = weightedStakeStart(pos.Balance, received, pos.StakeStartTime, now)
			pos.Balance += received
		}
		totals.TotalStaked += received

		saveStakerPosition(pos)
		saveStakingTotals(totals)
		emitStakedEvent(AddressToString(sender), received, pos.Balance, totals.TotalStaked)
		return strptr("staked:" + formatAmount(received))
	})
}

// Unstake returns principal, by default to the sender, optionally to another
// address. A partial exit shrinks the accrued lock duration proportionally, a
// full exit deletes the position. Works while paused so funds are never trapped.
// Example payload: "50" or "50|hive:coldwallet"
func Unstake(payload *string) *string {
	return withGuard(func() *string {
		cfg := loadConfig()
		raw := unwrapPayload(payload, "unstake payload missing")
		parts := strings.Split(raw, "|")
		amount := parseAmountField(parts[0], "unstake amount")
		sender := getSenderAddress()
		recipient := sender
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			recipient = parseAddressField(parts[1], "recipient address")
		}
		now := blockNow()

		pos := loadStakerPosition(sender)
		if pos == nil || pos.Balance < amount {
			sdk.Revert("not enough staked", "insufficient_stake")
		}

		totals := loadStakingTotals()
		newBalance := pos.Balance - amount
		if newBalance > 0 {
			pos.StakeStartTime = shrinkStakeStart(pos.Balance, newBalance, pos.StakeStartTime, now)
		} else {
			totals.StakerCount--
		}
		pos.Balance = newBalance
		totals.TotalStaked -= amount

		saveStakerPosition(pos)
		saveStakingTotals(totals)
		sdk.HiveTransfer(recipient, int64(amount), cfg.Underlying)
		emitUnstakedEvent(AddressToString(sender), AddressToString(recipient), amount, newBalance, totals.TotalStaked)
		return strptr("unstaked:" + formatAmount(amount))
	})
}

// ClaimRewards pays the sender their pro-rata share of each claimable pool.
// An empty token list claims every whitelisted token; payouts default to the
// sender but can be routed elsewhere. State is written before each transfer
// leaves the contract.
// Example payload: "" or "hbd" or "hbd,hive|hive:coldwallet"
func ClaimRewards(payload *string) *string {
	return withGuard(func() *string {
		loadConfig()
		sender := getSenderAddress()
		now := blockNow()

		pos := loadStakerPosition(sender)
		if pos == nil || pos.Balance <= 0 {
			sdk.Revert("no active stake", "insufficient_stake")
		}
		totals := loadStakingTotals()

		parts := strings.Split(optionalPayload(payload), "|")
		recipient := sender
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			recipient = parseAddressField(parts[1], "recipient address")
		}
		var tokens []sdk.Asset
		if list := strings.TrimSpace(parts[0]); list != "" {
			for _, item := range strings.Split(list, ",") {
				token := parseTickerField(item, "reward token")
				if !isRegisteredToken(token) {
					sdk.Revert("token not whitelisted", "token_error")
				}
				tokens = append(tokens, token)
			}
		} else {
			tokens = loadTokenRegistry()
		}

		paid := 0
		for _, token := range tokens {
			rt := loadRewardTokenState(token)
			if rt == nil {
				continue
			}
			settleStream(rt, now)
			share, ok := mulDivAmount(rt.AvailablePool, pos.Balance, totals.TotalStaked)
			if !ok {
				sdk.Revert("reward share overflow", "amount_overflow")
			}
			if share <= 0 {
				saveRewardTokenState(rt)
				continue
			}
			rt.AvailablePool -= share
			saveRewardTokenState(rt)
			sdk.HiveTransfer(recipient, int64(share), token)
			emitClaimedEvent(AddressToString(sender), AddressToString(recipient), AssetToString(token), share, rt.AvailablePool)
			paid++
		}
		return strptr("claimed:" + formatUint(uint64(paid)))
	})
}

// AccrueRewards folds donated or otherwise surplus ledger balance of a token
// into its vesting stream. Permissionless: anyone can poke it after sending
// funds to the contract.
// Example payload: "hbd"
func AccrueRewards(payload *string) *string {
	cfg := loadConfig()
	raw := unwrapPayload(payload, "accrue payload missing")
	token := parseTickerField(raw, "reward token")
	if !isRegisteredToken(token) {
		sdk.Revert("token not whitelisted", "token_error")
	}
	delta, err := accrueToken(cfg, token, blockNow())
	if err != nil {
		sdk.Revert(err.Error(), "state_error")
	}
	return strptr("accrued:" + formatAmount(delta))
}

// WhitelistToken registers a new reward token, admin only.
// Example payload: "hbd"
func WhitelistToken(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	raw := unwrapPayload(payload, "whitelist payload missing")
	token := parseTickerField(raw, "reward token")

	registry := loadTokenRegistry()
	for _, t := range registry {
		if t == token {
			sdk.Revert("token already whitelisted", "token_error")
		}
	}
	if uint64(len(registry)) >= cfg.MaxRewardTokens {
		sdk.Revert("reward token limit reached", "cap_error")
	}
	registry = append(registry, token)
	saveTokenRegistry(registry)
	saveRewardTokenState(&RewardTokenState{Token: token, LastUpdate: blockNow()})
	emitTokenWhitelistedEvent(AssetToString(token), AddressToString(getSenderAddress()))
	return strptr("whitelisted:" + AssetToString(token))
}

// CleanupRewardToken drops a drained token from the registry, admin only.
// Refuses while anything is still claimable or vesting, and never removes
// the underlying token.
// Example payload: "hbd"
func CleanupRewardToken(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	raw := unwrapPayload(payload, "cleanup payload missing")
	token := parseTickerField(raw, "reward token")
	if token == cfg.Underlying {
		sdk.Revert("cannot remove underlying token", "token_error")
	}
	rt := loadRewardTokenState(token)
	if rt == nil {
		sdk.Revert("token not whitelisted", "token_error")
	}
	settleStream(rt, blockNow())
	if rt.AvailablePool > 0 || rt.StreamTotal > 0 {
		sdk.Revert("token still holds rewards", "cleanup_error")
	}

	registry := loadTokenRegistry()
	kept := make([]sdk.Asset, 0, len(registry))
	for _, t := range registry {
		if t != token {
			kept = append(kept, t)
		}
	}
	saveTokenRegistry(kept)
	deleteRewardTokenState(token)
	emitTokenCleanedEvent(AssetToString(token), AddressToString(getSenderAddress()))
	return strptr("cleaned:" + AssetToString(token))
}
