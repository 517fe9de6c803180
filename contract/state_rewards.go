package contract

import (
	"errors"
	"strings"

	"tidelock_dao/sdk"
)

// loadTokenRegistry returns the whitelisted reward token tickers in insertion order.
func loadTokenRegistry() []sdk.Asset {
	raw := sdk.StateGetObject(RegistryKey)
	if raw == nil || *raw == "" {
		return nil
	}
	parts := strings.Split(*raw, ",")
	tokens := make([]sdk.Asset, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, AssetFromString(p))
	}
	return tokens
}

func saveTokenRegistry(tokens []sdk.Asset) {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, AssetToString(t))
	}
	stateSetIfChanged(RegistryKey, strings.Join(parts, ","))
}

// isRegisteredToken does a linear scan, the registry is capped small.
func isRegisteredToken(token sdk.Asset) bool {
	for _, t := range loadTokenRegistry() {
		if t == token {
			return true
		}
	}
	return false
}

// loadRewardTokenState returns nil for tokens never whitelisted.
func loadRewardTokenState(token sdk.Asset) *RewardTokenState {
	raw := sdk.StateGetObject(rewardTokenKey(token))
	if raw == nil {
		return nil
	}
	rt, err := DecodeRewardTokenState([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt reward token state: " + AssetToString(token))
	}
	return rt
}

func saveRewardTokenState(rt *RewardTokenState) {
	sdk.StateSetObject(rewardTokenKey(rt.Token), string(EncodeRewardTokenState(rt)))
}

func deleteRewardTokenState(token sdk.Asset) {
	sdk.StateDeleteObject(rewardTokenKey(token))
}

// settleStream moves the vested-since-last-touch slice into the claimable pool.
// Uses the difference of two cumulative points so per-call rounding never
// strands dust at the stream tail. Clears the stream once fully vested.
func settleStream(rt *RewardTokenState, now int64) {
	if rt.StreamTotal > 0 {
		vestedNow := vestedUpTo(rt.StreamTotal, rt.StreamStart, rt.StreamEnd, now)
		vestedPrev := vestedUpTo(rt.StreamTotal, rt.StreamStart, rt.StreamEnd, rt.LastUpdate)
		if vestedNow > vestedPrev {
			rt.AvailablePool += vestedNow - vestedPrev
		}
		if now >= rt.StreamEnd {
			rt.StreamTotal = 0
			rt.StreamStart = 0
			rt.StreamEnd = 0
		}
	}
	rt.LastUpdate = now
}

// unvestedRemaining is what is still locked in the stream at the given time.
func unvestedRemaining(rt *RewardTokenState, now int64) Amount {
	if rt.StreamTotal <= 0 {
		return 0
	}
	return rt.StreamTotal - vestedUpTo(rt.StreamTotal, rt.StreamStart, rt.StreamEnd, now)
}

// restartStreamsForFirstStaker runs when total stake goes zero to positive.
// Funds that vested while nobody was staked would otherwise be claimable by
// the first depositor alone, so pool plus remaining stream are folded into a
// fresh stream starting now.
func restartStreamsForFirstStaker(cfg *ContractConfig, now int64) {
	for _, token := range loadTokenRegistry() {
		rt := loadRewardTokenState(token)
		if rt == nil {
			continue
		}
		settleStream(rt, now)
		carry := rt.AvailablePool + unvestedRemaining(rt, now)
		if carry > 0 {
			rt.AvailablePool = 0
			rt.StreamTotal = carry
			rt.StreamStart = now
			rt.StreamEnd = now + int64(cfg.StreamWindowSecs)
		}
		rt.LastUpdate = now
		saveRewardTokenState(rt)
	}
}

// tokenReserve is everything the ledger balance already accounts for: the
// claimable pool, the still-vesting stream, and (for the underlying token)
// the staked principal.
func tokenReserve(cfg *ContractConfig, rt *RewardTokenState, totals *StakingTotals, now int64) Amount {
	reserve := rt.AvailablePool + unvestedRemaining(rt, now)
	if rt.Token == cfg.Underlying {
		reserve += totals.TotalStaked
	}
	return reserve
}

// accrueToken folds any ledger surplus above the reserve into the vesting
// stream. Returns an error instead of reverting so boost execution can stay
// fail-open; the exported entry point converts errors into reverts.
func accrueToken(cfg *ContractConfig, token sdk.Asset, now int64) (Amount, error) {
	rt := loadRewardTokenState(token)
	if rt == nil {
		return 0, errors.New("token not whitelisted")
	}
	settleStream(rt, now)
	totals := loadStakingTotals()
	ledger := Amount(sdk.GetBalance(contractAddress(), token))
	reserve := tokenReserve(cfg, rt, totals, now)
	delta := ledger - reserve
	if delta <= 0 {
		saveRewardTokenState(rt)
		return 0, errors.New("nothing to accrue")
	}
	rt.StreamTotal = unvestedRemaining(rt, now) + delta
	rt.StreamStart = now
	rt.StreamEnd = now + int64(cfg.StreamWindowSecs)
	saveRewardTokenState(rt)
	emitAccruedEvent(AssetToString(token), delta, rt.StreamTotal, rt.StreamEnd)
	return delta, nil
}
