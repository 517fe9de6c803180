package contract

import (
	"errors"
	"strings"

	result "github.com/JustinKnueppel/go-result"

	"tidelock_dao/sdk"
)

// The treasury lives in a separate contract; we only ever ask it to move
// funds after a proposal won. Its responses follow the usual convention of
// an "err:" prefix for failures, wrapped here into a Result so callers
// pattern-match instead of inspecting strings.

// treasuryTransfer asks the treasury to pay a recipient directly.
func treasuryTransfer(cfg *ContractConfig, token sdk.Asset, to sdk.Address, amount Amount) result.Result[string] {
	payload := AssetToString(token) + "|" + AddressToString(to) + "|" + formatAmount(amount)
	return callTreasury(cfg, "transfer", payload)
}

// treasuryBoost asks the treasury to send funds to this contract so they can
// be folded into the reward stream afterwards.
func treasuryBoost(cfg *ContractConfig, token sdk.Asset, amount Amount) result.Result[string] {
	payload := AssetToString(token) + "|" + AddressToString(contractAddress()) + "|" + formatAmount(amount)
	return callTreasury(cfg, "transfer", payload)
}

func callTreasury(cfg *ContractConfig, method string, payload string) result.Result[string] {
	res := sdk.ContractCall(cfg.TreasuryContract, method, payload, nil)
	if res == nil {
		return result.Err[string](errors.New("treasury call returned nothing"))
	}
	if strings.HasPrefix(*res, "err:") {
		return result.Err[string](errors.New(strings.TrimPrefix(*res, "err:")))
	}
	return result.Ok(*res)
}
