package contract

import "tidelock_dao/sdk"

// loadStakerPosition returns nil when the address never staked (or fully exited).
func loadStakerPosition(addr sdk.Address) *StakerPosition {
	raw := sdk.StateGetObject(stakerKey(addr))
	if raw == nil {
		return nil
	}
	p, err := DecodeStakerPosition([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt staker position: " + AddressToString(addr))
	}
	return p
}

// saveStakerPosition persists the blob, dropping the key entirely on a full exit.
func saveStakerPosition(p *StakerPosition) {
	if p.Balance <= 0 {
		sdk.StateDeleteObject(stakerKey(p.Address))
		return
	}
	sdk.StateSetObject(stakerKey(p.Address), string(EncodeStakerPosition(p)))
}

// loadStakingTotals always returns a struct, zeroed before the first stake.
func loadStakingTotals() *StakingTotals {
	raw := sdk.StateGetObject(TotalsKey)
	if raw == nil {
		return &StakingTotals{}
	}
	t, err := DecodeStakingTotals([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt staking totals")
	}
	return t
}

func saveStakingTotals(t *StakingTotals) {
	sdk.StateSetObject(TotalsKey, string(EncodeStakingTotals(t)))
}

// currentVotingPower computes the power of a live position at the given time,
// reverting when the product leaves uint64 range.
func currentVotingPower(p *StakerPosition, now int64) uint64 {
	power, ok := votingPower(p.Balance, now-p.StakeStartTime)
	if !ok {
		sdk.Revert("voting power overflow", "amount_overflow")
	}
	return power
}
