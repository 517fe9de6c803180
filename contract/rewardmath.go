package contract

import (
	"github.com/holiman/uint256"
)

// All ratio math runs through 256-bit intermediates; balances are 64-bit but
// balance*seconds and pool*balance products are not. Callers decide whether an
// overflowing result is a revert or a clamp.

// mulDivU256 computes a*b/den exactly. den must be positive.
func mulDivU256(a uint64, b uint64, den uint64) *uint256.Int {
	z := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	return z.Div(z, uint256.NewInt(den))
}

// mulDivAmount is the Amount flavored wrapper, second return flags overflow.
func mulDivAmount(a Amount, b Amount, den Amount) (Amount, bool) {
	if den <= 0 {
		return 0, false
	}
	z := mulDivU256(uint64(a), uint64(b), uint64(den))
	if !z.IsUint64() || z.Uint64() > uint64(maxAmount) {
		return 0, false
	}
	return Amount(z.Uint64()), true
}

const maxAmount = Amount(1<<63 - 1)

// votingPower is balance times lock duration in seconds, the core power curve.
// Second return flags a product that doesnt fit uint64.
func votingPower(balance Amount, elapsedSecs int64) (uint64, bool) {
	if balance <= 0 || elapsedSecs <= 0 {
		return 0, true
	}
	z := new(uint256.Int).Mul(uint256.NewInt(uint64(balance)), uint256.NewInt(uint64(elapsedSecs)))
	if !z.IsUint64() {
		return 0, false
	}
	return z.Uint64(), true
}

// vestedUpTo returns how much of a linear stream has vested at time t,
// clamped to the window edges. Settlement takes the difference between two
// of these points so rounding dust never strands.
func vestedUpTo(total Amount, start int64, end int64, t int64) Amount {
	if total <= 0 || end <= start {
		return 0
	}
	if t <= start {
		return 0
	}
	if t >= end {
		return total
	}
	z := mulDivU256(uint64(total), uint64(t-start), uint64(end-start))
	// total fits int64 and t-start < end-start, so the quotient always fits
	return Amount(z.Uint64())
}

// weightedStakeStart folds a top-up into an existing position. The new start
// is the balance-weighted average so accrued power carries over exactly.
func weightedStakeStart(oldBalance Amount, added Amount, oldStart int64, now int64) int64 {
	newBalance := oldBalance + added
	if oldBalance <= 0 || newBalance <= 0 {
		return now
	}
	elapsed := now - oldStart
	if elapsed <= 0 {
		return now
	}
	z := mulDivU256(uint64(oldBalance), uint64(elapsed), uint64(newBalance))
	return now - int64(z.Uint64())
}

// shrinkStakeStart scales the accrued duration down on a partial exit, so
// power drops by the square of the withdrawn share rather than staying flat.
func shrinkStakeStart(oldBalance Amount, newBalance Amount, oldStart int64, now int64) int64 {
	if newBalance <= 0 || oldBalance <= 0 {
		return now
	}
	elapsed := now - oldStart
	if elapsed <= 0 {
		return now
	}
	z := mulDivU256(uint64(elapsed), uint64(newBalance), uint64(oldBalance))
	return now - int64(z.Uint64())
}

// quorumReached checks participation*10000 >= quorumBps*supply without overflow.
func quorumReached(participation Amount, quorumBps uint64, supply Amount) bool {
	if supply <= 0 {
		return false
	}
	if participation < 0 {
		return false
	}
	lhs := new(uint256.Int).Mul(uint256.NewInt(uint64(participation)), uint256.NewInt(BpsDenominator))
	rhs := new(uint256.Int).Mul(uint256.NewInt(quorumBps), uint256.NewInt(uint64(supply)))
	return lhs.Cmp(rhs) >= 0
}

// approvalReached checks yes*10000 >= approvalBps*(yes+no) over actual voters.
func approvalReached(yes uint64, no uint64, approvalBps uint64) bool {
	if yes == 0 && no == 0 {
		return false
	}
	lhs := new(uint256.Int).Mul(uint256.NewInt(yes), uint256.NewInt(BpsDenominator))
	cast := new(uint256.Int).Add(uint256.NewInt(yes), uint256.NewInt(no))
	rhs := new(uint256.Int).Mul(uint256.NewInt(approvalBps), cast)
	return lhs.Cmp(rhs) >= 0
}

// minAmount is a tiny helper for the supply clamp in quorum checks.
func minAmount(a Amount, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}
