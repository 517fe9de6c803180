package contract

import (
	"math"
	"strconv"

	"tidelock_dao/sdk"
)

// Amount is a fixed-point token quantity scaled by AmountScale.
type Amount int64

// ProposalType discriminates what an executed proposal does with treasury funds.
type ProposalType uint8

// FloatToAmount converts a human float into the scaled fixed-point form.
// Example payload: FloatToAmount(1.5) == Amount(1500)
func FloatToAmount(f float64) Amount {
	return Amount(math.Round(f * AmountScale))
}

// AmountToFloat goes the other way for logs and view output.
func AmountToFloat(a Amount) float64 {
	return float64(a) / AmountScale
}

// formatAmount renders the scaled integer directly so output stays exact.
func formatAmount(a Amount) string {
	return strconv.FormatInt(int64(a), 10)
}

// formatUint mirrors formatAmount for unsigned counters and tallies.
func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// AddressFromString normalizes a raw payload string into an address.
func AddressFromString(s string) sdk.Address {
	return sdk.Address(s)
}

// AddressToString canonicalizes an address for keys and logs.
func AddressToString(a sdk.Address) string {
	return a.String()
}

// AssetFromString wraps a ticker string.
func AssetFromString(s string) sdk.Asset {
	return sdk.Asset(s)
}

// AssetToString unwraps a ticker for keys and logs.
func AssetToString(a sdk.Asset) string {
	return a.String()
}

// StakerPosition is one account's lock. StakeStartTime is an effective start:
// top-ups pull it forward via a balance-weighted average and partial exits
// shrink the accrued duration proportionally, so power never jumps.
type StakerPosition struct {
	Address        sdk.Address
	Balance        Amount
	StakeStartTime int64
}

// StakingTotals aggregates across all positions so quorum math stays O(1).
type StakingTotals struct {
	TotalStaked Amount
	StakerCount uint64
}

// RewardTokenState tracks one reward token's vesting stream plus the pool of
// already vested, claimable funds. StreamTotal is the full amount of the
// current stream; the claimable share of it moves into AvailablePool as time
// passes (settled lazily on interactions via LastUpdate).
type RewardTokenState struct {
	Token         sdk.Asset
	AvailablePool Amount
	StreamTotal   Amount
	StreamStart   int64
	StreamEnd     int64
	LastUpdate    int64
}

// ContractConfig is the admin-tunable parameter set, persisted as one blob.
type ContractConfig struct {
	Admin               sdk.Address
	Underlying          sdk.Asset
	TreasuryContract    string
	QuorumBps           uint64
	ApprovalBps         uint64
	ProposalWindowSecs  uint64
	VotingWindowSecs    uint64
	StreamWindowSecs    uint64
	MinProposerStakeBps uint64
	MaxActivePerType    uint64
	MaxRewardTokens     uint64
	Paused              bool
}

// Proposal is one funding request inside a cycle. Vote tallies are voting
// power; ParticipationStake sums the voters' raw stake for quorum checks.
// Quorum and approval thresholds are snapshotted at creation so a config
// change mid-cycle cannot move the goalposts.
type Proposal struct {
	ID                  uint64
	Type                ProposalType
	Proposer            sdk.Address
	Token               sdk.Asset
	Amount              Amount
	Recipient           sdk.Address
	YesVotes            uint64
	NoVotes             uint64
	ParticipationStake  Amount
	SupplySnapshot      Amount
	QuorumBpsSnapshot   uint64
	ApprovalBpsSnapshot uint64
	Executed            bool
	CycleID             uint64
	CreatedAt           int64
}

// VoteReceipt pins down what a voter committed, one per proposal+address.
type VoteReceipt struct {
	Support bool
	Power   uint64
	Stake   Amount
	VotedAt int64
}

// Cycle frames a proposal window followed by a voting window. ProposalIDs
// stays small because proposer uniqueness and per-type caps bound it.
type Cycle struct {
	ID                uint64
	ProposalWindowEnd int64
	VotingWindowEnd   int64
	ProposalIDs       []uint64
}
