package contract

import (
	"strconv"
	"strings"

	"tidelock_dao/sdk"
)

// Read-only entry points. They still settle streams virtually (in memory, no
// writes) so callers see the values a real interaction would produce.

// VotingPower returns the current power of an address as a decimal string.
// Addresses without a position read as zero.
// Example payload: "hive:alice"
func VotingPower(payload *string) *string {
	loadConfig()
	addr := parseAddressField(unwrapPayload(payload, "address required"), "address")
	pos := loadStakerPosition(addr)
	if pos == nil {
		return strptr("0")
	}
	return strptr(formatUint(currentVotingPower(pos, blockNow())))
}

// OutstandingRewards projects what a claim right now would pay out, per token.
// Example payload: "hive:alice" or "hive:alice|hbd"
func OutstandingRewards(payload *string) *string {
	loadConfig()
	raw := unwrapPayload(payload, "address required")
	parts := strings.Split(raw, "|")
	addr := parseAddressField(parts[0], "address")

	pos := loadStakerPosition(addr)
	totals := loadStakingTotals()
	now := blockNow()

	var tokens []sdk.Asset
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		token := parseTickerField(parts[1], "reward token")
		if !isRegisteredToken(token) {
			sdk.Revert("token not whitelisted", "token_error")
		}
		tokens = []sdk.Asset{token}
	} else {
		tokens = loadTokenRegistry()
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		share := Amount(0)
		rt := loadRewardTokenState(token)
		if rt != nil && pos != nil && pos.Balance > 0 && totals.TotalStaked > 0 {
			settleStream(rt, now)
			s, ok := mulDivAmount(rt.AvailablePool, pos.Balance, totals.TotalStaked)
			if !ok {
				sdk.Revert("reward share overflow", "amount_overflow")
			}
			share = s
		}
		out = append(out, AssetToString(token)+"="+formatAmount(share))
	}
	return strptr(strings.Join(out, ";"))
}

// StakerGet dumps one position as address|balance|startTime|power.
// Example payload: "hive:alice"
func StakerGet(payload *string) *string {
	loadConfig()
	addr := parseAddressField(unwrapPayload(payload, "address required"), "address")
	pos := loadStakerPosition(addr)
	if pos == nil {
		sdk.Revert("unknown staker", "state_error")
	}
	now := blockNow()
	return strptr(strings.Join([]string{
		AddressToString(pos.Address),
		formatAmount(pos.Balance),
		strconv.FormatInt(pos.StakeStartTime, 10),
		formatUint(currentVotingPower(pos, now)),
	}, "|"))
}

// RewardTokenGet dumps one stream as token|pool|streamTotal|start|end|lastUpdate
// with the stream settled to now.
// Example payload: "hbd"
func RewardTokenGet(payload *string) *string {
	loadConfig()
	token := parseTickerField(unwrapPayload(payload, "token required"), "reward token")
	rt := loadRewardTokenState(token)
	if rt == nil {
		sdk.Revert("token not whitelisted", "token_error")
	}
	settleStream(rt, blockNow())
	return strptr(strings.Join([]string{
		AssetToString(rt.Token),
		formatAmount(rt.AvailablePool),
		formatAmount(rt.StreamTotal),
		strconv.FormatInt(rt.StreamStart, 10),
		strconv.FormatInt(rt.StreamEnd, 10),
		strconv.FormatInt(rt.LastUpdate, 10),
	}, "|"))
}

// ProposalGet dumps one proposal's full record, pipe separated.
// Example payload: "3"
func ProposalGet(payload *string) *string {
	loadConfig()
	id := parseUintField(unwrapPayload(payload, "proposal id required"), "proposal id")
	p := loadProposal(id)
	if p == nil {
		sdk.Revert("unknown proposal", "state_error")
	}
	return strptr(strings.Join([]string{
		formatUint(p.ID),
		formatUint(uint64(p.Type)),
		AddressToString(p.Proposer),
		AssetToString(p.Token),
		formatAmount(p.Amount),
		AddressToString(p.Recipient),
		formatUint(p.YesVotes),
		formatUint(p.NoVotes),
		formatAmount(p.ParticipationStake),
		formatAmount(p.SupplySnapshot),
		strconv.FormatBool(p.Executed),
		formatUint(p.CycleID),
	}, "|"))
}

// CycleGet returns a cycle by id, or the current one for an empty payload.
// Format: id|proposalWindowEnd|votingWindowEnd|id1,id2,...
// Example payload: "" or "2"
func CycleGet(payload *string) *string {
	loadConfig()
	var c *Cycle
	if raw := optionalPayload(payload); raw != "" {
		c = loadCycle(parseUintField(raw, "cycle id"))
	} else {
		c = currentCycle()
	}
	if c == nil {
		sdk.Revert("unknown cycle", "state_error")
	}
	ids := make([]string, 0, len(c.ProposalIDs))
	for _, id := range c.ProposalIDs {
		ids = append(ids, formatUint(id))
	}
	return strptr(strings.Join([]string{
		formatUint(c.ID),
		strconv.FormatInt(c.ProposalWindowEnd, 10),
		strconv.FormatInt(c.VotingWindowEnd, 10),
		strings.Join(ids, ","),
	}, "|"))
}
