package contract

import (
	"fmt"
	"strconv"

	"tidelock_dao/sdk"
)

// emitStakedEvent writes a tiny "st" log so watchers can track lock changes without storage diffs.
func emitStakedEvent(staker string, received Amount, newBalance Amount, totalStaked Amount) {
	sdk.Log(fmt.Sprintf(
		"st|by:%s|am:%d|bal:%d|ts:%d",
		staker,
		received,
		newBalance,
		totalStaked,
	))
}

// emitUnstakedEvent mirrors the stake ping but signals funds leaving the lock.
func emitUnstakedEvent(staker string, to string, amount Amount, newBalance Amount, totalStaked Amount) {
	sdk.Log(fmt.Sprintf(
		"us|by:%s|to:%s|am:%d|bal:%d|ts:%d",
		staker,
		to,
		amount,
		newBalance,
		totalStaked,
	))
}

// emitClaimedEvent logs one line per token paid out so reward flows replay from logs only.
func emitClaimedEvent(staker string, to string, token string, amount Amount, poolLeft Amount) {
	sdk.Log(fmt.Sprintf(
		"cl|by:%s|to:%s|tk:%s|am:%d|pool:%d",
		staker,
		to,
		token,
		amount,
		poolLeft,
	))
}

// emitAccruedEvent records surplus folded into a stream plus its new end time.
func emitAccruedEvent(token string, delta Amount, streamTotal Amount, streamEnd int64) {
	sdk.Log(fmt.Sprintf(
		"ar|tk:%s|am:%d|total:%d|end:%s",
		token,
		delta,
		streamTotal,
		strconv.FormatInt(streamEnd, 10),
	))
}

// emitTokenWhitelistedEvent gives explorers a neat ping for new reward tokens.
func emitTokenWhitelistedEvent(token string, by string) {
	sdk.Log(fmt.Sprintf(
		"wt|tk:%s|by:%s",
		token,
		by,
	))
}

// emitTokenCleanedEvent marks a reward token removed from the registry.
func emitTokenCleanedEvent(token string, by string) {
	sdk.Log(fmt.Sprintf(
		"tc|tk:%s|by:%s",
		token,
		by,
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new idea.
func emitProposalCreatedEvent(proposalID uint64, proposer string, ptype ProposalType) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|t:%d",
		proposalID,
		proposer,
		ptype,
	))
}

// emitVoteCastedEvent includes power plus stake so quorum math can be replayed from logs only.
func emitVoteCastedEvent(proposalID uint64, voter string, support bool, power uint64, stake Amount) {
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|s:%s|p:%d|st:%d",
		proposalID,
		voter,
		strconv.FormatBool(support),
		power,
		stake,
	))
}

// emitProposalExecutedEvent leaves a short hint which funds moved after execution.
func emitProposalExecutedEvent(proposalID uint64, token string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|tk:%s|am:%d",
		proposalID,
		token,
		amount,
	))
}

// emitBoostAccrualFailedEvent flags a boost whose funds arrived but couldnt be streamed yet.
func emitBoostAccrualFailedEvent(proposalID uint64, token string, reason string) {
	sdk.Log(fmt.Sprintf(
		"bf|id:%d|tk:%s|r:%s",
		proposalID,
		token,
		reason,
	))
}

// emitCycleStartedEvent announces new windows so bots can queue proposals in time.
func emitCycleStartedEvent(cycleID uint64, proposalWindowEnd int64, votingWindowEnd int64) {
	sdk.Log(fmt.Sprintf(
		"cs|id:%d|pe:%s|ve:%s",
		cycleID,
		strconv.FormatInt(proposalWindowEnd, 10),
		strconv.FormatInt(votingWindowEnd, 10),
	))
}

// emitConfigUpdatedEvent spells out field diffs so auditors can track sensitive flips.
func emitConfigUpdatedEvent(field string, old string, new string) {
	sdk.Log(fmt.Sprintf(
		"cu|f:%s|old:%s|new:%s",
		field,
		old,
		new,
	))
}

// emitPauseSetEvent records the pause flag flipping either way.
func emitPauseSetEvent(paused bool, by string) {
	sdk.Log(fmt.Sprintf(
		"pz|p:%s|by:%s",
		strconv.FormatBool(paused),
		by,
	))
}
