package contract

import (
	"tidelock_dao/sdk"
)

// CycleStart opens a new proposal window. Permissionless keeper call: anyone
// may start the next cycle once the previous one's voting window has closed
// and its winner (if any) was executed.
// Example payload: ""
func CycleStart(payload *string) *string {
	cfg := loadConfig()
	now := blockNow()

	if prev := currentCycle(); prev != nil {
		if !prev.finished(now) {
			sdk.Revert("previous cycle still running", "window_error")
		}
		totals := loadStakingTotals()
		if w := cycleWinner(prev, totals.TotalStaked); w != nil && !w.Executed {
			sdk.Revert("previous winner not executed", "state_error")
		}
	}

	c := &Cycle{
		ID:                nextID(CyclesCount),
		ProposalWindowEnd: now + int64(cfg.ProposalWindowSecs),
	}
	c.VotingWindowEnd = c.ProposalWindowEnd + int64(cfg.VotingWindowSecs)
	saveCycle(c)
	setCurrentCycle(c.ID)
	emitCycleStartedEvent(c.ID, c.ProposalWindowEnd, c.VotingWindowEnd)
	return strptr("cycle:" + formatUint(c.ID))
}

// ProposeTransfer files a proposal to pay treasury funds to a recipient.
// Example payload: "hbd|hive:bob|250.5"
func ProposeTransfer(payload *string) *string {
	raw := unwrapPayload(payload, "proposal payload missing")
	parts := splitPayload(raw, 3, "transfer proposal requires token|recipient|amount")
	token := parseTickerField(parts[0], "proposal token")
	recipient := parseAddressField(parts[1], "recipient address")
	amount := parseAmountField(parts[2], "proposal amount")
	return createProposal(ProposalTypeTransfer, token, recipient, amount)
}

// ProposeBoost files a proposal to move treasury funds into the reward
// streams. Only whitelisted reward tokens qualify since the funds must land
// in an existing stream.
// Example payload: "hbd|500"
func ProposeBoost(payload *string) *string {
	raw := unwrapPayload(payload, "proposal payload missing")
	parts := splitPayload(raw, 2, "boost proposal requires token|amount")
	token := parseTickerField(parts[0], "proposal token")
	amount := parseAmountField(parts[1], "proposal amount")
	if !isRegisteredToken(token) {
		sdk.Revert("token not whitelisted", "token_error")
	}
	return createProposal(ProposalTypeBoost, token, sdk.Address(""), amount)
}

func createProposal(ptype ProposalType, token sdk.Asset, recipient sdk.Address, amount Amount) *string {
	cfg := loadConfig()
	requireNotPaused(cfg)
	sender := getSenderAddress()
	now := blockNow()

	cycle := currentCycle()
	if cycle == nil || !cycle.inProposalWindow(now) {
		sdk.Revert("proposal window closed", "window_error")
	}

	pos := loadStakerPosition(sender)
	totals := loadStakingTotals()
	if pos == nil || pos.Balance <= 0 {
		sdk.Revert("stake required to propose", "insufficient_stake")
	}
	if cfg.MinProposerStakeBps > 0 && !quorumReached(pos.Balance, cfg.MinProposerStakeBps, totals.TotalStaked) {
		sdk.Revert("stake below proposer minimum", "insufficient_stake")
	}

	typeCount := uint64(0)
	for _, id := range cycle.ProposalIDs {
		existing := loadProposal(id)
		if existing == nil {
			continue
		}
		if existing.Proposer == sender && existing.Type == ptype {
			sdk.Revert("one proposal per type per cycle", "already_proposed")
		}
		if existing.Type == ptype {
			typeCount++
		}
	}
	if typeCount >= cfg.MaxActivePerType {
		sdk.Revert("proposal type limit reached", "cap_error")
	}

	p := &Proposal{
		ID:                  nextID(ProposalsCount),
		Type:                ptype,
		Proposer:            sender,
		Token:               token,
		Amount:              amount,
		Recipient:           recipient,
		SupplySnapshot:      totals.TotalStaked,
		QuorumBpsSnapshot:   cfg.QuorumBps,
		ApprovalBpsSnapshot: cfg.ApprovalBps,
		CycleID:             cycle.ID,
		CreatedAt:           now,
	}
	saveProposal(p)
	cycle.ProposalIDs = append(cycle.ProposalIDs, p.ID)
	saveCycle(cycle)
	emitProposalCreatedEvent(p.ID, AddressToString(sender), ptype)
	return strptr("proposal:" + formatUint(p.ID))
}

// VoteProposal casts a yes/no vote weighted by current voting power. One vote
// per address per proposal, no changes after the fact.
// Example payload: "3|yes"
func VoteProposal(payload *string) *string {
	loadConfig()
	raw := unwrapPayload(payload, "vote payload missing")
	parts := splitPayload(raw, 2, "vote payload requires proposalId|support")
	proposalID := parseUintField(parts[0], "proposal id")
	support := parseBoolField(parts[1])
	sender := getSenderAddress()
	now := blockNow()

	p := loadProposal(proposalID)
	if p == nil {
		sdk.Revert("unknown proposal", "state_error")
	}
	cycle := loadCycle(p.CycleID)
	if cycle == nil || !cycle.inVotingWindow(now) {
		sdk.Revert("voting window closed", "window_error")
	}

	pos := loadStakerPosition(sender)
	if pos == nil || pos.Balance <= 0 {
		sdk.Revert("stake required to vote", "insufficient_stake")
	}
	if loadVoteReceipt(proposalID, sender) != nil {
		sdk.Revert("vote already cast", "already_voted")
	}

	power := currentVotingPower(pos, now)
	if power == 0 {
		sdk.Revert("no voting power accrued yet", "insufficient_power")
	}

	if support {
		p.YesVotes += power
	} else {
		p.NoVotes += power
	}
	p.ParticipationStake += pos.Balance
	saveProposal(p)
	saveVoteReceipt(proposalID, sender, &VoteReceipt{
		Support: support,
		Power:   power,
		Stake:   pos.Balance,
		VotedAt: now,
	})
	emitVoteCastedEvent(proposalID, AddressToString(sender), support, power, pos.Balance)
	return strptr("voted:" + formatUint(power))
}

// ExecuteProposal settles a finished cycle's winner. Only the single proposal
// with the strictly highest yes tally among the quorum-and-approval passers
// may execute; a tie at the top leaves the cycle without a winner. The
// executed flag is written before any treasury interaction.
// Example payload: "3"
func ExecuteProposal(payload *string) *string {
	return withGuard(func() *string {
		cfg := loadConfig()
		raw := unwrapPayload(payload, "execute payload missing")
		proposalID := parseUintField(raw, "proposal id")
		now := blockNow()

		p := loadProposal(proposalID)
		if p == nil {
			sdk.Revert("unknown proposal", "state_error")
		}
		if p.Executed {
			sdk.Revert("proposal already executed", "already_executed")
		}
		cycle := loadCycle(p.CycleID)
		if cycle == nil || !cycle.finished(now) {
			sdk.Revert("voting still open", "window_error")
		}

		totals := loadStakingTotals()
		if !passesThresholds(p, totals.TotalStaked) {
			sdk.Revert("quorum or approval not met", "state_error")
		}
		winner := cycleWinner(cycle, totals.TotalStaked)
		if winner == nil || winner.ID != p.ID {
			sdk.Revert("not the cycle winner", "not_winner")
		}

		p.Executed = true
		saveProposal(p)

		switch p.Type {
		case ProposalTypeTransfer:
			res := treasuryTransfer(cfg, p.Token, p.Recipient, p.Amount)
			if res.IsErr() {
				sdk.Revert("treasury transfer failed: "+res.UnwrapErr().Error(), "treasury_error")
			}
		case ProposalTypeBoost:
			res := treasuryBoost(cfg, p.Token, p.Amount)
			if res.IsErr() {
				sdk.Revert("treasury boost failed: "+res.UnwrapErr().Error(), "treasury_error")
			}
			// funds arrived; a failed accrual must not roll the execution back
			if _, err := accrueToken(cfg, p.Token, now); err != nil {
				emitBoostAccrualFailedEvent(p.ID, AssetToString(p.Token), err.Error())
			}
		default:
			sdk.Abort("corrupt proposal type")
		}

		emitProposalExecutedEvent(p.ID, AssetToString(p.Token), p.Amount)
		return strptr("executed:" + formatUint(p.ID))
	})
}
