package contract

import "tidelock_dao/sdk"

// loadProposal returns nil for unknown ids so callers can choose their symbol.
func loadProposal(id uint64) *Proposal {
	raw := sdk.StateGetObject(proposalKey(id))
	if raw == nil {
		return nil
	}
	p, err := DecodeProposal([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt proposal")
	}
	return p
}

func saveProposal(p *Proposal) {
	sdk.StateSetObject(proposalKey(p.ID), string(EncodeProposal(p)))
}

// loadVoteReceipt is nil when the address has not voted on that proposal yet.
func loadVoteReceipt(proposalID uint64, addr sdk.Address) *VoteReceipt {
	raw := sdk.StateGetObject(voteReceiptKey(proposalID, addr))
	if raw == nil {
		return nil
	}
	v, err := DecodeVoteReceipt([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt vote receipt")
	}
	return v
}

func saveVoteReceipt(proposalID uint64, addr sdk.Address, v *VoteReceipt) {
	sdk.StateSetObject(voteReceiptKey(proposalID, addr), string(EncodeVoteReceipt(v)))
}

// passesThresholds applies the proposal's snapshotted quorum and approval
// rules. Quorum measures raw stake participation against the smaller of the
// creation-time supply and the current one, so mass exits after proposing
// cannot make quorum unreachable.
func passesThresholds(p *Proposal, currentSupply Amount) bool {
	supply := minAmount(p.SupplySnapshot, currentSupply)
	if !quorumReached(p.ParticipationStake, p.QuorumBpsSnapshot, supply) {
		return false
	}
	return approvalReached(p.YesVotes, p.NoVotes, p.ApprovalBpsSnapshot)
}

// cycleWinner picks the passing proposal with the strictly highest yes tally.
// A tie for the top spot means no winner at all.
func cycleWinner(c *Cycle, currentSupply Amount) *Proposal {
	var best *Proposal
	tied := false
	for _, id := range c.ProposalIDs {
		p := loadProposal(id)
		if p == nil || !passesThresholds(p, currentSupply) {
			continue
		}
		if best == nil || p.YesVotes > best.YesVotes {
			best = p
			tied = false
		} else if p.YesVotes == best.YesVotes {
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}
