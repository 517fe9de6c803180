package contract

import (
	"strconv"

	"tidelock_dao/sdk"
)

// loadCycle returns nil for unknown ids.
func loadCycle(id uint64) *Cycle {
	raw := sdk.StateGetObject(cycleKey(id))
	if raw == nil {
		return nil
	}
	c, err := DecodeCycle([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt cycle")
	}
	return c
}

func saveCycle(c *Cycle) {
	sdk.StateSetObject(cycleKey(c.ID), string(EncodeCycle(c)))
}

// currentCycle resolves the pointer key, nil before the first cycle_start.
func currentCycle() *Cycle {
	raw := sdk.StateGetObject(CurrentCycleKey)
	if raw == nil {
		return nil
	}
	id, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt cycle pointer")
	}
	return loadCycle(id)
}

func setCurrentCycle(id uint64) {
	sdk.StateSetObject(CurrentCycleKey, strconv.FormatUint(id, 10))
}

// inProposalWindow gates proposal creation to the first phase of the cycle.
func (c *Cycle) inProposalWindow(now int64) bool {
	return now < c.ProposalWindowEnd
}

// inVotingWindow gates votes to the second phase.
func (c *Cycle) inVotingWindow(now int64) bool {
	return now >= c.ProposalWindowEnd && now < c.VotingWindowEnd
}

// finished means execution and the next cycle_start are both allowed.
func (c *Cycle) finished(now int64) bool {
	return now >= c.VotingWindowEnd
}
