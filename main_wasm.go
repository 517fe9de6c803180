//go:build wasm

package main

import "tidelock_dao/contract"

func main() {

}

// -----------------------------------------------------------------------------
// Export surface
// The host dispatches by export name; each wrapper stays one line so all
// behavior lives in the contract package where the tests can reach it.
// -----------------------------------------------------------------------------

//go:wasmexport contract_init
func contractInit(payload *string) *string { return contract.ContractInit(payload) }

//go:wasmexport stake
func stake(payload *string) *string { return contract.Stake(payload) }

//go:wasmexport unstake
func unstake(payload *string) *string { return contract.Unstake(payload) }

//go:wasmexport claim_rewards
func claimRewards(payload *string) *string { return contract.ClaimRewards(payload) }

//go:wasmexport accrue_rewards
func accrueRewards(payload *string) *string { return contract.AccrueRewards(payload) }

//go:wasmexport whitelist_token
func whitelistToken(payload *string) *string { return contract.WhitelistToken(payload) }

//go:wasmexport cleanup_reward_token
func cleanupRewardToken(payload *string) *string { return contract.CleanupRewardToken(payload) }

//go:wasmexport voting_power
func votingPower(payload *string) *string { return contract.VotingPower(payload) }

//go:wasmexport outstanding_rewards
func outstandingRewards(payload *string) *string { return contract.OutstandingRewards(payload) }

//go:wasmexport staker_get
func stakerGet(payload *string) *string { return contract.StakerGet(payload) }

//go:wasmexport reward_token_get
func rewardTokenGet(payload *string) *string { return contract.RewardTokenGet(payload) }

//go:wasmexport propose_transfer
func proposeTransfer(payload *string) *string { return contract.ProposeTransfer(payload) }

//go:wasmexport propose_boost
func proposeBoost(payload *string) *string { return contract.ProposeBoost(payload) }

//go:wasmexport proposal_vote
func proposalVote(payload *string) *string { return contract.VoteProposal(payload) }

//go:wasmexport proposal_execute
func proposalExecute(payload *string) *string { return contract.ExecuteProposal(payload) }

//go:wasmexport proposal_get
func proposalGet(payload *string) *string { return contract.ProposalGet(payload) }

//go:wasmexport cycle_start
func cycleStart(payload *string) *string { return contract.CycleStart(payload) }

//go:wasmexport cycle_get
func cycleGet(payload *string) *string { return contract.CycleGet(payload) }

//go:wasmexport config_update
func configUpdate(payload *string) *string { return contract.ConfigUpdate(payload) }

//go:wasmexport pause_set
func pauseSet(payload *string) *string { return contract.PauseSet(payload) }
