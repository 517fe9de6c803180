package contract

import (
	"strconv"
	"strings"

	"tidelock_dao/sdk"
)

// loadConfig reverts when the contract was never initialized, every entry
// point except contract_init goes through here first.
func loadConfig() *ContractConfig {
	raw := sdk.StateGetObject(ConfigKey)
	if raw == nil {
		sdk.Revert("contract not initialized", "not_initialized")
	}
	cfg, err := DecodeContractConfig([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

func saveConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ConfigKey, string(EncodeContractConfig(cfg)))
}

// requireAdmin reverts unless the tx sender matches the configured admin.
func requireAdmin(cfg *ContractConfig) {
	if getSenderAddress() != cfg.Admin {
		sdk.Revert("admin only", "auth_error")
	}
}

// requireNotPaused gates deposits and proposal creation while paused. Exits
// and claims keep working so a pause can never trap funds.
func requireNotPaused(cfg *ContractConfig) {
	if cfg.Paused {
		sdk.Revert("contract paused", "state_error")
	}
}

func validateBps(v uint64, field string) {
	if v > BpsDenominator {
		sdk.Revert("invalid "+field, "config_error")
	}
}

// ContractInit sets up config, totals and the reward token registry. The
// underlying staking token is whitelisted as a reward token right away so
// donations in it can be streamed too.
// Example payload: "hive:admin|hive|contract:treasury|3000|5000|259200|345600|2592000|100|10|16"
func ContractInit(payload *string) *string {
	if sdk.StateGetObject(ConfigKey) != nil {
		sdk.Revert("already initialized", "state_error")
	}
	raw := unwrapPayload(payload, "init payload missing")
	parts := splitPayload(raw, 3, "init payload requires admin|underlying|treasury")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	cfg := &ContractConfig{
		Admin:               parseAddressField(get(0), "admin address"),
		Underlying:          parseTickerField(get(1), "underlying token"),
		TreasuryContract:    strings.TrimSpace(get(2)),
		QuorumBps:           FallbackQuorumBps,
		ApprovalBps:         FallbackApprovalBps,
		ProposalWindowSecs:  FallbackProposalWindowSecs,
		VotingWindowSecs:    FallbackVotingWindowSecs,
		StreamWindowSecs:    FallbackStreamWindowSecs,
		MinProposerStakeBps: FallbackMinProposerStakeBps,
		MaxActivePerType:    FallbackMaxActivePerType,
		MaxRewardTokens:     FallbackMaxRewardTokens,
	}
	if cfg.TreasuryContract == "" {
		sdk.Revert("treasury contract required", "config_error")
	}
	if v := strings.TrimSpace(get(3)); v != "" {
		cfg.QuorumBps = parseUintField(v, "quorum bps")
	}
	if v := strings.TrimSpace(get(4)); v != "" {
		cfg.ApprovalBps = parseUintField(v, "approval bps")
	}
	if v := strings.TrimSpace(get(5)); v != "" {
		cfg.ProposalWindowSecs = parseUintField(v, "proposal window")
	}
	if v := strings.TrimSpace(get(6)); v != "" {
		cfg.VotingWindowSecs = parseUintField(v, "voting window")
	}
	if v := strings.TrimSpace(get(7)); v != "" {
		cfg.StreamWindowSecs = parseUintField(v, "stream window")
	}
	if v := strings.TrimSpace(get(8)); v != "" {
		cfg.MinProposerStakeBps = parseUintField(v, "min proposer stake bps")
	}
	if v := strings.TrimSpace(get(9)); v != "" {
		cfg.MaxActivePerType = parseUintField(v, "max active per type")
	}
	if v := strings.TrimSpace(get(10)); v != "" {
		cfg.MaxRewardTokens = parseUintField(v, "max reward tokens")
	}
	validateBps(cfg.QuorumBps, "quorum bps")
	validateBps(cfg.ApprovalBps, "approval bps")
	validateBps(cfg.MinProposerStakeBps, "min proposer stake bps")
	if cfg.ProposalWindowSecs == 0 || cfg.VotingWindowSecs == 0 || cfg.StreamWindowSecs == 0 {
		sdk.Revert("windows must be positive", "config_error")
	}

	saveConfig(cfg)
	saveStakingTotals(&StakingTotals{})
	saveTokenRegistry([]sdk.Asset{cfg.Underlying})
	saveRewardTokenState(&RewardTokenState{Token: cfg.Underlying, LastUpdate: blockNow()})
	emitTokenWhitelistedEvent(AssetToString(cfg.Underlying), AddressToString(cfg.Admin))
	return strptr("initialized")
}

// ConfigUpdate lets the admin tune parameters via key=value pairs.
// The underlying token is fixed for the contract's lifetime.
// Example payload: "quorum_bps=2500;voting_window=172800"
func ConfigUpdate(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	raw := unwrapPayload(payload, "config payload missing")
	pairs := strings.Split(raw, ";")
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		split := strings.SplitN(pair, "=", 2)
		if len(split) != 2 {
			sdk.Abort("invalid config entry (use key=value)")
		}
		key := strings.TrimSpace(split[0])
		value := strings.TrimSpace(split[1])
		applyConfigField(cfg, key, value)
	}
	saveConfig(cfg)
	return strptr("updated")
}

func applyConfigField(cfg *ContractConfig, key string, value string) {
	switch key {
	case "admin":
		old := AddressToString(cfg.Admin)
		cfg.Admin = parseAddressField(value, "admin address")
		emitConfigUpdatedEvent(key, old, value)
	case "treasury":
		if value == "" {
			sdk.Revert("treasury contract required", "config_error")
		}
		emitConfigUpdatedEvent(key, cfg.TreasuryContract, value)
		cfg.TreasuryContract = value
	case "quorum_bps":
		n := parseUintField(value, "quorum bps")
		validateBps(n, "quorum bps")
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.QuorumBps, 10), value)
		cfg.QuorumBps = n
	case "approval_bps":
		n := parseUintField(value, "approval bps")
		validateBps(n, "approval bps")
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.ApprovalBps, 10), value)
		cfg.ApprovalBps = n
	case "min_proposer_stake_bps":
		n := parseUintField(value, "min proposer stake bps")
		validateBps(n, "min proposer stake bps")
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.MinProposerStakeBps, 10), value)
		cfg.MinProposerStakeBps = n
	case "proposal_window":
		n := parseUintField(value, "proposal window")
		if n == 0 {
			sdk.Revert("proposal window must be positive", "config_error")
		}
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.ProposalWindowSecs, 10), value)
		cfg.ProposalWindowSecs = n
	case "voting_window":
		n := parseUintField(value, "voting window")
		if n == 0 {
			sdk.Revert("voting window must be positive", "config_error")
		}
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.VotingWindowSecs, 10), value)
		cfg.VotingWindowSecs = n
	case "stream_window":
		n := parseUintField(value, "stream window")
		if n == 0 {
			sdk.Revert("stream window must be positive", "config_error")
		}
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.StreamWindowSecs, 10), value)
		cfg.StreamWindowSecs = n
	case "max_active_per_type":
		n := parseUintField(value, "max active per type")
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.MaxActivePerType, 10), value)
		cfg.MaxActivePerType = n
	case "max_reward_tokens":
		n := parseUintField(value, "max reward tokens")
		emitConfigUpdatedEvent(key, strconv.FormatUint(cfg.MaxRewardTokens, 10), value)
		cfg.MaxRewardTokens = n
	default:
		sdk.Revert("unknown config field: "+key, "config_error")
	}
}

// PauseSet flips the pause flag. Only deposits and proposal creation honor it.
// Example payload: "true"
func PauseSet(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	raw := unwrapPayload(payload, "pause payload missing")
	paused := parseBoolField(raw)
	cfg.Paused = paused
	saveConfig(cfg)
	emitPauseSetEvent(paused, AddressToString(getSenderAddress()))
	return strptr("paused:" + strconv.FormatBool(paused))
}
