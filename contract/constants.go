package contract

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// BpsDenominator is the fixed-point base for all basis-point ratios.
const BpsDenominator = 10000

// -----------------------------------------------------------------------------
// Proposal Types
// -----------------------------------------------------------------------------

const (
	ProposalTypeUnspecified ProposalType = 0
	// ProposalTypeTransfer pays treasury funds out to a recipient.
	ProposalTypeTransfer ProposalType = 1
	// ProposalTypeBoost pulls treasury funds into the reward streams.
	ProposalTypeBoost ProposalType = 2
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	FallbackQuorumBps           = 3000
	FallbackApprovalBps         = 5000
	FallbackProposalWindowSecs  = 3 * 86400
	FallbackVotingWindowSecs    = 4 * 86400
	FallbackStreamWindowSecs    = 30 * 86400
	FallbackMinProposerStakeBps = 100
	FallbackMaxActivePerType    = 10
	FallbackMaxRewardTokens     = 16
)

// MaxTickerLength caps reward token tickers so keys stay small.
const MaxTickerLength = 16

// -----------------------------------------------------------------------------
// Counter / Singleton Keys
// -----------------------------------------------------------------------------

const (
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
	// CyclesCount holds an integer counter for governance cycles.
	CyclesCount = "count:cycles"
	// ConfigKey stores the serialized ContractConfig singleton.
	ConfigKey = "cfg:contract"
	// TotalsKey stores the aggregated staking totals.
	TotalsKey = "staking:totals"
	// RegistryKey stores the comma separated reward token tickers.
	RegistryKey = "rt:registry"
	// CurrentCycleKey points at the most recently started cycle id.
	CurrentCycleKey = "cycle:current"
	// GuardKey flags an in-flight external interaction.
	GuardKey = "guard:lock"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kStakerPosition houses encoded StakerPosition structs keyed by address.
	kStakerPosition byte = 0x01
	// kRewardToken stores per-token reward stream state keyed by ticker.
	kRewardToken byte = 0x03
	// kProposal contains encoded Proposal records keyed by id.
	kProposal byte = 0x10
	// kVoteReceipt stores one receipt per proposal+voter pair.
	kVoteReceipt byte = 0x20
	// kCycle stores governance cycle records keyed by id.
	kCycle byte = 0x30
)
