package sdk

// Asset is a ledger token ticker. The protocol treats tickers as opaque
// identifiers; which one is the underlying staking token is contract config.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}
