package contract

import (
	"fmt"
	"strconv"
	"strings"

	"tidelock_dao/sdk"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// optionalPayload is the lenient variant for views that accept empty input.
func optionalPayload(payload *string) string {
	if payload == nil {
		return ""
	}
	raw := strings.TrimSpace(*payload)
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	return raw
}

// parseFloatField trims the input and aborts with a friendly field name on errors.
func parseFloatField(val string, field string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return -1
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return f
}

// parseUintField is the uint variant used for durations and ids.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// parseAmountField converts a human float payload field into scaled units,
// reverting instead of aborting so callers get a symbol they can match on.
func parseAmountField(val string, field string) Amount {
	f := parseFloatField(val, field)
	amt := FloatToAmount(f)
	if amt <= 0 {
		sdk.Revert(fmt.Sprintf("%s must be positive", field), "input_error")
	}
	return amt
}

// parseTickerField normalizes an asset ticker and bounds its length.
func parseTickerField(val string, field string) sdk.Asset {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "" || len(val) > MaxTickerLength {
		sdk.Revert(fmt.Sprintf("invalid %s", field), "input_error")
	}
	return AssetFromString(val)
}

// parseAddressField rejects empty or malformed addresses before they hit state keys.
func parseAddressField(val string, field string) sdk.Address {
	addr := AddressFromString(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Revert(fmt.Sprintf("invalid %s", field), "input_error")
	}
	return addr
}

// splitPayload splits on pipes and pads missing trailing fields with "".
func splitPayload(raw string, minParts int, usage string) []string {
	parts := strings.Split(raw, "|")
	if len(parts) < minParts {
		sdk.Abort(usage)
	}
	return parts
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }
