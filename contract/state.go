package contract

import (
	"strconv"

	"tidelock_dao/sdk"
)

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// readCounter loads a decimal counter, missing keys count as zero.
func readCounter(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt counter: " + key)
	}
	return n
}

// nextID bumps a counter and returns the fresh id, ids start at 1.
func nextID(key string) uint64 {
	n := readCounter(key) + 1
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
	return n
}
