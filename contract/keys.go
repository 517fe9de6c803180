package contract

import "tidelock_dao/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// stakerKey mixes the prefix with the address bytes, no nested maps in host storage.
func stakerKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kStakerPosition)
	buf = append(buf, addrStr...)
	return string(buf)
}

// rewardTokenKey scopes stream state per ticker under 0x03.
func rewardTokenKey(token sdk.Asset) string {
	ticker := AssetToString(token)
	buf := make([]byte, 0, 1+len(ticker))
	buf = append(buf, kRewardToken)
	buf = append(buf, ticker...)
	return string(buf)
}

// proposalKey builds a storage key string for a proposal by ID.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteReceiptKey joins proposal id and voter address so double votes are a plain key hit.
func voteReceiptKey(proposalID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(proposalID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// cycleKey builds a storage key string for a cycle by ID.
func cycleKey(id uint64) string {
	var buf [9]byte
	buf[0] = kCycle
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
