package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"tidelock_dao/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds a Amount using the int64 path so scaling stays synced.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readAsset rebuilds a ticker via the string path.
func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return AssetFromString(s), nil
}

// ------------------------------------------------------------------
// Struct codecs
// ------------------------------------------------------------------

// EncodeStakerPosition packs a position into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeStakerPosition(&StakerPosition{Address: AddressFromString("hive:alice"), Balance: FloatToAmount(10)})
func EncodeStakerPosition(p *StakerPosition) []byte {
	w := newWriter()
	w.writeAddress(p.Address)
	w.writeAmount(p.Balance)
	w.writeInt64(p.StakeStartTime)
	return w.bytes()
}

// DecodeStakerPosition is handy for tests that need to inspect stored positions quickly.
func DecodeStakerPosition(data []byte) (*StakerPosition, error) {
	r := newReader(data)
	var p StakerPosition
	addr, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Address = AddressFromString(addr)
	if p.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.StakeStartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeStakingTotals serializes the aggregate counters blob.
func EncodeStakingTotals(t *StakingTotals) []byte {
	w := newWriter()
	w.writeAmount(t.TotalStaked)
	w.writeUint64(t.StakerCount)
	return w.bytes()
}

// DecodeStakingTotals reverses the above encoding.
func DecodeStakingTotals(data []byte) (*StakingTotals, error) {
	r := newReader(data)
	var t StakingTotals
	var err error
	if t.TotalStaked, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.StakerCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	return &t, nil
}

// EncodeRewardTokenState keeps the stream fields in fixed order so blobs stay stable.
func EncodeRewardTokenState(rt *RewardTokenState) []byte {
	w := newWriter()
	w.writeAsset(rt.Token)
	w.writeAmount(rt.AvailablePool)
	w.writeAmount(rt.StreamTotal)
	w.writeInt64(rt.StreamStart)
	w.writeInt64(rt.StreamEnd)
	w.writeInt64(rt.LastUpdate)
	return w.bytes()
}

// DecodeRewardTokenState reads back the fields emitted above in exact order.
func DecodeRewardTokenState(data []byte) (*RewardTokenState, error) {
	r := newReader(data)
	var rt RewardTokenState
	var err error
	if rt.Token, err = r.readAsset(); err != nil {
		return nil, err
	}
	if rt.AvailablePool, err = r.readAmount(); err != nil {
		return nil, err
	}
	if rt.StreamTotal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if rt.StreamStart, err = r.readInt64(); err != nil {
		return nil, err
	}
	if rt.StreamEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	if rt.LastUpdate, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &rt, nil
}

// EncodeContractConfig squeezes every config bit into the binary form, kinda verbose but fast.
func EncodeContractConfig(cfg *ContractConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeAsset(cfg.Underlying)
	w.writeString(cfg.TreasuryContract)
	w.writeUint64(cfg.QuorumBps)
	w.writeUint64(cfg.ApprovalBps)
	w.writeUint64(cfg.ProposalWindowSecs)
	w.writeUint64(cfg.VotingWindowSecs)
	w.writeUint64(cfg.StreamWindowSecs)
	w.writeUint64(cfg.MinProposerStakeBps)
	w.writeUint64(cfg.MaxActivePerType)
	w.writeUint64(cfg.MaxRewardTokens)
	w.writeBool(cfg.Paused)
	return w.bytes()
}

// DecodeContractConfig is the inverse of EncodeContractConfig and keeps same field order.
func DecodeContractConfig(data []byte) (*ContractConfig, error) {
	r := newReader(data)
	var cfg ContractConfig
	admin, err := r.readString()
	if err != nil {
		return nil, err
	}
	cfg.Admin = AddressFromString(admin)
	if cfg.Underlying, err = r.readAsset(); err != nil {
		return nil, err
	}
	if cfg.TreasuryContract, err = r.readString(); err != nil {
		return nil, err
	}
	if cfg.QuorumBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.ApprovalBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.ProposalWindowSecs, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.VotingWindowSecs, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.StreamWindowSecs, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.MinProposerStakeBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.MaxActivePerType, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.MaxRewardTokens, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.Paused, err = r.readBool(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EncodeProposal turns a Proposal into bytes so we can persist tallies without json overhead.
// Example payload: EncodeProposal(&Proposal{ID: 3, Type: ProposalTypeTransfer})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.buf.WriteByte(byte(p.Type))
	w.writeAddress(p.Proposer)
	w.writeAsset(p.Token)
	w.writeAmount(p.Amount)
	w.writeAddress(p.Recipient)
	w.writeUint64(p.YesVotes)
	w.writeUint64(p.NoVotes)
	w.writeAmount(p.ParticipationStake)
	w.writeAmount(p.SupplySnapshot)
	w.writeUint64(p.QuorumBpsSnapshot)
	w.writeUint64(p.ApprovalBpsSnapshot)
	w.writeBool(p.Executed)
	w.writeUint64(p.CycleID)
	w.writeInt64(p.CreatedAt)
	return w.bytes()
}

// DecodeProposal lets governance tooling inspect stored proposals with one helper call.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	typeByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Type = ProposalType(typeByte)
	proposer, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Proposer = AddressFromString(proposer)
	if p.Token, err = r.readAsset(); err != nil {
		return nil, err
	}
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	recipient, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Recipient = AddressFromString(recipient)
	if p.YesVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.NoVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ParticipationStake, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.SupplySnapshot, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.QuorumBpsSnapshot, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ApprovalBpsSnapshot, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.CycleID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeVoteReceipt keeps receipts tiny, they are the most numerous record we store.
func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := newWriter()
	w.writeBool(v.Support)
	w.writeUint64(v.Power)
	w.writeAmount(v.Stake)
	w.writeInt64(v.VotedAt)
	return w.bytes()
}

// DecodeVoteReceipt reverses EncodeVoteReceipt.
func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := newReader(data)
	var v VoteReceipt
	var err error
	if v.Support, err = r.readBool(); err != nil {
		return nil, err
	}
	if v.Power, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Stake, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.VotedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeCycle stores window edges plus the member proposal ids.
func EncodeCycle(c *Cycle) []byte {
	w := newWriter()
	w.writeUint64(c.ID)
	w.writeInt64(c.ProposalWindowEnd)
	w.writeInt64(c.VotingWindowEnd)
	w.writeVarUint(uint64(len(c.ProposalIDs)))
	for _, id := range c.ProposalIDs {
		w.writeUint64(id)
	}
	return w.bytes()
}

// DecodeCycle rebuilds a cycle record including its proposal id list.
func DecodeCycle(data []byte) (*Cycle, error) {
	r := newReader(data)
	c := &Cycle{}
	var err error
	if c.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.ProposalWindowEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.VotingWindowEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	c.ProposalIDs = make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := r.readUint64()
		if err != nil {
			return nil, err
		}
		c.ProposalIDs = append(c.ProposalIDs, id)
	}
	return c, nil
}
