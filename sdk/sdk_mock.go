//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
	"strings"
)

// In-memory stand-in for the wasm host so contract logic runs under plain
// go test. State, balances and env plumbing behave like the chain; reverts
// and aborts surface as typed panics the tests can catch.

// ContractId is the well-known id the mock ledger books contract funds under.
const ContractId = "contract:tidelock"

// ContractCallHandler scripts the downstream contract for tests. Returning a
// string starting with "err:" simulates a failed call.
type ContractCallHandler func(contractId string, method string, payload string, options *ContractCallOptions) string

type mockHost struct {
	state     map[string]string
	balances  map[string]int64
	logs      []string
	sender    Address
	intents   []Intent
	timestamp int64
	txSeq     uint64
	feeBps    int64
	onCall    ContractCallHandler
	calls     []string
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:     map[string]string{},
		balances:  map[string]int64{},
		sender:    Address("hive:tester"),
		timestamp: 1_700_000_000,
		txSeq:     1,
	}
}

// MockReset wipes all host state between tests.
func MockReset() {
	host = newMockHost()
}

func balKey(addr string, asset Asset) string {
	return addr + "/" + asset.String()
}

// MockSetSender switches the calling account for subsequent operations.
func MockSetSender(addr string) {
	host.sender = Address(addr)
	host.txSeq++
}

// MockSetTimestamp pins block time to the given unix seconds.
func MockSetTimestamp(unixSecs int64) {
	host.timestamp = unixSecs
	host.txSeq++
}

// MockAdvanceTime moves block time forward by delta seconds.
func MockAdvanceTime(deltaSecs int64) {
	host.timestamp += deltaSecs
	host.txSeq++
}

// MockNow returns the pinned block time.
func MockNow() int64 {
	return host.timestamp
}

// MockSetIntents installs the intents (like transfer.allow) for the next calls.
func MockSetIntents(intents []Intent) {
	host.intents = intents
	host.txSeq++
}

// MockSetBalance books a ledger balance for an account+asset pair.
func MockSetBalance(addr string, asset Asset, amount int64) {
	host.balances[balKey(addr, asset)] = amount
}

// MockBalance reads a booked ledger balance.
func MockBalance(addr string, asset Asset) int64 {
	return host.balances[balKey(addr, asset)]
}

// MockSetTransferFeeBps makes HiveDraw shave a fee off incoming transfers,
// simulating fee-on-transfer tokens.
func MockSetTransferFeeBps(bps int64) {
	host.feeBps = bps
}

// MockOnContractCall scripts how downstream contract calls behave.
func MockOnContractCall(h ContractCallHandler) {
	host.onCall = h
}

// MockContractCalls returns the recorded outbound calls as
// "contractId|method|payload" strings.
func MockContractCalls() []string {
	return host.calls
}

// MockLogs returns everything the contract logged so far.
func MockLogs() []string {
	return host.logs
}

// MockLastLog returns the most recent log line, or "" when none.
func MockLastLog() string {
	if len(host.logs) == 0 {
		return ""
	}
	return host.logs[len(host.logs)-1]
}

func Log(s string) {
	host.logs = append(host.logs, s)
}

func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func StateSetObject(key string, value string) {
	host.state[key] = value
}

func StateGetObject(key string) *string {
	v, ok := host.state[key]
	if !ok {
		return nil
	}
	return &v
}

func StateDeleteObject(key string) {
	delete(host.state, key)
}

// GetEnv builds the env JSON the way the host would and decodes it through
// ParseEnv, so the tinyjson codec runs in tests too.
func GetEnv() Env {
	env := Env{
		ContractId:  ContractId,
		TxId:        fmt.Sprintf("mock-tx-%d", host.txSeq),
		Index:       0,
		OpIndex:     0,
		BlockId:     "mock-block",
		BlockHeight: 1,
		Timestamp:   strconv.FormatInt(host.timestamp, 10),
		Sender: Sender{
			Address:       host.sender,
			RequiredAuths: []Address{host.sender},
		},
		Intents: host.intents,
	}
	raw, err := env.MarshalJSON()
	if err != nil {
		panic(err)
	}
	return ParseEnv(string(raw))
}

func GetEnvKey(key string) *string {
	env := GetEnv()
	var v string
	switch key {
	case "contract.id":
		v = env.ContractId
	case "tx.id":
		v = env.TxId
	case "block.timestamp":
		v = env.Timestamp
	case "msg.sender":
		v = env.Sender.Address.String()
	default:
		return nil
	}
	return &v
}

func GetBalance(address Address, asset Asset) int64 {
	return host.balances[balKey(address.String(), asset)]
}

// HiveDraw moves funds from the current sender into the contract, minus the
// configured transfer fee. Panics with a revert when the sender is short.
func HiveDraw(amount int64, asset Asset) {
	from := balKey(host.sender.String(), asset)
	if host.balances[from] < amount {
		Revert("insufficient ledger balance", "balance_error")
	}
	received := amount - amount*host.feeBps/10000
	host.balances[from] -= amount
	host.balances[balKey(ContractId, asset)] += received
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	from := balKey(ContractId, asset)
	if host.balances[from] < amount {
		Revert("insufficient contract balance", "balance_error")
	}
	host.balances[from] -= amount
	host.balances[balKey(to.String(), asset)] += amount
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	host.calls = append(host.calls, strings.Join([]string{contractId, method, payload}, "|"))
	if host.onCall == nil {
		res := "ok"
		return &res
	}
	res := host.onCall(contractId, method, payload, options)
	return &res
}
