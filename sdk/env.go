package sdk

import (
	jwriter "github.com/CosmWasm/tinyjson/jwriter"
)

// Intent mirrors the host's intent entries (like transfer.allow grants).
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

func (o *ContractCallOptions) marshalOptions() ([]byte, error) {
	w := jwriter.Writer{}
	w.RawString(`{"intents":`)
	if o.Intents == nil {
		w.RawString("null")
	} else {
		w.RawByte('[')
		for i, intent := range o.Intents {
			if i > 0 {
				w.RawByte(',')
			}
			intent.MarshalTinyJSON(&w)
		}
		w.RawByte(']')
	}
	w.RawByte('}')
	return w.Buffer.BuildBytes(), w.Error
}

// Env is the flattened execution environment the host hands us as JSON.
// Key names follow the host convention (contract.id, tx.id, block.timestamp...).
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// ParseEnv decodes the raw env JSON blob. Both the wasm and the mock build go
// through this path so the codec gets exercised everywhere.
func ParseEnv(raw string) Env {
	env := Env{}
	if err := env.UnmarshalJSON([]byte(raw)); err != nil {
		Abort("failed to parse env: " + err.Error())
	}
	return env
}
