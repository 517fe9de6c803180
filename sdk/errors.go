package sdk

// RevertError is what the host-less build panics with on sdk.Revert so tests
// can assert the exact failure symbol. The wasm build never constructs one;
// there the host revert import terminates execution.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// AbortError is the mock-side counterpart for sdk.Abort.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string {
	return e.Msg
}
