package contract

import "tidelock_dao/sdk"

// The guard flag lives in contract state so a downstream contract calling back
// into us mid-transfer trips over it. Entry points that move funds wrap their
// body in withGuard; pure state mutations dont need it.

func guardEnter() {
	if flag := sdk.StateGetObject(GuardKey); flag != nil && *flag == "1" {
		sdk.Revert("reentrant call", "reentry")
	}
	sdk.StateSetObject(GuardKey, "1")
}

func guardExit() {
	sdk.StateDeleteObject(GuardKey)
}

// withGuard runs fn between enter/exit. The deferred exit also fires when fn
// reverts, which matters for the mock build where reverts are panics.
func withGuard(fn func() *string) *string {
	guardEnter()
	defer guardExit()
	return fn()
}
