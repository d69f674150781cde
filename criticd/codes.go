package criticd

import "fmt"

// Code is a daemon-specific error code, sent to RPC clients
type Code int64

const (
	// The connection hasn't presented the daemon secret yet
	CodeSecretRequired Code = 400001
	// The operation needs an authenticated session
	CodeNotAuthenticated Code = 400002
	// The request was superseded by a newer one for the same collection
	CodeStaleRequest Code = 400003
)

var _ Error = Code(0)

var codeMessages = map[Code]string{
	CodeSecretRequired:   "Connection is not authenticated with the daemon secret.",
	CodeNotAuthenticated: "This operation requires a logged-in session.",
	CodeStaleRequest:     "The request was superseded by a newer one.",
}

func (code Code) RpcErrorMessage() string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("criticd error %d", code)
}

func (code Code) RpcErrorCode() int64 {
	return int64(code)
}

func (code Code) RpcErrorData() map[string]interface{} {
	return nil
}

func (code Code) Error() string {
	return code.RpcErrorMessage()
}

func (code Code) String() string {
	return fmt.Sprintf("criticd error: %s", code.Error())
}
