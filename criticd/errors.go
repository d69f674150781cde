package criticd

import (
	"fmt"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/pkg/errors"
	"github.com/sourcegraph/jsonrpc2"
)

// Error is what handlers return to clients: an error with an RPC
// code and optional structured data
type Error interface {
	error
	RpcErrorCode() int64
	RpcErrorMessage() string
	RpcErrorData() map[string]interface{}
}

type RpcError struct {
	Code    int64
	Message string
}

var _ Error = (*RpcError)(nil)

func (re *RpcError) RpcErrorCode() int64 {
	return re.Code
}

func (re *RpcError) RpcErrorMessage() string {
	return re.Message
}

func (re *RpcError) RpcErrorData() map[string]interface{} {
	return nil
}

func (re *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", re.Code, re.Message)
}

// asJsonRpc2Error maps any handler failure onto the wire. API errors
// keep their HTTP status as the code so UI clients can tell a 401
// from a 500; everything else is an internal error.
func asJsonRpc2Error(err error) *jsonrpc2.Error {
	if ae, ok := critiqapi.AsAPIError(err); ok {
		return &jsonrpc2.Error{
			Code:    int64(ae.StatusCode),
			Message: ae.Message,
		}
	}

	cause := errors.Cause(err)
	if de, ok := cause.(Error); ok {
		return &jsonrpc2.Error{
			Code:    de.RpcErrorCode(),
			Message: de.RpcErrorMessage(),
		}
	}

	return &jsonrpc2.Error{
		Code:    jsonrpc2.CodeInternalError,
		Message: err.Error(),
	}
}
