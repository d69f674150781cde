package criticd

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/critiqhq/critic/comm"
	"github.com/critiqhq/critic/syncer"
)

type RequestHandler func(rc *RequestContext) (interface{}, error)

type Router struct {
	Handlers map[string]RequestHandler

	Version       string
	VersionString string

	secret string
	syncer *syncer.Syncer

	authLock  sync.Mutex
	authConns map[*jsonrpc2.Conn]bool
}

func NewRouter(secret string, sync *syncer.Syncer) *Router {
	return &Router{
		Handlers: make(map[string]RequestHandler),

		secret:    secret,
		syncer:    sync,
		authConns: make(map[*jsonrpc2.Conn]bool),
	}
}

func (r *Router) Register(method string, rh RequestHandler) {
	if _, ok := r.Handlers[method]; ok {
		panic(fmt.Sprintf("Can't register handler twice for %s", method))
	}
	r.Handlers[method] = rh
}

func (r *Router) Logf(format string, args ...interface{}) {
	comm.Logf(format, args...)
}

func (r *Router) authenticated(conn *jsonrpc2.Conn) bool {
	r.authLock.Lock()
	defer r.authLock.Unlock()
	return r.authConns[conn]
}

func (r *Router) markAuthenticated(conn *jsonrpc2.Conn) {
	r.authLock.Lock()
	defer r.authLock.Unlock()
	r.authConns[conn] = true
}

func (r *Router) forget(conn *jsonrpc2.Conn) {
	r.authLock.Lock()
	defer r.authLock.Unlock()
	delete(r.authConns, conn)
}

func (r *Router) Dispatch(ctx context.Context, origConn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		// we don't accept notifications from clients
		return
	}

	method := req.Method
	var res interface{}

	err := func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				if pErr, ok := p.(error); ok {
					err = errors.WithStack(pErr)
				} else {
					err = errors.Errorf("panic: %v", p)
				}
			}
		}()

		// the secret gates every method but the handshake itself
		if method != "Meta.Authenticate" && !r.authenticated(origConn) {
			return errors.WithStack(CodeSecretRequired)
		}

		rc := &RequestContext{
			Ctx:    ctx,
			Conn:   origConn,
			Params: req.Params,
			Syncer: r.syncer,
			Router: r,
		}

		if h, ok := r.Handlers[method]; ok {
			res, err = h(rc)
		} else {
			err = &RpcError{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: fmt.Sprintf("Method '%s' not found", method),
			}
		}
		return
	}()

	if err == nil {
		err = origConn.Reply(ctx, req.ID, res)
		if err != nil {
			r.Logf("Error while replying: %s", err.Error())
		}
		return
	}

	rpcErr := asJsonRpc2Error(err)

	data := map[string]interface{}{
		"stack":         fmt.Sprintf("%+v", err),
		"criticVersion": r.VersionString,
	}
	if marshalled, marshalErr := json.Marshal(data); marshalErr == nil {
		raw := json.RawMessage(marshalled)
		rpcErr.Data = &raw
	}

	replyErr := origConn.ReplyWithError(ctx, req.ID, rpcErr)
	if replyErr != nil {
		r.Logf("Error while replying with error: %s", replyErr.Error())
	}
}

type RequestContext struct {
	Ctx    context.Context
	Conn   *jsonrpc2.Conn
	Params *json.RawMessage
	Syncer *syncer.Syncer
	Router *Router
}

func (rc *RequestContext) Notify(method string, params interface{}) error {
	return rc.Conn.Notify(rc.Ctx, method, params)
}

// withParams decodes and validates request params before handing them
// to the handler body.
func withParams(rc *RequestContext, params interface {
	Validate() error
}, do func() (interface{}, error)) (interface{}, error) {
	if rc.Params != nil {
		err := json.Unmarshal(*rc.Params, params)
		if err != nil {
			return nil, &RpcError{
				Code:    jsonrpc2.CodeParseError,
				Message: err.Error(),
			}
		}
	}

	err := params.Validate()
	if err != nil {
		return nil, &RpcError{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: err.Error(),
		}
	}

	return do()
}
