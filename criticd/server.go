// Package criticd serves the data layer to view-layer clients over
// JSON-RPC 2.0: one store, one syncer, any number of connected UIs.
// Connections authenticate with a per-run secret before anything
// else; after that every store change is pushed to them as a
// State.Changed notification.
package criticd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/critiqhq/critic/shelf"
)

type Server struct {
	secret string
}

func NewServer(secret string) *Server {
	return &Server{secret: secret}
}

type ServeTCPParams struct {
	Router   *Router
	Listener net.Listener

	// KeepAlive keeps accepting new connections after the first one
	// disconnects
	KeepAlive bool
}

func (s *Server) ServeTCP(ctx context.Context, params ServeTCPParams) error {
	if params.KeepAlive {
		return s.serveTCPKeepAlive(ctx, params)
	}
	return s.serveTCPClose(ctx, params)
}

func (s *Server) serveTCPClose(ctx context.Context, params ServeTCPParams) error {
	tcpConn, err := params.Listener.Accept()
	if err != nil {
		return err
	}

	return s.handleTCPConn(ctx, params, tcpConn)
}

func (s *Server) serveTCPKeepAlive(ctx context.Context, params ServeTCPParams) error {
	var wg sync.WaitGroup
	conns := make(chan net.Conn)
	go func() {
		for {
			tcpConn, err := params.Listener.Accept()
			if err != nil {
				log.Printf("While accepting connection: %+v", err)
				return
			}
			conns <- tcpConn
		}
	}()

	for {
		select {
		case tcpConn := <-conns:
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.handleTCPConn(ctx, params, tcpConn)
				if err != nil {
					log.Printf("While handling TCP connection: %+v", err)
				}
			}()
		case <-ctx.Done():
			err := params.Listener.Close()
			if err != nil {
				log.Printf("While closing TCP listener: %+v", err)
			}
			wg.Wait()
			return nil
		}
	}
}

func (s *Server) handleTCPConn(parentCtx context.Context, params ServeTCPParams, tcpConn net.Conn) error {
	return s.serveStream(parentCtx, params.Router, tcpConn)
}

// ServeStdio drives a single client over stdin/stdout. The secret
// handshake still applies: a parent process that spawned us knows it
// from our listen notification.
func (s *Server) ServeStdio(ctx context.Context, router *Router, rwc io.ReadWriteCloser) error {
	return s.serveStream(ctx, router, rwc)
}

func (s *Server) serveStream(parentCtx context.Context, router *Router, rwc io.ReadWriteCloser) error {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	stream := jsonrpc2.NewBufferedStream(rwc, LFObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, &routerHandler{router})

	// push store changes to this client once it holds the secret
	unsubscribe := router.syncer.Store().Subscribe(func(st shelf.State) {
		if !router.authenticated(conn) {
			return
		}
		err := conn.Notify(ctx, "State.Changed", &StateChangedNotification{
			State: snapshot(st),
		})
		if err != nil {
			router.Logf("Could not notify client of state change: %s", err.Error())
		}
	})
	defer unsubscribe()
	defer router.forget(conn)

	<-conn.DisconnectNotify()
	return nil
}

type routerHandler struct {
	router *Router
}

var _ jsonrpc2.Handler = (*routerHandler)(nil)

func (rh *routerHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	go rh.router.Dispatch(ctx, conn, req)
}

// LFObjectCodec frames each JSON-RPC message as a single
// newline-terminated line
type LFObjectCodec struct{}

var separator = []byte("\n")

func (LFObjectCodec) WriteObject(stream io.Writer, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	if _, err := stream.Write(data); err != nil {
		return err
	}
	if _, err := stream.Write(separator); err != nil {
		return err
	}
	return nil
}

func (LFObjectCodec) ReadObject(stream *bufio.Reader, v interface{}) error {
	var buf bytes.Buffer

scanLoop:
	for {
		b, err := stream.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case '\n':
			break scanLoop
		default:
			buf.WriteByte(b)
		}
	}

	return json.Unmarshal(buf.Bytes(), v)
}
