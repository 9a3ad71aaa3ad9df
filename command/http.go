package command

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

const (
	defaultAddr = "127.0.0.1:5000"
	defaultURI  = "/rpc"
)

type httpServer struct {
	addr string
	uri  string
}

// HTTP creates a streamable HTTP server for the command handler; an empty addr uses the configured one
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	mux := http.NewServeMux()
	mux.Handle(s.uri, streamable.New(s.NewHandler, streamable.WithURI(s.uri)))
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
