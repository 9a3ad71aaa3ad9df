package command

import (
	"context"
	"errors"

	"github.com/viant/appsession/session"
	"github.com/viant/appsession/window"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"go.uber.org/zap"
)

// WidgetUpdater updates the home-screen widget
type WidgetUpdater interface {
	Update(ctx context.Context, todosJSON string, loggedIn bool) error
	Clear(ctx context.Context) error
}

// WindowCloser closes the quick-add window
type WindowCloser interface {
	CloseQuickAdd(ctx context.Context) error
}

// Server represents the command dispatcher shared by all transports
type Server struct {
	sessions   session.Store
	widget     WidgetUpdater
	windows    WindowCloser
	logger     *zap.Logger
	loggerName string

	stdioServerOption []stdio.Option
	httpServer
}

// NewHandler creates a new handler instance. Without a configured window closer,
// the quick-add window is closed by notifying the connected GUI.
func (s *Server) NewHandler(_ context.Context, transport transport.Transport) transport.Handler {
	ret := &Handler{
		Server:    s,
		clientLog: NewClientLog(s.loggerName, transport),
		quickAdd:  s.windows,
	}
	if ret.quickAdd == nil {
		ret.quickAdd = window.NewManager(&windowNotifier{notifier: transport})
	}
	return ret
}

// Stdio returns a JSON-RPC server reading requests from stdin and writing responses to stdout
func (s *Server) Stdio(ctx context.Context) *stdio.Server {
	return stdio.New(ctx, s.NewHandler, s.stdioServerOption...)
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		loggerName: "appsession",
		logger:     zap.NewNop(),
		httpServer: httpServer{addr: defaultAddr, uri: defaultURI},
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.sessions == nil {
		return nil, errors.New("no session store specified")
	}
	return s, nil
}
