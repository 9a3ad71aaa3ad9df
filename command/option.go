package command

import (
	"errors"

	"github.com/viant/appsession/session"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"go.uber.org/zap"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithSessionStore sets the session store.
func WithSessionStore(store session.Store) Option {
	return func(s *Server) error {
		if store == nil {
			return errors.New("session store was nil")
		}
		s.sessions = store
		return nil
	}
}

// WithWidget sets the widget updater.
func WithWidget(widget WidgetUpdater) Option {
	return func(s *Server) error {
		s.widget = widget
		return nil
	}
}

// WithWindows sets the window closer.
func WithWindows(windows WindowCloser) Option {
	return func(s *Server) error {
		s.windows = windows
		return nil
	}
}

// WithLogger sets the process logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithLoggerName sets the name used in client log notifications.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithStdioOptions sets stdio transport options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}

// WithHTTP sets the default HTTP address and endpoint URI; empty values keep the defaults.
func WithHTTP(addr, uri string) Option {
	return func(s *Server) error {
		if addr != "" {
			s.addr = addr
		}
		if uri != "" {
			s.uri = uri
		}
		return nil
	}
}
