package backend

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/viant/afs"
	"github.com/viant/appsession/command"
	"github.com/viant/appsession/internal/appdir"
	"github.com/viant/appsession/internal/logging"
	"github.com/viant/appsession/session"
	"github.com/viant/appsession/widget"
	"go.uber.org/zap"
)

// Service holds the components behind the command surface
type Service struct {
	Options  *Options
	Logger   *zap.Logger
	Sessions *session.FileStore
	Widget   *widget.Bridge
	Server   *command.Server
}

// Describe writes a summary of the stored session
func (s *Service) Describe(ctx context.Context, w io.Writer) error {
	stored, err := s.Sessions.Get(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		_, err = fmt.Fprintln(w, "no session")
		return err
	}
	if _, err = fmt.Fprintf(w, "user_id: %v\n", stored.UserID); err != nil {
		return err
	}
	claims, err := stored.Claims()
	if err != nil || claims.ExpiresAt.IsZero() {
		return nil
	}
	_, err = fmt.Fprintf(w, "access token expires: %v\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	return err
}

// Serve runs the command server until the transport closes.
// The quick-add window is closed by notifying the GUI client.
func (s *Service) Serve(ctx context.Context) error {
	defer func() {
		if err := s.Widget.Close(); err != nil {
			s.Logger.Warn("failed to close widget shell", zap.Error(err))
		}
	}()
	if s.Options.HTTPAddr != "" {
		s.Logger.Info("serving commands over http", zap.String("addr", s.Options.HTTPAddr))
		return s.Server.HTTP(ctx, s.Options.HTTPAddr).ListenAndServe()
	}
	s.Logger.Info("serving commands over stdio")
	return s.Server.Stdio(ctx).ListenAndServe()
}

// New creates a service for the options
func New(ctx context.Context, options *Options) (*Service, error) {
	logger, err := logging.New(logging.Config{Level: options.LogLevel, Development: options.Development})
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", options.LogLevel, err)
	}
	dataDir := options.DataDir
	if dataDir == "" {
		if dataDir, err = appdir.Resolve(options.Identifier); err != nil {
			return nil, err
		}
	}
	fs := afs.New()
	ret := &Service{
		Options:  options,
		Logger:   logger,
		Sessions: session.NewFileStore(dataDir, session.WithFS(fs), session.WithLogger(logger.Named("session"))),
	}
	widgetOptions := []widget.Option{widget.WithPackage(options.Identifier), widget.WithFS(fs), widget.WithLogger(logger.Named("widget"))}
	if options.WidgetDir != "" {
		widgetOptions = append(widgetOptions, widget.WithDir(options.WidgetDir))
	}
	ret.Widget = widget.New(widgetOptions...)
	ret.Server, err = command.New(
		command.WithSessionStore(ret.Sessions),
		command.WithWidget(ret.Widget),
		command.WithLogger(logger.Named("command")),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("service created", zap.String("data", dataDir), zap.Bool("widget", ret.Widget.Enabled()))
	return ret, nil
}
