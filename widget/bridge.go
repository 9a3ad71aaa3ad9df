package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
)

const (
	// DataFile is the file read by the widget provider
	DataFile = "widget_data.json"
	// DefaultPackage is the application package of the widget provider
	DefaultPackage = "com.hasu.todo"
	updateAction   = "android.appwidget.action.APPWIDGET_UPDATE"
	provider       = ".TodoWidgetProvider"
)

// ErrInvalidTodos is returned when the todos payload is not a JSON array
var ErrInvalidTodos = errors.New("widget: todos must be a JSON array")

type payload struct {
	Todos      json.RawMessage `json:"todos"`
	IsLoggedIn bool            `json:"is_logged_in"`
}

// Bridge writes widget data and triggers the widget refresh
type Bridge struct {
	mu      sync.Mutex
	dirURL  string
	pkg     string
	enabled bool
	runner  Runner
	fs      afs.Service
	logger  *zap.Logger
}

// Enabled reports whether updates reach the widget
func (b *Bridge) Enabled() bool {
	return b.enabled
}

// Location returns the widget data file URL
func (b *Bridge) Location() string {
	return url.Join(b.dirURL, DataFile)
}

// Update replaces the widget data with todosJSON and the login flag, then broadcasts a refresh.
// A failed broadcast is logged; the written data is picked up on the next widget refresh.
func (b *Bridge) Update(ctx context.Context, todosJSON string, loggedIn bool) error {
	if !b.enabled {
		return nil
	}
	data, err := encodePayload(todosJSON, loggedIn)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	location := b.Location()
	if err = b.fs.Upload(ctx, location, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %v: %w", location, err)
	}
	b.logger.Debug("widget data written", zap.String("path", location), zap.Int("bytes", len(data)))
	b.broadcast(ctx)
	return nil
}

// Clear resets the widget to the logged out, empty state
func (b *Bridge) Clear(ctx context.Context) error {
	return b.Update(ctx, "[]", false)
}

func (b *Bridge) broadcast(ctx context.Context) {
	if b.runner == nil {
		runner, err := NewShellRunner(ctx)
		if err != nil {
			b.logger.Warn("failed to start shell for widget broadcast", zap.Error(err))
			return
		}
		b.runner = runner
	}
	command := BroadcastCommand(b.pkg)
	output, code, err := b.runner.Run(ctx, command)
	if err != nil {
		b.logger.Warn("failed to broadcast widget update", zap.String("command", command), zap.Error(err))
		return
	}
	b.logger.Debug("widget update broadcast sent", zap.Bool("ok", code == 0), zap.Int("code", code), zap.String("output", output))
}

// Close releases the broadcast shell, if one was started
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	closer, ok := b.runner.(io.Closer)
	if !ok {
		return nil
	}
	b.runner = nil
	return closer.Close()
}

// BroadcastCommand returns the shell command refreshing the widget of the package
func BroadcastCommand(pkg string) string {
	return fmt.Sprintf("am broadcast -a %s -n %s/%s", updateAction, pkg, provider)
}

func encodePayload(todosJSON string, loggedIn bool) ([]byte, error) {
	todos := strings.TrimSpace(todosJSON)
	if todos == "" {
		todos = "[]"
	}
	if todos[0] != '[' {
		return nil, ErrInvalidTodos
	}
	data, err := json.Marshal(&payload{Todos: json.RawMessage(todos), IsLoggedIn: loggedIn})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTodos, err)
	}
	return data, nil
}

// New creates a widget bridge; the data directory defaults to the package's files directory
func New(options ...Option) *Bridge {
	ret := &Bridge{
		pkg:     DefaultPackage,
		enabled: Supported,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.dirURL == "" {
		ret.dirURL = "/data/data/" + ret.pkg + "/files"
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}
