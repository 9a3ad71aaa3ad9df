package widget

import (
	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Option configures a Bridge
type Option func(b *Bridge)

// WithDir sets the directory holding widget_data.json
func WithDir(dirURL string) Option {
	return func(b *Bridge) {
		b.dirURL = dirURL
	}
}

// WithPackage sets the application package owning the widget provider
func WithPackage(name string) Option {
	return func(b *Bridge) {
		b.pkg = name
	}
}

// WithRunner sets the shell runner used for the refresh broadcast
func WithRunner(runner Runner) Option {
	return func(b *Bridge) {
		b.runner = runner
	}
}

// WithEnabled overrides platform detection
func WithEnabled(enabled bool) Option {
	return func(b *Bridge) {
		b.enabled = enabled
	}
}

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(b *Bridge) {
		b.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}
