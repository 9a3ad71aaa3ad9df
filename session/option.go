package session

import (
	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Option configures a FileStore
type Option func(f *FileStore)

// WithFS sets the storage service shared with other components.
func WithFS(fs afs.Service) Option {
	return func(f *FileStore) {
		f.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(f *FileStore) {
		f.logger = logger
	}
}
