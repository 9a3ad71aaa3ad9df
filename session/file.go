package session

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
)

// FileName is the session file name
const FileName = "session.json"

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// FileStore persists the session as a JSON file under a base directory.
// Each Store truncates and rewrites the file. Calls on one FileStore are
// serialized; separate processes sharing the same directory are not coordinated.
type FileStore struct {
	mu      sync.Mutex
	baseURL string
	fs      afs.Service
	logger  *zap.Logger
}

// Path returns the session file location, creating the base directory when missing.
// Directory creation is best effort: a failure shows up on the following read or write.
func (f *FileStore) Path(ctx context.Context) string {
	if ok, _ := f.fs.Exists(ctx, f.baseURL); !ok {
		if err := f.fs.Create(ctx, f.baseURL, dirMode, true); err != nil {
			f.logger.Debug("failed to create session directory", zap.String("dir", f.baseURL), zap.Error(err))
		}
	}
	return url.Join(f.baseURL, FileName)
}

// Store replaces the stored session with the supplied values
func (f *FileStore) Store(ctx context.Context, accessToken, refreshToken, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := encode(&Session{AccessToken: accessToken, RefreshToken: refreshToken, UserID: userID})
	if err != nil {
		return err
	}
	location := f.Path(ctx)
	if err = f.fs.Upload(ctx, location, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: failed to write %v: %v", ErrIO, location, err)
	}
	f.logger.Debug("session stored", zap.String("path", location), zap.String("user_id", userID))
	return nil
}

// Get returns the stored session or nil when no session file exists or the file is blank
func (f *FileStore) Get(ctx context.Context) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	location := f.Path(ctx)
	exists, err := f.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check %v: %v", ErrIO, location, err)
	}
	if !exists {
		return nil, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %v: %v", ErrIO, location, err)
	}
	return decode(data)
}

// NewFileStore creates a store keeping session.json under baseURL
func NewFileStore(baseURL string, options ...Option) *FileStore {
	ret := &FileStore{
		baseURL: baseURL,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}
