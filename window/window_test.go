package window

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockHost struct {
	closed []string
	err    error
}

func (m *mockHost) Close(_ context.Context, label string) error {
	m.closed = append(m.closed, label)
	return m.err
}

func TestManager_CloseQuickAdd(t *testing.T) {
	ctx := context.Background()
	host := &mockHost{}
	manager := &Manager{host: host}
	assert.NoError(t, manager.CloseQuickAdd(ctx))
	assert.Equal(t, []string{QuickAdd}, host.closed)

	host.err = errors.New("window is busy")
	assert.EqualError(t, manager.CloseQuickAdd(ctx), "window is busy")

	mobile := &Manager{host: host, mobile: true}
	host.closed = nil
	assert.NoError(t, mobile.CloseQuickAdd(ctx))
	assert.Empty(t, host.closed)

	assert.NoError(t, NewManager(nil).CloseQuickAdd(ctx))
}

func TestIsMobile(t *testing.T) {
	assert.True(t, isMobile("android"))
	assert.True(t, isMobile("ios"))
	assert.False(t, isMobile("darwin"))
}
