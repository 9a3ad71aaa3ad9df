// Package window describes the quick-add window owned by the GUI host.
package window

import (
	"context"
	"runtime"
)

// QuickAdd is the label of the quick-add window
const QuickAdd = "quick-add"

// Closer closes a host window by label; closing an absent window is not an error.
type Closer interface {
	Close(ctx context.Context, label string) error
}

// Manager forwards window requests to the host, when one is attached
type Manager struct {
	host   Closer
	mobile bool
}

// CloseQuickAdd closes the quick-add window; mobile builds have no such window.
func (m *Manager) CloseQuickAdd(ctx context.Context) error {
	if m.mobile || m.host == nil {
		return nil
	}
	return m.host.Close(ctx, QuickAdd)
}

// NewManager creates a manager for the host, which may be nil
func NewManager(host Closer) *Manager {
	return &Manager{host: host, mobile: isMobile(runtime.GOOS)}
}

func isMobile(goos string) bool {
	return goos == "android" || goos == "ios"
}
