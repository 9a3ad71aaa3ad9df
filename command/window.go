package command

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
)

// MethodNotificationWindowClose asks the GUI host to close a window
const MethodNotificationWindowClose = "notifications/window/close"

// WindowCloseParams represents window close notification parameters
type WindowCloseParams struct {
	Label string `json:"label"`
}

// windowNotifier closes host windows by notifying the client that owns them
type windowNotifier struct {
	notifier transport.Notifier
}

func (w *windowNotifier) Close(ctx context.Context, label string) error {
	params, err := json.Marshal(&WindowCloseParams{Label: label})
	if err != nil {
		return err
	}
	return w.notifier.Notify(ctx, &jsonrpc.Notification{Method: MethodNotificationWindowClose, Params: params})
}
