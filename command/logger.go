package command

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// ClientLog forwards messages to the connected client as notifications/message.
// Nothing is sent until the client picks a threshold with logging/setLevel.
type ClientLog struct {
	name      string
	notifier  transport.Notifier
	mux       sync.RWMutex
	threshold *schema.LoggingLevel
}

// SetThreshold sets the least severe level forwarded to the client
func (c *ClientLog) SetThreshold(level schema.LoggingLevel) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.threshold = &level
}

func (c *ClientLog) accepts(level schema.LoggingLevel) bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.threshold != nil && level.Ordinal() >= c.threshold.Ordinal()
}

// Send notifies the client when level passes the threshold
func (c *ClientLog) Send(ctx context.Context, level schema.LoggingLevel, data any) error {
	if !c.accepts(level) {
		return nil
	}
	params, err := json.Marshal(schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &c.name,
		Data:   data,
	})
	if err != nil {
		return err
	}
	return c.notifier.Notify(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationMessage, Params: params})
}

// NewClientLog creates a client log named name
func NewClientLog(name string, notifier transport.Notifier) *ClientLog {
	return &ClientLog{name: name, notifier: notifier}
}
