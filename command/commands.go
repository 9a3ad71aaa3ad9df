package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/appsession/session"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// StoreSession handles the store_session method. Storing an empty access token
// means the user signed out, so the widget is reset as well.
func (h *Handler) StoreSession(ctx context.Context, request *jsonrpc.Request) (interface{}, *jsonrpc.Error) {
	params := &StoreSessionParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	if err := h.sessions.Store(ctx, params.AccessToken, params.RefreshToken, params.UserID); err != nil {
		return nil, h.internalError(ctx, request.Method, err)
	}
	_ = h.clientLog.Send(ctx, schema.Info, "session stored")
	if params.AccessToken == "" && h.widget != nil {
		if err := h.widget.Clear(ctx); err != nil {
			h.logger.Warn("failed to clear widget", zap.Error(err))
			_ = h.clientLog.Send(ctx, schema.Warning, fmt.Sprintf("failed to clear widget: %v", err))
		}
	}
	return nil, nil
}

// GetSession handles the get_session method
func (h *Handler) GetSession(ctx context.Context, request *jsonrpc.Request) (*session.Session, *jsonrpc.Error) {
	ret, err := h.sessions.Get(ctx)
	if err != nil {
		return nil, h.internalError(ctx, request.Method, err)
	}
	return ret, nil
}

// UpdateWidget handles the update_widget method
func (h *Handler) UpdateWidget(ctx context.Context, request *jsonrpc.Request) (interface{}, *jsonrpc.Error) {
	params := &UpdateWidgetParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	if h.widget == nil {
		return nil, nil
	}
	if err := h.widget.Update(ctx, params.TodosJSON, params.IsLoggedIn); err != nil {
		return nil, h.internalError(ctx, request.Method, err)
	}
	_ = h.clientLog.Send(ctx, schema.LoggingLevelDebug, fmt.Sprintf("widget updated, logged in: %v", params.IsLoggedIn))
	return nil, nil
}

// CloseQuickAddWindow handles the close_quick_add_window method
func (h *Handler) CloseQuickAddWindow(ctx context.Context, request *jsonrpc.Request) (interface{}, *jsonrpc.Error) {
	if err := h.quickAdd.CloseQuickAdd(ctx); err != nil {
		return nil, h.internalError(ctx, request.Method, err)
	}
	return nil, nil
}

func (h *Handler) internalError(ctx context.Context, method string, err error) *jsonrpc.Error {
	h.logger.Warn("command failed", zap.String("method", method), zap.Error(err))
	_ = h.clientLog.Send(ctx, schema.Err, fmt.Sprintf("%v: %v", method, err))
	return jsonrpc.NewInternalError(err.Error(), nil)
}
