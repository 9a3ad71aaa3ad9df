package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// Handler serves command requests for a single transport
type Handler struct {
	*Server
	clientLog *ClientLog
	quickAdd  WindowCloser
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	switch request.Method {
	case MethodStoreSession:
		result, err := h.StoreSession(ctx, request)
		h.setResponse(response, result, err)
	case MethodGetSession:
		result, err := h.GetSession(ctx, request)
		h.setResponse(response, result, err)
	case MethodUpdateWidget:
		result, err := h.UpdateWidget(ctx, request)
		h.setResponse(response, result, err)
	case MethodCloseQuickAddWindow:
		result, err := h.CloseQuickAddWindow(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		h.setResponse(response, &schema.PingResult{}, nil)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
	}
}

// OnNotification handles incoming JSON-RPC notifications; commands do not use any
func (h *Handler) OnNotification(_ context.Context, notification *jsonrpc.Notification) {
	h.logger.Debug("ignored notification", zap.String("method", notification.Method))
}

// SetLevel handles the logging/setLevel method
func (h *Handler) SetLevel(_ context.Context, request *jsonrpc.Request) (*schema.SetLevelResult, *jsonrpc.Error) {
	setLevelRequest := &schema.SetLevelRequest{Method: request.Method}
	if err := json.Unmarshal(request.Params, &setLevelRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	h.clientLog.SetThreshold(setLevelRequest.Params.Level)
	return &schema.SetLevelResult{}, nil
}
