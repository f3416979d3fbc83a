// internal/websocket/handler.go
package websocket

import (
	"context"

	wstypes "supportdesk-service/internal/domain/websocket"
)

// MessageHandler processes inbound client messages for one feature area,
// such as the case event stream.
type MessageHandler interface {
	HandleMessage(ctx context.Context, client *Client, msg *wstypes.WSMessage) error

	// SupportedEvents lists the event types the handler wants routed to it.
	SupportedEvents() []wstypes.EventType
}

// HandlerRegistry routes inbound events to the handler that registered them.
type HandlerRegistry struct {
	handlers map[wstypes.EventType]MessageHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[wstypes.EventType]MessageHandler),
	}
}

// Register maps each of the handler's supported events to it. A later
// registration for the same event replaces the earlier one.
func (r *HandlerRegistry) Register(h MessageHandler) {
	for _, eventType := range h.SupportedEvents() {
		r.handlers[eventType] = h
	}
}

// GetHandler looks up the handler registered for an event type.
func (r *HandlerRegistry) GetHandler(eventType wstypes.EventType) (MessageHandler, bool) {
	h, ok := r.handlers[eventType]
	return h, ok
}
