// internal/websocket/hub.go
package websocket

import (
	"context"
	"log"
	"sync"

	wstypes "supportdesk-service/internal/domain/websocket"
	"supportdesk-service/internal/pkg/jwt"
	"supportdesk-service/internal/pkg/session"
)

type Hub struct {
	// Registered clients by customer ID
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	// Registration/unregistration
	Register   chan *Client
	unregister chan *Client

	// Broadcasting
	broadcast chan *BroadcastMessage

	// Handler registry for modular message handling
	handlerRegistry *HandlerRegistry

	// Auth dependencies
	jwtVerifier    *jwt.Verifier
	sessionManager *session.Manager
}

type BroadcastMessage struct {
	CustomerIDs []string
	Channel     wstypes.ChannelType
	Message     *wstypes.WSMessage
}

func NewHub(jwtVerifier *jwt.Verifier, sessionManager *session.Manager) *Hub {
	return &Hub{
		clients:         make(map[string]map[*Client]bool),
		Register:        make(chan *Client),
		unregister:      make(chan *Client),
		broadcast:       make(chan *BroadcastMessage, 256),
		handlerRegistry: NewHandlerRegistry(),
		jwtVerifier:     jwtVerifier,
		sessionManager:  sessionManager,
	}
}

// AuthenticateClient validates the JWT token and creates an authenticated client
func (h *Hub) AuthenticateClient(ctx context.Context, token string) (*ClientAuth, error) {
	claims, err := h.jwtVerifier.VerifyAccessToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Check if token is blacklisted
	blacklisted, err := h.sessionManager.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	// Verify session exists
	sessionData, err := h.sessionManager.GetSession(ctx, claims.Email(), claims.ID)
	if err != nil {
		return nil, ErrSessionExpired
	}

	return &ClientAuth{
		CustomerID: claims.CustomerID,
		SessionID:  claims.ID,
		Email:      sessionData.Email,
		Name:       claims.Name,
	}, nil
}

// RegisterHandler registers a message handler
func (h *Hub) RegisterHandler(handler MessageHandler) {
	h.handlerRegistry.Register(handler)
}

// HandleClientMessage processes a message from a client using registered handlers
func (h *Hub) HandleClientMessage(ctx context.Context, client *Client, msg *wstypes.WSMessage) error {
	handler, exists := h.handlerRegistry.GetHandler(msg.Type)
	if !exists {
		return nil // Will be handled by client's default handler
	}

	return handler.HandleMessage(ctx, client, msg)
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.BroadcastMessage(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.customerID] == nil {
		h.clients[client.customerID] = make(map[*Client]bool)
	}
	h.clients[client.customerID][client] = true

	log.Printf("Client connected: customer=%s, session=%s, total=%d",
		client.customerID, client.sessionID, h.totalClients())

	// Send welcome message with user info
	client.SendMessage(wstypes.NewMessage(wstypes.EventTypeConnected, map[string]interface{}{
		"customer_id": client.customerID,
		"session_id":  client.sessionID,
		"email":       client.email,
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.customerID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			client.Close()

			if len(clients) == 0 {
				delete(h.clients, client.customerID)
			}

			log.Printf("Client disconnected: customer=%s, session=%s, total=%d",
				client.customerID, client.sessionID, h.totalClients())
		}
	}
}

func (h *Hub) BroadcastMessage(msg *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.CustomerIDs == nil {
		// Broadcast to all
		for _, clients := range h.clients {
			for client := range clients {
				if client.IsSubscribed(msg.Channel) {
					client.SendMessage(msg.Message)
				}
			}
		}
	} else {
		// Broadcast to specific customers
		for _, customerID := range msg.CustomerIDs {
			if clients, ok := h.clients[customerID]; ok {
				for client := range clients {
					if client.IsSubscribed(msg.Channel) {
						client.SendMessage(msg.Message)
					}
				}
			}
		}
	}
}

func (h *Hub) GetConnectedClients(customerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.clients[customerID]; ok {
		return len(clients)
	}
	return 0
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.totalClients()
}

// ConnectedCustomers counts distinct customers with at least one open connection.
func (h *Hub) ConnectedCustomers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Public methods for broadcasting

// BroadcastCaseEvent delivers a case lifecycle event to the case's
// customer. Delivery is fire-and-forget: a full broadcast queue drops
// the event rather than stalling the caller.
func (h *Hub) BroadcastCaseEvent(eventType wstypes.EventType, event *wstypes.CaseEventData) {
	msg := wstypes.NewMessage(eventType, event)
	select {
	case h.broadcast <- &BroadcastMessage{
		CustomerIDs: []string{event.CustomerID},
		Channel:     wstypes.ChannelCases,
		Message:     msg,
	}:
	default:
		log.Printf("broadcast queue full, dropping %s for case %s", eventType, event.CaseID)
	}
}

func (h *Hub) ForceLogout(customerID, sessionID, reason string) {
	msg := wstypes.NewMessage(wstypes.EventTypeForceLogout, wstypes.SessionEventData{
		SessionID: sessionID,
		Reason:    reason,
		Message:   "You have been logged out",
	})
	select {
	case h.broadcast <- &BroadcastMessage{
		CustomerIDs: []string{customerID},
		Channel:     wstypes.ChannelSystem,
		Message:     msg,
	}:
	default:
		log.Printf("broadcast queue full, dropping force logout for customer %s", customerID)
	}
}

func (h *Hub) totalClients() int {
	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			client.Close()
		}
	}
}
