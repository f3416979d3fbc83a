// internal/websocket/errors.go
package websocket

import "errors"

// Handshake failures surfaced by AuthenticateClient before a client joins the hub.
var (
	ErrInvalidToken     = errors.New("invalid access token")
	ErrTokenBlacklisted = errors.New("access token has been revoked")
	ErrSessionExpired   = errors.New("session has expired")
)
