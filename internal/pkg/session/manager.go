// internal/pkg/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	xerrors "supportdesk-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// Manager keeps login sessions in Redis, keyed by account email and
// token id. Redis is the only session store; a key that has expired or
// been deleted means the session is gone.
type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// CreateSession stores a new session in Redis
func (m *Manager) CreateSession(ctx context.Context, session *SessionData) error {
	key := m.sessionKey(session.Email, session.JTI)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := m.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}

	return nil
}

// GetSession retrieves a session from Redis
func (m *Manager) GetSession(ctx context.Context, email, jti string) (*SessionData, error) {
	key := m.sessionKey(email, jti)

	data, err := m.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, xerrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	session.LastActivityAt = time.Now()
	go m.touchSession(context.Background(), &session)

	return &session, nil
}

// InvalidateSession removes a session from Redis
func (m *Manager) InvalidateSession(ctx context.Context, email, jti string) error {
	if err := m.client.Del(ctx, m.sessionKey(email, jti)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// InvalidateAllUserSessions removes every session the account holds
func (m *Manager) InvalidateAllUserSessions(ctx context.Context, email string) error {
	pattern := fmt.Sprintf("session:%s:*", email)

	iter := m.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := m.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete session %s: %w", iter.Val(), err)
		}
	}

	return iter.Err()
}

// IsTokenBlacklisted checks if a token id has been revoked
func (m *Manager) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := m.client.Exists(ctx, m.blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists > 0, nil
}

// BlacklistToken revokes a token id for the remainder of its lifetime
func (m *Manager) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	return m.client.Set(ctx, m.blacklistKey(jti), "1", ttl).Err()
}

func (m *Manager) sessionKey(email, jti string) string {
	return fmt.Sprintf("session:%s:%s", email, jti)
}

func (m *Manager) blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}

// touchSession writes back the refreshed activity stamp, keeping the
// original expiry.
func (m *Manager) touchSession(ctx context.Context, session *SessionData) {
	data, err := json.Marshal(session)
	if err != nil {
		return
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl > 0 {
		m.client.Set(ctx, m.sessionKey(session.Email, session.JTI), data, ttl)
	}
}
