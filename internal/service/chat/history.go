// internal/usecase/chat/history_service.go
package chat

import (
	"context"
	"errors"
	"fmt"

	"supportdesk-service/internal/domain/chat"
	xerrors "supportdesk-service/internal/pkg/errors"
)

// ListCases returns every case a customer has opened, most recently
// touched first. A customer with no cases at all is a not-found.
func (s *ChatService) ListCases(ctx context.Context, customerID string) ([]chat.Case, error) {
	if s.caseRepo == nil {
		return nil, ErrCaseStoreDown
	}

	cases, err := s.caseRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	if len(cases) == 0 {
		return nil, xerrors.ErrNotFound
	}

	return cases, nil
}

// ConversationHistory returns the stored transcript of one session.
func (s *ChatService) ConversationHistory(ctx context.Context, customerID, sessionID string) ([]chat.ChatMessage, error) {
	if s.caseRepo == nil {
		return nil, ErrCaseStoreDown
	}

	c, err := s.caseRepo.FindByIDAndCustomer(ctx, sessionID, customerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	if c.ConversationHistory == nil {
		return []chat.ChatMessage{}, nil
	}
	return c.ConversationHistory, nil
}
