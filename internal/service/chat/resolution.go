// internal/usecase/chat/resolution_service.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"supportdesk-service/internal/domain/chat"
	wstypes "supportdesk-service/internal/domain/websocket"
	"supportdesk-service/internal/llm"
	xerrors "supportdesk-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const summaryPrompt = "Provide a concise, 5-10 word title for this customer support chat conversation. Focus on the main issue. The conversation is as follows: "

// Resolve closes out a case: titles the conversation, files the title
// into the customer's long-term memory, clears the active case pointer
// and marks the case resolved. Returns the confirmation message.
func (s *ChatService) Resolve(ctx context.Context, caseID string) (string, error) {
	if s.caseRepo == nil || s.customerRepo == nil {
		return "", ErrStoreDown
	}

	c, err := s.caseRepo.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to load case: %w", err)
	}

	if c.Terminal() {
		return fmt.Sprintf("Case %s is already resolved.", caseID), nil
	}

	summary, err := s.summarizeTitle(ctx, c.ConversationHistory)
	if err != nil {
		s.logger.Error("failed to generate case summary",
			zap.String("case_id", caseID),
			zap.Error(err),
		)
		summary = fmt.Sprintf(
			"Case %s was resolved on %s. The primary issue was not automatically summarized.",
			caseID, time.Now().Format(time.RFC3339),
		)
	}

	// Memory first: a missing profile is tolerated, the case still closes.
	if err := s.customerRepo.ResolveInteraction(ctx, c.CustomerID, summary); err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			return "", fmt.Errorf("failed to record interaction summary: %w", err)
		}
		s.logger.Warn("customer profile missing during resolution",
			zap.String("customer_id", c.CustomerID),
			zap.String("case_id", caseID),
		)
	}

	if err := s.caseRepo.Resolve(ctx, caseID, summary); err != nil {
		return "", fmt.Errorf("failed to resolve case: %w", err)
	}

	s.logger.Info("case resolved",
		zap.String("case_id", caseID),
		zap.String("customer_id", c.CustomerID),
		zap.String("summary", summary),
	)

	if s.hub != nil {
		s.hub.BroadcastCaseEvent(wstypes.EventTypeCaseResolved, &wstypes.CaseEventData{
			CaseID:     caseID,
			CustomerID: c.CustomerID,
			Status:     chat.StatusResolved,
			Escalated:  c.Escalated,
			Domain:     c.Domain,
			Summary:    summary,
		})
	}

	return fmt.Sprintf("Case %s resolved and summarized in customer's long-term memory.", caseID), nil
}

// Summarize titles a transcript without touching any stored state.
func (s *ChatService) Summarize(ctx context.Context, req *chat.HistorySummaryRequest) (*chat.HistorySummaryResponse, error) {
	if s.provider == nil {
		return nil, ErrProviderDown
	}

	summary, err := s.summarizeTitle(ctx, req.ConversationHistory)
	if err != nil {
		s.logger.Error("failed to generate summary",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		summary = "Untitled Chat"
	}

	return &chat.HistorySummaryResponse{
		SessionID: req.SessionID,
		Summary:   summary,
	}, nil
}

// summarizeTitle asks the model for a short title over the joined
// transcript contents and strips quoting from the reply.
func (s *ChatService) summarizeTitle(ctx context.Context, history []chat.ChatMessage) (string, error) {
	if s.provider == nil {
		return "", ErrProviderDown
	}

	contents := make([]string, 0, len(history))
	for _, m := range history {
		contents = append(contents, m.Content)
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: summaryPrompt + strings.Join(contents, " ")},
		},
	})
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(strings.TrimSpace(resp.Content), `"`, ""), nil
}
