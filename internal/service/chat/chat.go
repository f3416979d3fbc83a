// internal/usecase/chat/chat_service.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"supportdesk-service/internal/dialogue"
	"supportdesk-service/internal/domain/chat"
	"supportdesk-service/internal/domain/customer"
	wstypes "supportdesk-service/internal/domain/websocket"
	"supportdesk-service/internal/knowledge"
	"supportdesk-service/internal/llm"
	xerrors "supportdesk-service/internal/pkg/errors"
	"supportdesk-service/internal/service/order"
	ws "supportdesk-service/internal/websocket"

	"go.uber.org/zap"
)

// Collaborators that never came up surface as 503s at the transport layer.
var (
	ErrProviderDown  = fmt.Errorf("%w: chat completion client is not initialized, check server logs", xerrors.ErrUnavailable)
	ErrStoreDown     = fmt.Errorf("%w: case and customer storage is not initialized, check server logs", xerrors.ErrUnavailable)
	ErrCaseStoreDown = fmt.Errorf("%w: case storage is not initialized", xerrors.ErrUnavailable)
)

const (
	// llmApology stands in for the model's reply when the completion call
	// fails; the turn is still recorded and the case force-escalated.
	llmApology = "Oh dear, I seem to be having a little trouble at the moment. Please bear with me and try again in a bit, or feel free to reach out to our human support directly if it's urgent!"

	// escalationNotice is appended to the reply on the turn a case first
	// crosses the hand-off threshold.
	escalationNotice = "\n\n**Just a heads-up**: Based on our conversation, I think it might be best if a human agent steps in. I'm escalating this for you, and someone will review our chat and get in touch shortly!"
)

type ChatService struct {
	caseRepo     chat.Repository
	customerRepo customer.Repository
	provider     llm.Provider
	model        string
	kb           *knowledge.Base
	orderService *order.OrderService
	hub          *ws.Hub
	logger       *zap.Logger
}

func NewChatService(
	caseRepo chat.Repository,
	customerRepo customer.Repository,
	provider llm.Provider,
	model string,
	kb *knowledge.Base,
	orderService *order.OrderService,
	hub *ws.Hub,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		caseRepo:     caseRepo,
		customerRepo: customerRepo,
		provider:     provider,
		model:        model,
		kb:           kb,
		orderService: orderService,
		hub:          hub,
		logger:       logger,
	}
}

// Converse runs one full conversation turn: classify the query, guard the
// chat domain, load or create the customer's memory and case, compose the
// prompt, call the model, apply escalation policy and persist the turn.
func (s *ChatService) Converse(ctx context.Context, req *chat.ChatRequest) (*chat.ChatResponse, error) {
	if s.provider == nil {
		return nil, ErrProviderDown
	}
	if s.caseRepo == nil || s.customerRepo == nil {
		return nil, ErrStoreDown
	}

	userQuery := req.UserQuery
	sessionID := req.SessionID
	customerID := req.CustomerProfile.CustomerID
	domain := req.Domain

	// ========== Classification & Domain Guard ==========

	intent, urgency, entities := dialogue.DetermineIntentAndUrgency(userQuery)
	sentiment := dialogue.AnalyzeSentiment(userQuery)
	currentTurn := len(req.ConversationHistory)/2 + 1

	// A denied turn mutates nothing: no profile, no case, no history.
	if !dialogue.IntentAllowed(intent, domain) {
		s.logger.Info("query refused by domain guard",
			zap.String("session_id", sessionID),
			zap.String("intent", intent),
			zap.String("domain", domain),
		)
		refusal := fmt.Sprintf(
			"I'm sorry, but I can only help with **%s**-related queries here. To ask about something else, please return to the homepage and select a different chat domain!",
			capitalizeDomain(domain),
		)
		unanswered := dialogue.SentimentUnanswered
		return &chat.ChatResponse{
			BotResponse:       refusal,
			CaseStatus:        chat.StatusClosed,
			CaseID:            nil,
			FAQSuggestion:     nil,
			SentimentDetected: &unanswered,
		}, nil
	}

	// ========== Long-Term Memory ==========

	profile, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load customer profile: %w", err)
		}
		profile = &req.CustomerProfile
		if err := s.customerRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create customer profile: %w", err)
		}
		s.logger.Info("created customer profile", zap.String("customer_id", customerID))
	}

	// ========== Case Memory ==========

	caseID := sessionID
	currentCase, err := s.caseRepo.FindByIDAndCustomer(ctx, caseID, customerID)
	if err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load case: %w", err)
		}
		now := time.Now()
		currentCase = &chat.Case{
			CaseID:              caseID,
			SessionID:           sessionID,
			CustomerID:          customerID,
			Status:              chat.StatusOpen,
			CreatedAt:           now,
			LastUpdated:         now,
			InitialQuery:        userQuery,
			ConversationHistory: []chat.ChatMessage{},
			Escalated:           false,
			Domain:              domain,
		}
		if err := s.caseRepo.Create(ctx, currentCase); err != nil {
			return nil, fmt.Errorf("failed to create case: %w", err)
		}
		if err := s.customerRepo.SetActiveCase(ctx, customerID, caseID); err != nil {
			s.logger.Warn("failed to set active case",
				zap.String("customer_id", customerID),
				zap.String("case_id", caseID),
				zap.Error(err),
			)
		}
		s.logger.Info("created case",
			zap.String("customer_id", customerID),
			zap.String("case_id", caseID),
			zap.String("domain", domain),
		)
		if s.hub != nil {
			s.hub.BroadcastCaseEvent(wstypes.EventTypeCaseCreated, &wstypes.CaseEventData{
				CaseID:     caseID,
				CustomerID: customerID,
				Status:     currentCase.Status,
				Escalated:  currentCase.Escalated,
				Domain:     domain,
			})
		}
	}

	if currentCase.Terminal() {
		return nil, fmt.Errorf("%w: case %s is %s", xerrors.ErrConflict, caseID, currentCase.Status)
	}

	// ========== Prompt Composition ==========

	systemInstruction := dialogue.BuildSystemInstruction(domain, s.kb.Pairs(domain))
	messages := dialogue.BuildMessages(systemInstruction, req.ConversationHistory)

	kbAnswer := s.kb.Lookup(userQuery, domain)

	orderDetails := ""
	if intent == dialogue.IntentOrderStatus {
		shopID := entities["shopid"]
		if shopID == "" {
			shopID = req.ShopIDForOrderLookup
		}
		orderDetails = s.orderService.GetOrderDetailsByID(ctx, shopID)
	}

	finalInstruction := dialogue.FinalInstruction(dialogue.FinalInstructionInput{
		Query:         userQuery,
		CustomerID:    profile.CustomerID,
		Turn:          currentTurn,
		Intent:        intent,
		Urgency:       urgency,
		Sentiment:     sentiment,
		Entities:      entities,
		OrderDetails:  orderDetails,
		KBAnswer:      kbAnswer,
		PastSummaries: profile.PreviousInteractions,
	})
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: finalInstruction})

	// ========== Completion ==========

	var botResponse string
	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		s.logger.Error("chat completion failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		botResponse = llmApology
		currentCase.Escalated = true
	} else {
		botResponse = resp.Content
		s.logger.Info("chat completion received", zap.String("session_id", sessionID))
	}

	// ========== Escalation Policy ==========

	shouldEscalate := dialogue.ShouldEscalate(currentTurn, intent, urgency, sentiment, currentCase.Escalated)
	if shouldEscalate && !currentCase.Escalated {
		currentCase.Escalated = true
		currentCase.Status = chat.StatusEscalatedToHuman
		botResponse += escalationNotice
		s.logger.Info("case escalated to human", zap.String("case_id", caseID))
		if s.hub != nil {
			s.hub.BroadcastCaseEvent(wstypes.EventTypeCaseEscalated, &wstypes.CaseEventData{
				CaseID:     caseID,
				CustomerID: customerID,
				Status:     currentCase.Status,
				Escalated:  true,
				Domain:     currentCase.Domain,
			})
		}
	}

	// ========== Persist Turn ==========

	// The caller owns the in-flight transcript: persist its copy wholesale
	// with this turn's pair appended.
	now := time.Now()
	history := append([]chat.ChatMessage{}, req.ConversationHistory...)
	history = append(history,
		chat.ChatMessage{Role: chat.RoleUser, Content: userQuery, Timestamp: now.Format(time.RFC3339)},
		chat.ChatMessage{Role: chat.RoleBot, Content: botResponse, Timestamp: now.Format(time.RFC3339)},
	)
	currentCase.ConversationHistory = history
	currentCase.LastUpdated = now

	if err := s.caseRepo.UpdateTurn(ctx, currentCase); err != nil {
		return nil, fmt.Errorf("failed to persist turn: %w", err)
	}

	return &chat.ChatResponse{
		BotResponse:       botResponse,
		CaseStatus:        currentCase.Status,
		CaseID:            &caseID,
		FAQSuggestion:     &kbAnswer,
		SentimentDetected: &sentiment,
	}, nil
}

// capitalizeDomain renders a domain slug for display copy: first letter
// upper, rest lower.
func capitalizeDomain(d string) string {
	if d == "" {
		return d
	}
	return strings.ToUpper(d[:1]) + strings.ToLower(d[1:])
}
