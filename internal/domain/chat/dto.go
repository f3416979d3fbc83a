// internal/domain/chat/dto.go
package chat

import (
	"supportdesk-service/internal/domain/customer"
)

type ChatRequest struct {
	UserQuery            string           `json:"user_query" binding:"required"`
	SessionID            string           `json:"session_id" binding:"required"`
	CustomerProfile      customer.Profile `json:"customer_profile" binding:"required"`
	ConversationHistory  []ChatMessage    `json:"conversation_history"`
	ShopIDForOrderLookup string           `json:"shop_id_for_order_lookup"`
	Domain               string           `json:"domain" binding:"required"`
}

type ChatResponse struct {
	BotResponse       string  `json:"bot_response"`
	CaseStatus        string  `json:"case_status"`
	CaseID            *string `json:"case_id"`
	FAQSuggestion     *string `json:"faq_suggestion"`
	SentimentDetected *string `json:"sentiment_detected"`
}

type HistorySummaryRequest struct {
	SessionID           string        `json:"session_id" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

type HistorySummaryResponse struct {
	SessionID string `json:"session_id"`
	Summary   string `json:"summary"`
}
