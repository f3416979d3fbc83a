// internal/handlers/history/history_handler.go
package history

import (
	"errors"
	"fmt"
	"net/http"

	xerrors "supportdesk-service/internal/pkg/errors"
	"supportdesk-service/internal/pkg/response"
	chatUsecase "supportdesk-service/internal/service/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	chatService *chatUsecase.ChatService
	logger      *zap.Logger
}

func NewHistoryHandler(chatService *chatUsecase.ChatService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ListCustomerCases returns all of a customer's cases, newest activity first
func (h *HistoryHandler) ListCustomerCases(c *gin.Context) {
	customerID := c.Param("customer_id")

	cases, err := h.chatService.ListCases(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, fmt.Sprintf("No chat history found for customer ID: %s", customerID))
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Case storage is not initialized.")
			return
		}
		h.logger.Error("failed to list cases",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "failed to list cases", err)
		return
	}

	response.Success(c, http.StatusOK, "chat history retrieved", cases)
}

// GetConversation returns the stored transcript of one session
func (h *HistoryHandler) GetConversation(c *gin.Context) {
	customerID := c.Param("customer_id")
	sessionID := c.Param("session_id")

	messages, err := h.chatService.ConversationHistory(c.Request.Context(), customerID, sessionID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, fmt.Sprintf("Conversation not found for session ID: %s", sessionID))
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Case storage is not initialized.")
			return
		}
		h.logger.Error("failed to load conversation",
			zap.String("customer_id", customerID),
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "failed to load conversation", err)
		return
	}

	response.Success(c, http.StatusOK, "conversation retrieved", messages)
}
