// internal/handlers/chat/chat_handler.go
package chat

import (
	"errors"
	"net/http"

	"supportdesk-service/internal/domain/chat"
	xerrors "supportdesk-service/internal/pkg/errors"
	"supportdesk-service/internal/pkg/response"
	chatUsecase "supportdesk-service/internal/service/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *chatUsecase.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *chatUsecase.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ========== Conversation ==========

// Chat runs one conversation turn
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chat.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.chatService.Converse(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, chatUsecase.ErrProviderDown) {
			response.ServiceUnavailable(c, "Chat completion client is not initialized. Check server logs.")
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Case and customer storage is not initialized. Check server logs.")
			return
		}
		if errors.Is(err, xerrors.ErrConflict) {
			response.Conflict(c, "case is closed, start a new session to continue")
			return
		}
		h.logger.Error("chat turn failed",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "chat turn failed", err)
		return
	}

	response.Success(c, http.StatusOK, "chat turn completed", resp)
}

// ========== Resolution ==========

// ResolveCase closes a case and files its summary
func (h *ChatHandler) ResolveCase(c *gin.Context) {
	caseID := c.Query("case_id")
	if caseID == "" {
		response.Error(c, http.StatusBadRequest, "case_id is required", nil)
		return
	}

	msg, err := h.chatService.Resolve(c.Request.Context(), caseID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "Case not found.")
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Case and customer storage is not initialized.")
			return
		}
		h.logger.Error("case resolution failed",
			zap.String("case_id", caseID),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "case resolution failed", err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}

// ========== Summarization ==========

// SummarizeCase titles a transcript without persisting anything
func (h *ChatHandler) SummarizeCase(c *gin.Context) {
	var req chat.HistorySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.chatService.Summarize(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Chat completion client is not initialized.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "summarization failed", err)
		return
	}

	response.Success(c, http.StatusOK, "summary generated", resp)
}
