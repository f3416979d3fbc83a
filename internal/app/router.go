// internal/app/router.go
package app

import (
	authHandler "supportdesk-service/internal/handlers/auth"
	chatHandler "supportdesk-service/internal/handlers/chat"
	historyHandler "supportdesk-service/internal/handlers/history"
	wsHandler "supportdesk-service/internal/handlers/websocket"
	"supportdesk-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	ChatHandler    *chatHandler.ChatHandler
	HistoryHandler *historyHandler.HistoryHandler
	WSHandler      *wsHandler.WebSocketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)
	api.GET("/ws/stats", h.AuthMiddleware.Auth(), h.WSHandler.GetStats)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.GetMe)
	}

	// ==================== Conversation ====================
	// Chat, resolution and summarization stay public: the widget talks
	// to them before the customer ever signs in.
	api.POST("/chat", h.ChatHandler.Chat)
	api.POST("/resolve_case", h.ChatHandler.ResolveCase)
	api.POST("/summarize_case", h.ChatHandler.SummarizeCase)

	// ==================== Chat History ====================
	history := api.Group("/history")
	{
		history.GET("/:customer_id", h.HistoryHandler.ListCustomerCases)
		history.GET("/:customer_id/:session_id", h.HistoryHandler.GetConversation)
	}
}
