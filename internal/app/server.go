// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"supportdesk-service/internal/config"
	"supportdesk-service/internal/db"
	chatdomain "supportdesk-service/internal/domain/chat"
	customerdomain "supportdesk-service/internal/domain/customer"
	orderdomain "supportdesk-service/internal/domain/order"
	authHandler "supportdesk-service/internal/handlers/auth"
	chatHandler "supportdesk-service/internal/handlers/chat"
	historyHandler "supportdesk-service/internal/handlers/history"
	wsHandler "supportdesk-service/internal/handlers/websocket"
	"supportdesk-service/internal/knowledge"
	"supportdesk-service/internal/llm"
	"supportdesk-service/internal/middleware"
	"supportdesk-service/internal/pkg/jwt"
	"supportdesk-service/internal/pkg/session"
	"supportdesk-service/internal/repository/postgres"
	authUsecase "supportdesk-service/internal/service/auth"
	chatUsecase "supportdesk-service/internal/service/chat"
	ordersvc "supportdesk-service/internal/service/order"
	"supportdesk-service/internal/websocket"
	wsHandlers "supportdesk-service/internal/websocket/handler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// llmRequestsPerMinute caps outbound completion calls across all chat
// traffic, matching the free-tier quota of the default provider.
const llmRequestsPerMinute = 60

type Server struct {
	cfg        config.AppConfig
	engine     *gin.Engine
	logger     *zap.Logger
	httpServer *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	// A dead database does not stop the server: repos stay nil and the
	// storage-backed endpoints answer 503 until it comes back.
	pool, err := db.ConnectDB(s.cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to PostgreSQL, storage endpoints degraded", zap.Error(err))
		pool = nil
	} else if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping PostgreSQL, storage endpoints degraded", zap.Error(err))
		pool.Close()
		pool = nil
	}

	// ----- Redis -----
	redisCfg := db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	}

	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		log.Fatalf("[REDIS] ❌ Failed to connect to Redis: %v", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- JWT Manager -----
	jwtManager, err := jwt.LoadAndBuild(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT manager: %w", err)
	}

	// ----- Session Manager & Rate Limiter -----
	sessionManager := session.NewManager(redisClient)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Knowledge Base -----
	kb := knowledge.Load(s.cfg.KnowledgeBasePath, logger)

	// ----- LLM Provider -----
	// Same policy as the database: a missing API key or an unknown
	// provider degrades the chat endpoints rather than killing startup.
	provider, err := llm.NewProvider(s.cfg.LLMProvider, s.cfg.LLMModel)
	if err != nil {
		logger.Error("chat completion client not initialized, chat endpoints degraded", zap.Error(err))
	} else {
		provider = llm.NewRateLimitedProvider(provider, llmRequestsPerMinute)
	}

	// ----- Repositories -----
	var (
		authRepo     *postgres.AuthRepository
		caseRepo     chatdomain.Repository
		customerRepo customerdomain.Repository
		orderRepo    orderdomain.Repository
	)
	if pool != nil {
		authRepo = postgres.NewAuthRepository(pool)
		caseRepo = postgres.NewCaseRepository(pool)
		customerRepo = postgres.NewCustomerRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
	}

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(jwtManager.Verifier, sessionManager)

	if caseRepo != nil {
		hub.RegisterHandler(wsHandlers.NewCaseStreamHandler(caseRepo))
	}

	// Start hub
	go hub.Run(context.Background())

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(
		authRepo,
		jwtManager,
		sessionManager,
		rateLimiter,
		hub,
		logger,
	)

	orderService := ordersvc.NewOrderService(orderRepo, logger)

	chatService := chatUsecase.NewChatService(
		caseRepo,
		customerRepo,
		provider,
		s.cfg.LLMModel,
		kb,
		orderService,
		hub,
		logger,
	)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	chatHandlerInst := chatHandler.NewChatHandler(chatService, logger)
	historyHandlerInst := historyHandler.NewHistoryHandler(chatService, logger)
	wsHandlerInst := wsHandler.NewWebSocketHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestLogger(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		ChatHandler:    chatHandlerInst,
		HistoryHandler: historyHandlerInst,
		WSHandler:      wsHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
