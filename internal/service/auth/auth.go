// internal/usecase/auth/auth_service.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supportdesk-service/internal/domain/auth"
	xerrors "supportdesk-service/internal/pkg/errors"
	"supportdesk-service/internal/pkg/jwt"
	"supportdesk-service/internal/pkg/session"
	"supportdesk-service/internal/repository/postgres"
	ws "supportdesk-service/internal/websocket"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	authRepo       *postgres.AuthRepository
	jwtManager     *jwt.Manager
	sessionManager *session.Manager
	rateLimiter    *session.RateLimiter
	hub            *ws.Hub
	logger         *zap.Logger
}

func NewAuthService(
	authRepo *postgres.AuthRepository,
	jwtManager *jwt.Manager,
	sessionManager *session.Manager,
	rateLimiter *session.RateLimiter,
	hub *ws.Hub,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		authRepo:       authRepo,
		jwtManager:     jwtManager,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
		hub:            hub,
		logger:         logger,
	}
}

// ========== Registration ==========

// Register creates a new account and mints its customer id
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error) {
	if s.authRepo == nil {
		return nil, fmt.Errorf("%w: user registration service is currently unavailable", xerrors.ErrUnavailable)
	}

	exists, err := s.authRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEntry
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &auth.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		CustomerID:   ulid.Make().String(),
	}

	if err := s.authRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			return nil, xerrors.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("registered new account",
		zap.String("email", user.Email),
		zap.String("customer_id", user.CustomerID))

	return &auth.RegisterResponse{OK: true, CustomerID: user.CustomerID}, nil
}

// ========== Login ==========

// Login authenticates a user with email/password and opens a session
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, ipAddress, userAgent string) (*auth.TokenResponse, error) {
	if s.authRepo == nil {
		return nil, fmt.Errorf("%w: user login service is currently unavailable", xerrors.ErrUnavailable)
	}

	allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, ipAddress, req.Email)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	user, err := s.authRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	s.rateLimiter.ResetLoginAttempts(ctx, ipAddress, req.Email)

	accessToken, jti, err := s.jwtManager.Generator.GenerateAccessToken(user.Email, user.CustomerID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	now := time.Now()
	sessionData := &session.SessionData{
		JTI:            jti,
		Email:          user.Email,
		CustomerID:     user.CustomerID,
		Name:           user.Name,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		LoginAt:        now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.jwtManager.Generator.Ttl),
	}

	if err := s.sessionManager.CreateSession(ctx, sessionData); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("login", zap.String("email", user.Email), zap.String("jti", jti))

	return &auth.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// ========== Token Validation ==========

// ValidateToken checks signature, revocation and the live session
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.Verifier.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	blacklisted, err := s.sessionManager.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if blacklisted {
		return nil, xerrors.ErrSessionExpired
	}

	if _, err := s.sessionManager.GetSession(ctx, claims.Email(), claims.ID); err != nil {
		if errors.Is(err, xerrors.ErrSessionExpired) {
			return nil, xerrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return claims, nil
}

// ========== Logout ==========

// Logout invalidates the current session and revokes its token
func (s *AuthService) Logout(ctx context.Context, customerID, email, jti string) error {
	if err := s.sessionManager.InvalidateSession(ctx, email, jti); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	if err := s.sessionManager.BlacklistToken(ctx, jti, s.jwtManager.Generator.Ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	// Tear down any websocket connections still riding this session.
	if s.hub != nil {
		s.hub.ForceLogout(customerID, jti, "logged_out")
	}

	s.logger.Info("logout", zap.String("email", email), zap.String("jti", jti))

	return nil
}

// ========== Account ==========

// Me returns the account behind a validated token
func (s *AuthService) Me(ctx context.Context, email string) (*auth.User, error) {
	if s.authRepo == nil {
		return nil, fmt.Errorf("%w: account service is currently unavailable", xerrors.ErrUnavailable)
	}

	user, err := s.authRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
