// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"supportdesk-service/internal/domain/auth"
	"supportdesk-service/internal/middleware"
	xerrors "supportdesk-service/internal/pkg/errors"
	"supportdesk-service/internal/pkg/response"
	authUsecase "supportdesk-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Registration ==========

// Register handles account registration (public endpoint)
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			response.Conflict(c, "Email already registered")
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "User registration service is currently unavailable.")
			return
		}
		h.logger.Error("registration failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", resp)
}

// ========== Login ==========

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.Unauthorized(c, "Incorrect email or password")
			return
		}
		if errors.Is(err, xerrors.ErrRateLimited) {
			response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "User login service is currently unavailable.")
			return
		}
		h.logger.Error("login failed",
			zap.String("email", req.Email),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", resp)
}

// ========== Logout ==========

// Logout handles user logout (requires auth)
func (h *AuthHandler) Logout(c *gin.Context) {
	customerID := middleware.MustGetCustomerID(c)
	email := middleware.MustGetEmail(c)
	jti := middleware.MustGetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), customerID, email, jti); err != nil {
		h.logger.Error("logout failed",
			zap.String("email", email),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}

	response.Success(c, http.StatusOK, "logout successful", nil)
}

// ========== Profile ==========

// GetMe returns the current account (requires auth)
func (h *AuthHandler) GetMe(c *gin.Context) {
	email := middleware.MustGetEmail(c)

	user, err := h.authService.Me(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "account not found")
			return
		}
		if errors.Is(err, xerrors.ErrUnavailable) {
			response.ServiceUnavailable(c, "Account service is currently unavailable.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get account", err)
		return
	}

	response.Success(c, http.StatusOK, "account retrieved", user)
}
