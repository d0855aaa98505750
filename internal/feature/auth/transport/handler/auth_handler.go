// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroform_backend/internal/api"
	"agroform_backend/internal/feature/auth/transport/http/dto"
	"agroform_backend/internal/feature/auth/usecase"
	"agroform_backend/internal/shared/ratelimiter"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given credentials.
	Signup(ctx context.Context, email, username, password string) error
	// Login authenticates a user and returns a token pair on success.
	Login(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error)
	// Refresh rotates a refresh token and returns a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth     AuthUsecase
	attempts *ratelimiter.AttemptLimiter
}

// NewAuthHandler creates a new AuthHandler instance.
// The attempt limiter throttles failed logins per client IP.
func NewAuthHandler(auth AuthUsecase, attempts *ratelimiter.AttemptLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, attempts: attempts}
}

// Signup handles the user registration endpoint.
// - binds the request JSON to SignupReq
// - returns 400 with field-keyed errors on validation failure or duplicates
// - returns 201 on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.FieldError("email", err.Error()))
		case errors.Is(err, usecase.ErrUsernameAlreadyExists):
			c.JSON(http.StatusBadRequest, api.FieldError("username", err.Error()))
		default:
			slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signup failed"})
		}
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
}

// Login handles the user login endpoint.
// Failed attempts are counted per client IP; once the window limit is
// hit the endpoint answers 429 until the window expires.
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()
	if !h.attempts.Allow(ip) {
		slog.Warn("login throttled", "remote_addr", ip)
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many login attempts. Try again later."})
		return
	}

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", ip)
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	meta := usecase.LoginMeta{UserAgent: c.Request.UserAgent(), IPAddress: ip}
	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// The generic message prevents user enumeration.
			h.attempts.Fail(ip)
			slog.Warn("login failed", "email", req.Email, "remote_addr", ip)
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", ip)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	h.attempts.Reset(ip)
	slog.Info("user login successful", "email", req.Email, "remote_addr", ip)
	c.JSON(http.StatusOK, api.TokenPairResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		Message: "Login successful",
	})
}

// Refresh handles refresh-token rotation.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken),
			errors.Is(err, usecase.ErrSessionRevoked),
			errors.Is(err, usecase.ErrSessionExpired):
			slog.Warn("token refresh rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		default:
			slog.Error("token refresh failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, api.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Logout revokes the presented refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.FieldErrors(err))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
			return
		}
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}
