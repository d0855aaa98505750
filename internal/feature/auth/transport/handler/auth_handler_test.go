package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroform_backend/internal/feature/auth/usecase"
	"agroform_backend/internal/shared/ratelimiter"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc  func(ctx context.Context, email, username, password string) error
	LoginFunc   func(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error)
	RefreshFunc func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	LogoutFunc  func(ctx context.Context, refreshToken string) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, username, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, username, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, meta)
	}
	return &usecase.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &usecase.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

// newLimiter returns a fresh attempt limiter matching the production settings.
func newLimiter() *ratelimiter.AttemptLimiter {
	return ratelimiter.NewAttemptLimiter(5, 10*time.Minute)
}

// doJSON runs a handler against a JSON body and returns the recorder.
func doJSON(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("successful signup returns 201", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, username, password string) error {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "test", username)
				assert.Equal(t, "password123", password)
				return nil
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Signup, `{"email":"test@example.com","username":"test","password":"password123"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"User created successfully"}`, w.Body.String())
	})

	t.Run("validation errors are keyed by field", func(t *testing.T) {
		tests := []struct {
			name  string
			body  string
			field string
		}{
			{"missing email", `{"username":"test","password":"password123"}`, "email"},
			{"invalid email", `{"email":"nope","username":"test","password":"password123"}`, "email"},
			{"missing username", `{"email":"a@b.com","password":"password123"}`, "username"},
			{"short password", `{"email":"a@b.com","username":"test","password":"short"}`, "password"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h := NewAuthHandler(&mockAuthUsecase{}, newLimiter())

				w := doJSON(h.Signup, tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)

				var resp map[string][]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp, tt.field, "error should be keyed by field")
			})
		}
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, username, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Signup, `{"email":"dup@example.com","username":"test","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"email":["user with this email already exists"]}`, w.Body.String())
	})

	t.Run("duplicate username returns 400", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, username, password string) error {
				return usecase.ErrUsernameAlreadyExists
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Signup, `{"email":"a@b.com","username":"dup","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "username")
	})

	t.Run("unexpected error returns 500", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, username, password string) error {
				return errors.New("database down")
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Signup, `{"email":"a@b.com","username":"test","password":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login returns the token pair", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error) {
				assert.Equal(t, "test@example.com", email)
				return &usecase.TokenPair{Access: "access-token", Refresh: "refresh-token"}, nil
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Login, `{"email":"test@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"access":"access-token","refresh":"refresh-token","message":"Login successful"}`,
			w.Body.String())
	})

	t.Run("invalid credentials return 401 with a generic message", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error) {
				return nil, usecase.ErrInvalidCredentials
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Login, `{"email":"test@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	})

	t.Run("missing body fields return 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, newLimiter())

		w := doJSON(h.Login, `{"email":"test@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repeated failures are throttled with 429", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error) {
				return nil, usecase.ErrInvalidCredentials
			},
		}
		h := NewAuthHandler(mock, ratelimiter.NewAttemptLimiter(3, time.Minute))

		for i := 0; i < 3; i++ {
			w := doJSON(h.Login, `{"email":"test@example.com","password":"wrong"}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d should still reach the usecase", i+1)
		}

		w := doJSON(h.Login, `{"email":"test@example.com","password":"wrong"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "limit reached, should throttle")
	})

	t.Run("successful login resets the failure counter", func(t *testing.T) {
		failing := true
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string, meta usecase.LoginMeta) (*usecase.TokenPair, error) {
				if failing {
					return nil, usecase.ErrInvalidCredentials
				}
				return &usecase.TokenPair{Access: "a", Refresh: "r"}, nil
			},
		}
		h := NewAuthHandler(mock, ratelimiter.NewAttemptLimiter(3, time.Minute))

		for i := 0; i < 2; i++ {
			doJSON(h.Login, `{"email":"test@example.com","password":"wrong"}`)
		}

		failing = false
		w := doJSON(h.Login, `{"email":"test@example.com","password":"right"}`)
		require.Equal(t, http.StatusOK, w.Code)

		failing = true
		for i := 0; i < 3; i++ {
			w := doJSON(h.Login, `{"email":"test@example.com","password":"wrong"}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "counter should have been reset")
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("successful refresh returns a new pair", func(t *testing.T) {
		mock := &mockAuthUsecase{
			RefreshFunc: func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
				assert.Equal(t, "old-refresh", refreshToken)
				return &usecase.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Refresh, `{"refresh":"old-refresh"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"access":"new-access","refresh":"new-refresh"}`, w.Body.String())
	})

	t.Run("rejected tokens return 401", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
		}{
			{"unknown token", usecase.ErrInvalidRefreshToken},
			{"revoked session", usecase.ErrSessionRevoked},
			{"expired session", usecase.ErrSessionExpired},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mock := &mockAuthUsecase{
					RefreshFunc: func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
						return nil, tt.err
					},
				}
				h := NewAuthHandler(mock, newLimiter())

				w := doJSON(h.Refresh, `{"refresh":"sometoken"}`)

				assert.Equal(t, http.StatusUnauthorized, w.Code)
				assert.JSONEq(t, `{"error":"invalid refresh token"}`, w.Body.String())
			})
		}
	})

	t.Run("missing refresh field returns 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, newLimiter())

		w := doJSON(h.Refresh, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("successful logout returns 200", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				assert.Equal(t, "the-token", refreshToken)
				return nil
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Logout, `{"refresh":"the-token"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Logged out"}`, w.Body.String())
	})

	t.Run("unknown token returns 401", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				return usecase.ErrInvalidRefreshToken
			},
		}
		h := NewAuthHandler(mock, newLimiter())

		w := doJSON(h.Logout, `{"refresh":"unknown"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
