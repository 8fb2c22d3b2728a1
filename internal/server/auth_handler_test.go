package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	pwConfig := setupOperatorEnv(t, "operator", "correct horse battery staple")

	operatorService, err := NewOperatorService(pwConfig)
	require.NoError(t, err)

	return NewAuthHandler(operatorService, setupTestJWTService(t, 24))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := setupAuthHandler(t)

	body := `{"username": "operator", "password": "correct horse battery staple"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response types.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, int64(86400), response.ExpiresIn)
}

func TestAuthHandler_Login_IssuedTokenValidates(t *testing.T) {
	handler := setupAuthHandler(t)

	body := `{"username": "operator", "password": "correct horse battery staple"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	claims, err := handler.jwtService.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.GetSubject())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler := setupAuthHandler(t)

	body := `{"username": "operator", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	handler := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("{ not json"))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := setupAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"username": "operator"}`},
		{name: "missing username", body: `{"password": "secret"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}
