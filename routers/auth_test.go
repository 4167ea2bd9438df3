package routers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"learnhub/models"
	"learnhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRequest(email, password string) *http.Request {
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegisterThenLogin(t *testing.T) {
	e := newTestEnv(t)

	var created map[string]interface{}
	e.decode(http.MethodPost, "/auth/register", "", map[string]string{
		"email":     "New@Example.com",
		"password":  "secret99",
		"full_name": "New Learner",
	}, http.StatusCreated, &created)
	assert.Equal(t, "new@example.com", created["email"])
	assert.Equal(t, true, created["is_active"])
	assert.Equal(t, false, created["is_admin"])
	assert.NotContains(t, created, "hashed_password")

	status, raw := e.do(http.MethodPost, "/auth/register", "", map[string]string{
		"email": "new@example.com", "password": "another1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", detail(t, raw))

	status, raw = e.send(tokenRequest("new@example.com", "secret99"))
	require.Equal(t, http.StatusOK, status, string(raw))
	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresAt   int64  `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(raw, &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotZero(t, tok.ExpiresAt)

	var me models.User
	e.decode(http.MethodGet, "/users/me", tok.AccessToken, nil, http.StatusOK, &me)
	assert.Equal(t, "new@example.com", me.Email)
	assert.Equal(t, "New Learner", me.FullName)
}

func TestToken_Rejections(t *testing.T) {
	e := newTestEnv(t)

	status, raw := e.send(tokenRequest("user@example.com", "wrong-password"))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Incorrect email or password", detail(t, raw))

	status, raw = e.send(tokenRequest("nobody@example.com", testutil.Password))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Incorrect email or password", detail(t, raw))

	require.NoError(t, e.db.Model(e.user).Update("is_active", false).Error)
	status, raw = e.send(tokenRequest("user@example.com", testutil.Password))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Inactive user", detail(t, raw))

	// Tokens issued before deactivation stop working too.
	status, raw = e.do(http.MethodGet, "/users/me", e.userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Inactive user", detail(t, raw))
}

func TestToken_JSONBody(t *testing.T) {
	e := newTestEnv(t)

	var tok map[string]interface{}
	e.decode(http.MethodPost, "/auth/token", "", map[string]string{
		"username": "admin@example.com", "password": testutil.Password,
	}, http.StatusOK, &tok)
	assert.NotEmpty(t, tok["access_token"])
}

func TestBearerHeaderChecks(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", "Not authenticated"},
		{"wrong scheme", "Basic abc", "Invalid Authorization header format"},
		{"garbage token", "Bearer not-a-jwt", "Could not validate credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			status, raw := e.send(req)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tt.want, detail(t, raw))
		})
	}
}
