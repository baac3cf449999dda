package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/testutil"
)

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return postJSONMethod(t, engine, http.MethodPost, path, body)
}

func postJSONMethod(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func authEngine(service *authServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuth(service, testutil.MakeNoopLogger())
	engine := gin.New()
	engine.POST("/users/register", h.Register)
	engine.POST("/users/signin", h.SignIn)
	return engine
}

func TestAuth_Register(t *testing.T) {
	userID := uuid.New()

	service := &authServiceMock{}
	service.On("Register", mock.Anything, "a@b.c", "Alice", "password123").
		Return(model.User{ID: userID, Email: "a@b.c", Name: "Alice", PasswordHash: "hash"}, nil)

	w := postJSON(t, authEngine(service), "/users/register", gin.H{
		"email":    "a@b.c",
		"name":     "Alice",
		"password": "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp["_id"])
	assert.Equal(t, "a@b.c", resp["email"])
	assert.Equal(t, "Alice", resp["name"])
	assert.NotContains(t, resp, "passwordHash")
	assert.NotContains(t, resp, "password")
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	service := &authServiceMock{}
	service.On("Register", mock.Anything, "a@b.c", "Alice", "password123").
		Return(model.User{}, model.ErrDuplicateEmail)

	w := postJSON(t, authEngine(service), "/users/register", gin.H{
		"email":    "a@b.c",
		"name":     "Alice",
		"password": "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "A user with that email already exists!")
}

func TestAuth_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    gin.H
		wantMsg string
	}{
		{
			name:    "missing email",
			body:    gin.H{"name": "Alice", "password": "password123"},
			wantMsg: "E-Mail is required.",
		},
		{
			name:    "invalid email",
			body:    gin.H{"email": "not-an-email", "name": "Alice", "password": "password123"},
			wantMsg: "E-Mail must be a valid email.",
		},
		{
			name:    "short password",
			body:    gin.H{"email": "a@b.c", "name": "Alice", "password": "short"},
			wantMsg: "Password is required and must be at least 8 characters long.",
		},
		{
			name:    "missing name",
			body:    gin.H{"email": "a@b.c", "password": "password123"},
			wantMsg: "Name is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &authServiceMock{}

			w := postJSON(t, authEngine(service), "/users/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			service.AssertNotCalled(t, "Register")
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	service := &authServiceMock{}
	service.On("SignIn", mock.Anything, "a@b.c", "password123").Return("jwt-token", nil)

	w := postJSON(t, authEngine(service), "/users/signin", gin.H{
		"email":    "a@b.c",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt-token"}`, w.Body.String())
}

func TestAuth_SignIn_InvalidCredentials(t *testing.T) {
	service := &authServiceMock{}
	service.On("SignIn", mock.Anything, "a@b.c", "wrongpassword").
		Return("", model.ErrInvalidCredentials)

	w := postJSON(t, authEngine(service), "/users/signin", gin.H{
		"email":    "a@b.c",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "E-Mail or Password is incorrect.")
}
