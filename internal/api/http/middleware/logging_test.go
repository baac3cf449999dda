package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/notekeeper-server/internal/testutil"
)

func TestLogging_Handle_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewLogging(testutil.MakeNoopLogger())

	engine := gin.New()
	engine.Use(l.Handle)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
