package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Authenticate extracts the caller identity from the Authorization header
// and injects it into the request context.
//
// How much the extracted identity is trusted depends on the injected
// model.TokenParser; the default deployment decodes the token payload
// without verifying its signature.
type Authenticate struct {
	parser         model.TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(parser model.TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{parser: parser, contextManager: contextManager, logger: logger}
}

// Handle parses the bearer token and attaches the user ID to the request context.
func (m *Authenticate) Handle(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"errors": []gin.H{{"msg": "Authorization token is missing."}},
		})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.parser.Parse(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: failed to parse token", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"errors": []gin.H{{"msg": "Authorization token is invalid."}},
		})
		return
	}

	ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), claims.UserID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
