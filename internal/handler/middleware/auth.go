package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("missing bearer token")

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const ctxAccountIDKey = "account_id"

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireAuth resolves the calling account from a Bearer token. Every
// mutating ledger call acts as exactly one account.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}
		acc, err := claims.Account()
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAccountIDKey, acc)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAccountID(c *gin.Context) (account.ID, bool) {
	v, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return "", false
	}

	acc, ok := v.(account.ID)
	return acc, ok
}

// SetAccountID is used by tests that bypass token validation.
func SetAccountID(c *gin.Context, acc account.ID) {
	c.Set(ctxAccountIDKey, acc)
}
