package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LedgerClaims are the JWT claims issued by the external auth service. The
// subject carries the user ID; tenant and role scope every request.
type LedgerClaims struct {
	TenantID string `json:"tenantID"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve logger from the standard context
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &LedgerClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Check the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			status := http.StatusUnauthorized
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*LedgerClaims)
		if !ok || !token.Valid {
			logger.Warn("Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID := claims.Subject
		if userID == "" || claims.TenantID == "" {
			logger.Error("User ID or tenant ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Store the identity in the standard context
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctxWithTenant := context.WithValue(ctxWithUser, tenantIDKey, claims.TenantID)

		// Add identity to the logger
		enrichedLogger := logger.With(
			slog.String("user_id", userID),
			slog.String("tenant_id", claims.TenantID),
		)

		// Store the *enriched* logger back into the standard context
		ctxWithLogger := context.WithValue(ctxWithTenant, loggerCtxKey, enrichedLogger)

		// Also store in the Gin context for handler helpers
		c.Set(string(userIDKey), userID)
		c.Set(string(tenantIDKey), claims.TenantID)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithLogger)

		c.Next()
	}
}

// TenantGuard ensures the :tenant_id path parameter matches the token's
// tenant. Mismatches answer 404, not 403, so callers cannot probe which
// tenants exist.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathTenantID := c.Param("tenant_id")
		tokenTenantID, ok := GetTenantIDFromContext(c)
		if !ok || pathTenantID == "" || pathTenantID != tokenTenantID {
			GetLoggerFromCtx(c.Request.Context()).Warn("Tenant mismatch on request path")
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.Next()
	}
}
