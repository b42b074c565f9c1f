package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

const userIDKey = "user_id"

// RequireUser resolves the session token from the cookie or a bearer
// Authorization header and stores the user id for the handlers. Requests
// without a valid session are rejected with 401.
func RequireUser(provider ports.IdentityProvider, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		userID, err := provider.UserID(c.Request.Context(), sessionToken(c, cookieName))
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				zap.L().Error("failed to resolve session", zap.Error(err))
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the id set by RequireUser, 0 when absent.
func GetUserID(c *gin.Context) uint64 {
	if v, exists := c.Get(userIDKey); exists {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

func sessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
