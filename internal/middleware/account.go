package middleware

import (
	"context"
	"errors"
	"net/http"

	"campushub/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountStatusStore looks up the current status of an account.
type AccountStatusStore interface {
	Status(ctx context.Context, userID uint) (string, error)
}

// ActiveAccount rejects tokens whose account has been banned or removed since the token was
// issued. It must run after AuthRequired.
func ActiveAccount(store AccountStatusStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		status, err := store.Status(c.Request.Context(), userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
			return
		case err != nil:
			log.Error("account status lookup failed", zap.Uint("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		case status == domain.UserStatusBanned:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "this account has been banned"})
			return
		}
		c.Next()
	}
}
