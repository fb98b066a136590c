package middleware

import (
	"errors"

	"breaktrack/internal/logger"
	"breaktrack/internal/models"
	"breaktrack/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionUserID  = "user_id"
	currentUserKey = "CurrentUser"
)

// InjectUser resolves the session principal. A session pointing at a user that no
// longer exists is cleared and the request continues anonymously.
func InjectUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserID).(uint); ok && uid > 0 {
			user, err := auth.Principal(c.Request.Context(), uid)
			switch {
			case err == nil:
				c.Set(currentUserKey, user)
			case errors.Is(err, services.ErrNotFound):
				sess.Clear()
				_ = sess.Save()
			default:
				logger.FromGin(c).Error("failed to load session user", zap.Uint("user_id", uid), zap.Error(err))
			}
		}

		c.Next()
	}
}

// CurrentUser returns the principal resolved by InjectUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// SetCurrentUser is used by tests and handlers that authenticate mid-request.
func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(currentUserKey, u)
}
