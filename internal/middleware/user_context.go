package middleware

import (
	"employee-management/internal/models"
	"employee-management/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const currentUserKey = "CurrentUser"

// InjectUser loads the account behind the session, if any, for later
// handlers. A session for a deleted account is cleared.
func InjectUser(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserID).(uint); ok && uid > 0 {
			user, err := users.FindByID(c.Request.Context(), uid)
			switch {
			case err != nil:
				log.Warn().Err(err).Uint("user_id", uid).Msg("failed to load session user")
			case user == nil:
				sess.Clear()
				_ = sess.Save()
			default:
				c.Set(currentUserKey, *user)
			}
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
