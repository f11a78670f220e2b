package middleware

import (
	"docvault/internal/auth"
	"docvault/internal/models"
	"docvault/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser резолвит cookie-сессию в пользователя и кладёт его в контекст.
// Любой сбой на этом пути (нет cookie, сессия мертва, пользователь пропал
// из БД) — просто аноним; пайплайн запроса здесь не падает никогда.
func InjectUser(mgr *session.Manager, creds *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if sid, ok := sess.Get("sid").(string); ok && sid != "" {
			if userID, ok := mgr.Resolve(sid); ok {
				if user, err := creds.FindByID(userID); err == nil {
					c.Set(currentUserKey, user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser достаёт пользователя, положенного InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := uVal.(models.User)
	return user, ok
}
