package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth отправляет анонима на /login. Вешается после InjectUser.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
