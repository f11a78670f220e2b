package handlers

import (
	"net/http"

	"docvault/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML, которая во все шаблоны прокидывает CurrentUser.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
	}

	c.HTML(status, tmpl, data)
}

// failPage — общая страница ошибки для сбоев хранилища. Деталей
// наружу не отдаём, всё остаётся в логе.
func failPage(c *gin.Context) {
	render(c, http.StatusInternalServerError, "error.html", gin.H{})
}
