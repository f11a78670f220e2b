package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"docvault/internal/auth"
	"docvault/internal/models"
	"docvault/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	creds *auth.Store
	mgr   *session.Manager
}

func NewAuthHandler(creds *auth.Store, mgr *session.Manager) *AuthHandler {
	return &AuthHandler{creds: creds, mgr: mgr}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Некорректные данные"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Укажите логин и пароль"})
		return
	}

	role := models.UserRole(form.Role)

	// роль — закрытый список, произвольные строки в БД не пропускаем
	switch role {
	case models.RoleUser, models.RoleAdmin:
		// ок
	default:
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Неверная роль"})
		return
	}

	if _, err := h.creds.Register(form.Username, form.Password, role); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			render(c, http.StatusBadRequest, "register.html", gin.H{
				"error": "Пароль: минимум 8 символов, заглавная и строчная буквы, спецсимвол",
			})
		case errors.Is(err, auth.ErrDuplicateUsername):
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Пользователь уже существует"})
		default:
			log.Printf("register failed: %v", err)
			failPage(c)
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Некорректные данные"})
		return
	}

	user, err := h.creds.Verify(strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Неверный логин или пароль"})
			return
		}
		log.Printf("login failed: %v", err)
		failPage(c)
		return
	}

	sid := h.mgr.Create(user.ID)

	sess := sessions.Default(c)
	sess.Set("sid", sid)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	if sid, ok := sess.Get("sid").(string); ok {
		h.mgr.Destroy(sid)
	}
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
