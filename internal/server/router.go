package server

import (
	"net/http"

	"docvault/internal/auth"
	"docvault/internal/config"
	"docvault/internal/handlers"
	"docvault/internal/middleware"
	"docvault/internal/session"
	"docvault/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB, mgr *session.Manager) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob(cfg.TemplateGlob)

	// в cookie живёт только непрозрачный sid, всё остальное — на сервере
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("vault_session", store))

	creds := auth.NewStore(db)
	docs := storage.NewDocuments(db)

	r.Use(middleware.InjectUser(mgr, creds))

	authHandler := handlers.NewAuthHandler(creds, mgr)
	docHandler := handlers.NewDocumentHandler(docs, cfg.UploadLimit)

	// ГЛАВНАЯ
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())

	// ДОКУМЕНТЫ
	authed.GET("/upload", docHandler.ShowUpload)
	authed.POST("/upload", docHandler.Upload)
	authed.GET("/documents", docHandler.List)
	authed.GET("/uploads/:filename", docHandler.Download)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
