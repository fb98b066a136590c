package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"breaktrack/internal/config"
	"breaktrack/internal/handlers"
	"breaktrack/internal/logger"
	"breaktrack/internal/middleware"
	"breaktrack/internal/services"
	"breaktrack/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionName = "breaktrack_session"

const sessionMaxAge = 7 * 24 * 60 * 60

// formatTime renders a time.Time or *time.Time; nil and zero values render empty.
func formatTime(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("2006-01-02 15:04:05")
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatTime(*t)
	}
	return ""
}

func formatDate(t time.Time) string {
	return t.UTC().Format(services.DateLayout)
}

// formatSeconds renders a second count as H:MM:SS.
func formatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// formatDuration is formatSeconds for the nullable duration of an open break.
func formatDuration(d *int64) string {
	if d == nil {
		return "in progress"
	}
	return formatSeconds(*d)
}

func templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"formatTime":     formatTime,
		"formatDate":     formatDate,
		"formatSeconds":  formatSeconds,
		"formatDuration": formatDuration,
	}).ParseFS(web.Templates, "templates/*.html")
}

func NewRouter(cfg *config.Config, svc *services.Services, log *zap.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestIDMiddleware(), logger.GinMiddleware(log), logger.Recovery(log))

	tmpl, err := templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(middleware.InjectUser(svc.Auth))

	h := handlers.New(svc)

	r.GET("/", h.Index)

	// auth
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", middleware.RequireAuth(), h.Logout)

	r.GET("/dashboard", middleware.RequireAuth(), h.Dashboard)

	// admin
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.AdminDashboard)

		admin.GET("/employees", h.ListEmployees)
		admin.GET("/employee/create", h.ShowCreateEmployee)
		admin.POST("/employee/create", h.CreateEmployee)
		admin.GET("/employee/:id/edit", h.ShowEditEmployee)
		admin.POST("/employee/:id/edit", h.UpdateEmployee)
		admin.POST("/employee/:id/delete", h.DeleteEmployee)

		admin.GET("/breaks", h.ListBreaks)

		admin.GET("/reports", h.ListReports)
		admin.POST("/reports", h.CreateReport)
		admin.GET("/report/:id", h.ShowReport)

		admin.GET("/audit", h.ListAuditLogs)
	}

	// json api
	api := r.Group("/api")
	api.Use(middleware.RequireAPIAuth())
	{
		api.GET("/breaks", h.APIListBreaks)
		api.POST("/breaks", h.APICreateBreak)
		api.PUT("/breaks/:id", h.APIUpdateBreak)
		api.DELETE("/breaks/:id", h.APIDeleteBreak)
		api.GET("/achievements", h.APIAchievements)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
