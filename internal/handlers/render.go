package handlers

import (
	"breaktrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML, passing the principal and pending notices to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u := middleware.CurrentUser(c); u != nil {
		data["CurrentUser"] = u
		data["IsAdmin"] = u.IsAdmin
	}

	notices := middleware.Flashes(c)
	if extra, ok := data["notices"].([]string); ok {
		notices = append(notices, extra...)
	}
	data["notices"] = notices

	c.HTML(status, tmpl, data)
}
