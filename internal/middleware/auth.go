package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const NoPermissionNotice = "You do not have permission to access this page"

// RequireAuth sends anonymous page requests to the login form, remembering where
// they were going.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPIAuth rejects anonymous API calls with 401.
func RequireAPIAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin bounces non-admins to their dashboard with a notice. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdministrator() {
			Flash(c, NoPermissionNotice)
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Flash queues a one-shot notice for the next rendered page.
func Flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// Flashes drains queued notices.
func Flashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
