package handlers

import (
	"errors"
	"net/http"
	"strings"

	"breaktrack/internal/middleware"
	"breaktrack/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// safeNext only allows local absolute paths as post-login targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if u := middleware.CurrentUser(c); u.IsAuthenticated() {
		c.Redirect(http.StatusFound, homeFor(u))
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"next": safeNext(c.Query("next"))})
}

func (h *Handler) Login(c *gin.Context) {
	if u := middleware.CurrentUser(c); u.IsAuthenticated() {
		c.Redirect(http.StatusFound, homeFor(u))
		return
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"notices": []string{"Invalid form data"}})
		return
	}
	next := safeNext(c.Query("next"))
	if next == "" {
		next = safeNext(form.Next)
	}

	user, err := h.svc.Auth.Authenticate(c.Request.Context(), strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		if !errors.Is(err, services.ErrValidation) && !errors.Is(err, services.ErrInvalidCredentials) {
			serverError(c, err)
			return
		}
		render(c, http.StatusOK, "login.html", gin.H{
			"notices":  []string{notice(err)},
			"next":     next,
			"username": form.Username,
		})
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUserID, user.ID)
	_ = sess.Save()

	if next == "" {
		next = homeFor(user)
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
