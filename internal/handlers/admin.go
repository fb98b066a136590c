package handlers

import (
	"net/http"
	"strconv"
	"time"

	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminDashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard.Stats(c.Request.Context(), time.Now())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{"stats": stats})
}

// ListBreaks is the filtered break browser. Unparseable filters are dropped with a
// notice instead of failing the page.
func (h *Handler) ListBreaks(c *gin.Context) {
	var (
		filter  services.BreakFilter
		notices []string
	)

	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			uid := uint(id)
			filter.UserID = &uid
		} else {
			notices = append(notices, "Invalid user filter")
		}
	}
	if raw := c.Query("date_from"); raw != "" {
		if d, err := services.ParseDate(raw); err == nil {
			filter.From = &d
		} else {
			notices = append(notices, "Invalid date format")
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if d, err := services.ParseDate(raw); err == nil {
			filter.To = &d
		} else {
			notices = append(notices, "Invalid date format")
		}
	}

	ctx := c.Request.Context()
	breaks, err := h.svc.Breaks.Browse(ctx, filter)
	if err != nil {
		serverError(c, err)
		return
	}
	users, err := h.svc.Employees.List(ctx)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "breaks.html", gin.H{
		"breaks":   breaks,
		"users":    users,
		"userID":   c.Query("user_id"),
		"dateFrom": c.Query("date_from"),
		"dateTo":   c.Query("date_to"),
		"notices":  notices,
	})
}
