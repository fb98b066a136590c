package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs shows the latest admin actions.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.svc.Audit.Recent(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "audit.html", gin.H{"logs": logs})
}
