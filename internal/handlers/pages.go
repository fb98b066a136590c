package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func (h *Handler) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", nil)
}
