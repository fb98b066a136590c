package handlers

import (
	"errors"
	"net/http"

	"breaktrack/internal/middleware"
	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
)

type reportForm struct {
	Name        string `form:"report_name"`
	Type        string `form:"report_type"`
	Description string `form:"description"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.svc.Reports.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "reports.html", gin.H{"reports": reports})
}

func (h *Handler) CreateReport(c *gin.Context) {
	var form reportForm
	_ = c.ShouldBind(&form)

	actor := middleware.CurrentUser(c)
	_, err := h.svc.Reports.Create(c.Request.Context(), actor.ID, services.ReportInput{
		Name:        form.Name,
		Type:        form.Type,
		Description: form.Description,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
	})
	if err != nil {
		flashError(c, err)
	} else {
		middleware.Flash(c, "Report created successfully")
	}
	c.Redirect(http.StatusFound, "/admin/reports")
}

func (h *Handler) ShowReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Report not found")
		return
	}

	view, err := h.svc.Reports.View(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "report_view.html", gin.H{
		"report":     view.Report,
		"statistics": view.Statistics,
	})
}
