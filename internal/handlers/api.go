package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"breaktrack/internal/logger"
	"breaktrack/internal/middleware"
	"breaktrack/internal/models"
	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type breakResponse struct {
	ID        uint    `json:"id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Duration  *int64  `json:"duration"`
}

func toBreakResponse(b *models.Break) breakResponse {
	resp := breakResponse{
		ID:        b.ID,
		StartTime: services.FormatTimestamp(b.StartTime),
		Duration:  b.Duration,
	}
	if b.EndTime != nil {
		end := services.FormatTimestamp(*b.EndTime)
		resp.EndTime = &end
	}
	return resp
}

type createBreakRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type updateBreakRequest struct {
	EndTime *string `json:"end_time"`
}

type achievementResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// apiError writes err as a JSON error body with the matching status.
func apiError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.FromGin(c).Error("api request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// optionalTimestamp parses s when it is present and non-empty.
func optionalTimestamp(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := services.ParseTimestamp(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) APIListBreaks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	breaks, err := h.svc.Breaks.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		apiError(c, err)
		return
	}

	out := make([]breakResponse, 0, len(breaks))
	for i := range breaks {
		out = append(out, toBreakResponse(&breaks[i]))
	}
	c.JSON(http.StatusOK, gin.H{"breaks": out})
}

func (h *Handler) APICreateBreak(c *gin.Context) {
	var req createBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if req.StartTime == nil || *req.StartTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start time is required"})
		return
	}

	start, err := services.ParseTimestamp(*req.StartTime)
	if err != nil {
		apiError(c, err)
		return
	}
	end, err := optionalTimestamp(req.EndTime)
	if err != nil {
		apiError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	b, err := h.svc.Breaks.Start(c.Request.Context(), user.ID, start, end)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBreakResponse(b))
}

func (h *Handler) APIUpdateBreak(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req updateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	end, err := optionalTimestamp(req.EndTime)
	if err != nil {
		apiError(c, err)
		return
	}

	b, err := h.svc.Breaks.Stop(c.Request.Context(), middleware.CurrentUser(c), id, end)
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBreakResponse(b))
}

func (h *Handler) APIDeleteBreak(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.svc.Breaks.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) APIAchievements(c *gin.Context) {
	user := middleware.CurrentUser(c)
	list, err := h.svc.Achievements.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		apiError(c, err)
		return
	}

	out := make([]achievementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, achievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Points:      a.Points,
			Icon:        a.Icon,
			Unlocked:    a.Unlocked,
		})
	}
	c.JSON(http.StatusOK, gin.H{"achievements": out})
}
