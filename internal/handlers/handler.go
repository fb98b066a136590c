package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"breaktrack/internal/logger"
	"breaktrack/internal/middleware"
	"breaktrack/internal/models"
	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *services.Services
}

func New(svc *services.Services) *Handler {
	return &Handler{svc: svc}
}

// homeFor is where a principal lands after login.
func homeFor(u *models.User) string {
	if u.IsAdministrator() {
		return "/admin"
	}
	return "/dashboard"
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// notice turns a service error into the text shown to the user.
func notice(err error) string {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, services.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, services.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, services.ErrDuplicate):
		return "Username or email already exists"
	case errors.Is(err, services.ErrRoleNotFound):
		return "Employee role not found"
	case errors.Is(err, services.ErrAdminProtected):
		return "Cannot delete admin user"
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, services.ErrNotFound):
		return "Not found"
	default:
		return "Something went wrong, please try again"
	}
}

// isExpected reports whether err is a domain outcome rather than a fault.
func isExpected(err error) bool {
	for _, target := range []error{
		services.ErrValidation,
		services.ErrDuplicate,
		services.ErrNotFound,
		services.ErrForbidden,
		services.ErrRoleNotFound,
		services.ErrInvalidCredentials,
		services.ErrAdminProtected,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// flashError queues the notice for err, logging it first when it is unexpected.
func flashError(c *gin.Context, err error) {
	if !isExpected(err) {
		logger.FromGin(c).Error("request failed", zap.Error(err))
	}
	middleware.Flash(c, notice(err))
}

func serverError(c *gin.Context, err error) {
	logger.FromGin(c).Error("request failed", zap.Error(err))
	c.String(http.StatusInternalServerError, "Internal server error")
}
