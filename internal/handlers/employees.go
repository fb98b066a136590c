package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"breaktrack/internal/middleware"
	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
)

type employeeForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f employeeForm) input() services.EmployeeInput {
	return services.EmployeeInput{Username: f.Username, Email: f.Email, Password: f.Password}
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.Employees.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "employees.html", gin.H{"employees": employees})
}

func (h *Handler) ShowCreateEmployee(c *gin.Context) {
	render(c, http.StatusOK, "employee_form.html", gin.H{"action": "/admin/employee/create"})
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var form employeeForm
	_ = c.ShouldBind(&form)

	actor := middleware.CurrentUser(c)
	_, err := h.svc.Employees.Create(c.Request.Context(), actor.ID, form.input())
	switch {
	case err == nil:
		middleware.Flash(c, "Employee created successfully")
		c.Redirect(http.StatusFound, "/admin/employees")
	case errors.Is(err, services.ErrRoleNotFound):
		flashError(c, err)
		c.Redirect(http.StatusFound, "/admin/employees")
	default:
		flashError(c, err)
		c.Redirect(http.StatusFound, "/admin/employee/create")
	}
}

func (h *Handler) ShowEditEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}

	employee, err := h.svc.Employees.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	breaks, err := h.svc.Breaks.ListForUser(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "employee_form.html", gin.H{
		"employee": employee,
		"breaks":   breaks,
		"action":   fmt.Sprintf("/admin/employee/%d/edit", id),
	})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}

	var form employeeForm
	_ = c.ShouldBind(&form)

	actor := middleware.CurrentUser(c)
	_, err := h.svc.Employees.Update(c.Request.Context(), actor.ID, id, form.input())
	switch {
	case err == nil:
		middleware.Flash(c, "Employee updated successfully")
		c.Redirect(http.StatusFound, "/admin/employees")
	case errors.Is(err, services.ErrNotFound):
		c.String(http.StatusNotFound, "Employee not found")
	default:
		flashError(c, err)
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/employee/%d/edit", id))
	}
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.svc.Employees.Delete(c.Request.Context(), actor.ID, id)
	switch {
	case err == nil:
		middleware.Flash(c, "Employee deleted successfully")
	case errors.Is(err, services.ErrNotFound):
		c.String(http.StatusNotFound, "Employee not found")
		return
	default:
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/admin/employees")
}
