package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"breaktrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"/admin/reports":   "/admin/reports",
		"/dashboard?tab=1": "/dashboard?tab=1",
		"":                 "",
		"admin":            "",
		"//evil.example":   "",
		"/\\evil.example":  "",
		"https://evil.com": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeNext(in), in)
	}
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "Username already exists", notice(services.ErrDuplicateUsername))
	assert.Equal(t, "Email already exists", notice(fmt.Errorf("create: %w", services.ErrDuplicateEmail)))
	assert.Equal(t, "Username or email already exists", notice(services.ErrDuplicate))
	assert.Equal(t, "Cannot delete admin user", notice(services.ErrAdminProtected))
	assert.Equal(t, "Invalid date format", notice(&services.ValidationError{Message: "Invalid date format"}))
	assert.Equal(t, "Something went wrong, please try again", notice(errors.New("disk full")))
}

func TestIsExpected(t *testing.T) {
	assert.True(t, isExpected(services.ErrForbidden))
	assert.True(t, isExpected(fmt.Errorf("wrapped: %w", services.ErrNotFound)))
	assert.False(t, isExpected(errors.New("connection reset")))
}

func TestParseID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok = parseID(c)
		assert.False(t, ok, raw)
	}
}
