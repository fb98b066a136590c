package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicate          = errors.New("duplicate entity")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrRoleNotFound       = errors.New("employee role not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminProtected     = errors.New("admin users cannot be deleted")

	ErrDuplicateUsername error = &duplicateError{field: "username"}
	ErrDuplicateEmail    error = &duplicateError{field: "email"}
)

type duplicateError struct {
	field string
}

func (e *duplicateError) Error() string        { return e.field + " already exists" }
func (e *duplicateError) Is(target error) bool { return target == ErrDuplicate }

// ValidationError carries a notice that can be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// translate maps gorm sentinel errors onto service errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
