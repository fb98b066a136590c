package services

import (
	"context"
	"testing"

	"breaktrack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewAuthService(db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")

	u, err := svc.Authenticate(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "pw123")
	assert.ErrorIs(t, err, ErrValidation)

	admin, err := svc.Authenticate(ctx, "admin", testutil.AdminPassword)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestPrincipal(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewAuthService(db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")

	u, err := svc.Principal(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.Principal(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
