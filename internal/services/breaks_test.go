package services

import (
	"context"
	"testing"
	"time"

	"breaktrack/internal/models"
	"breaktrack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := ParseTimestamp(s)
	require.NoError(t, err)
	return v
}

func TestBreakLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewBreakService(db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")

	b, err := svc.Start(ctx, alice.ID, ts(t, "2024-01-01T09:00:00"), nil)
	require.NoError(t, err)
	assert.Equal(t, models.BreakOpen, b.State())
	assert.Nil(t, b.EndTime)
	assert.Nil(t, b.Duration)

	end := ts(t, "2024-01-01T09:15:00")
	b, err = svc.Stop(ctx, &alice, b.ID, &end)
	require.NoError(t, err)
	assert.Equal(t, models.BreakClosed, b.State())
	assert.EqualValues(t, 900, *b.Duration)

	var stored models.Break
	require.NoError(t, db.First(&stored, b.ID).Error)
	require.NotNil(t, stored.Duration)
	assert.EqualValues(t, 900, *stored.Duration)
	assert.True(t, end.Equal(*stored.EndTime))

	later := ts(t, "2024-01-01T09:20:30")
	b, err = svc.Stop(ctx, &alice, b.ID, &later)
	require.NoError(t, err)
	assert.EqualValues(t, 1230, *b.Duration, "closing again recomputes from the original start")

	b, err = svc.Stop(ctx, &alice, b.ID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1230, *b.Duration)
}

func TestBreakStart_Closed(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")

	end := ts(t, "2024-01-01T09:00:42")
	b, err := NewBreakService(db).Start(ctx, alice.ID, ts(t, "2024-01-01T09:00:00"), &end)
	require.NoError(t, err)
	assert.EqualValues(t, 42, *b.Duration)
}

func TestBreakStop_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewBreakService(db)
	admin := testutil.Admin(t, db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")
	bob := testutil.CreateEmployee(t, db, "bob", "pw")

	b, err := svc.Start(ctx, alice.ID, ts(t, "2024-01-01T09:00:00"), nil)
	require.NoError(t, err)

	end := ts(t, "2024-01-01T09:10:00")
	_, err = svc.Stop(ctx, &bob, b.ID, &end)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Stop(ctx, &admin, b.ID, &end)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Stop(ctx, &alice, 9999, &end)
	assert.ErrorIs(t, err, ErrNotFound)

	var stored models.Break
	require.NoError(t, db.First(&stored, b.ID).Error)
	assert.Nil(t, stored.EndTime)
}

func TestBreakDelete_OwnerOrAdmin(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewBreakService(db)
	admin := testutil.Admin(t, db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")
	bob := testutil.CreateEmployee(t, db, "bob", "pw")

	first, err := svc.Start(ctx, alice.ID, ts(t, "2024-01-01T09:00:00"), nil)
	require.NoError(t, err)
	second, err := svc.Start(ctx, alice.ID, ts(t, "2024-01-01T13:00:00"), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, &bob, first.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, &alice, first.ID))
	require.NoError(t, svc.Delete(ctx, &admin, second.ID))
	assert.ErrorIs(t, svc.Delete(ctx, &alice, first.ID), ErrNotFound)

	var audit []models.AuditLog
	require.NoError(t, db.Where("entity = ?", "break").Find(&audit).Error)
	require.Len(t, audit, 1, "only the admin deletion of someone else's break is audited")
	assert.Equal(t, second.ID, audit[0].EntityID)
}

func TestBreakListForUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewBreakService(db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")
	bob := testutil.CreateEmployee(t, db, "bob", "pw")

	_, err := svc.Start(ctx, alice.ID, ts(t, "2024-01-02T09:00:00"), nil)
	require.NoError(t, err)
	_, err = svc.Start(ctx, alice.ID, ts(t, "2024-01-01T09:00:00"), nil)
	require.NoError(t, err)
	_, err = svc.Start(ctx, bob.ID, ts(t, "2024-01-01T09:00:00"), nil)
	require.NoError(t, err)

	breaks, err := svc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, breaks, 2)
	assert.Equal(t, "2024-01-01T09:00:00", FormatTimestamp(breaks[0].StartTime))
	for _, b := range breaks {
		assert.Equal(t, alice.ID, b.UserID)
	}
}

func TestBreakBrowse_Filters(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewBreakService(db)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")
	bob := testutil.CreateEmployee(t, db, "bob", "pw")

	for _, s := range []string{"2024-01-01T09:00:00", "2024-01-05T23:59:59", "2024-01-06T00:00:00"} {
		_, err := svc.Start(ctx, alice.ID, ts(t, s), nil)
		require.NoError(t, err)
	}
	_, err := svc.Start(ctx, bob.ID, ts(t, "2024-01-03T12:00:00"), nil)
	require.NoError(t, err)

	all, err := svc.Browse(ctx, BreakFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2024-01-06T00:00:00", FormatTimestamp(all[0].StartTime), "newest first")
	require.NotNil(t, all[0].User)
	assert.Equal(t, "alice", all[0].User.Username)

	from, _ := ParseDate("2024-01-02")
	to, _ := ParseDate("2024-01-05")
	ranged, err := svc.Browse(ctx, BreakFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 2, "date_to includes its whole day")
	assert.Equal(t, "2024-01-05T23:59:59", FormatTimestamp(ranged[0].StartTime))

	uid := bob.ID
	mine, err := svc.Browse(ctx, BreakFilter{UserID: &uid})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bob.ID, mine[0].UserID)
}
