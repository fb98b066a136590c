package services

import (
	"context"
	"testing"
	"time"

	"breaktrack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateEmployee(t, db, "alice", "pw123")
	testutil.CreateEmployee(t, db, "bob", "pw")
	breaks := NewBreakService(db)

	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	mk := func(start, end string) {
		var endPtr *time.Time
		if end != "" {
			e := ts(t, end)
			endPtr = &e
		}
		_, err := breaks.Start(ctx, alice.ID, ts(t, start), endPtr)
		require.NoError(t, err)
	}
	mk("2024-01-01T09:00:00", "2024-01-01T09:10:00")
	mk("2024-01-02T09:00:00", "2024-01-02T09:20:00")
	mk("2024-01-02T14:00:00", "")

	st, err := NewDashboardService(db).Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.TotalEmployees)
	assert.EqualValues(t, 3, st.TotalBreaks)
	assert.EqualValues(t, 2, st.BreaksToday)
	assert.EqualValues(t, 15, st.AvgBreakMinutes)
	require.Len(t, st.RecentBreaks, 3)
	assert.Equal(t, "2024-01-02T14:00:00", FormatTimestamp(st.RecentBreaks[0].StartTime))
	require.NotNil(t, st.RecentBreaks[0].User)
}

func TestDashboardStats_Empty(t *testing.T) {
	st, err := NewDashboardService(testutil.NewDB(t)).Stats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, st.TotalEmployees)
	assert.Zero(t, st.AvgBreakMinutes)
	assert.Empty(t, st.RecentBreaks)
}
