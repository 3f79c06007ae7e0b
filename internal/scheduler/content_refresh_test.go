package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestContentRefreshScheduler_RunsOnSchedule(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewContentRefreshScheduler(refresher, "@every 1s", zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.True(t, s.IsRunning())
	require.NotNil(t, s.GetNextRunTime())
	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestContentRefreshScheduler_DisabledWithoutSchedule(t *testing.T) {
	s := NewContentRefreshScheduler(&countingRefresher{}, "", nil)

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
	s.Stop()
}

func TestContentRefreshScheduler_InvalidSchedule(t *testing.T) {
	s := NewContentRefreshScheduler(&countingRefresher{}, "every now and then", nil)

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "invalid cron schedule")
	assert.False(t, s.IsRunning())
}

func TestContentRefreshScheduler_StopsWhenContextIsCancelled(t *testing.T) {
	s := NewContentRefreshScheduler(&countingRefresher{}, "*/15 * * * *", nil)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
	s.Stop()
}

func TestContentRefreshScheduler_RunNow(t *testing.T) {
	boom := errors.New("cms unavailable")
	refresher := &countingRefresher{err: boom}
	s := NewContentRefreshScheduler(refresher, "", nil)

	assert.ErrorIs(t, s.RunNow(context.Background()), boom)
	last, err := s.LastRun()
	assert.False(t, last.IsZero())
	assert.ErrorIs(t, err, boom)

	refresher.err = nil
	require.NoError(t, s.RunNow(context.Background()))
	_, err = s.LastRun()
	assert.NoError(t, err)
	assert.Equal(t, int32(2), refresher.calls.Load())
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("*/15 * * * *"))
	assert.NoError(t, ValidateCronSchedule("@hourly"))
	assert.Error(t, ValidateCronSchedule("* * *"))
}

func TestGetCronDescription(t *testing.T) {
	assert.Equal(t, "Every 15 minutes", GetCronDescription("*/15 * * * *"))
	assert.Equal(t, "5 4 * * *", GetCronDescription("5 4 * * *"))
}
