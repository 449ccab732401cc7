package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	timeclockmocks "github.com/gilrsantana/pontolegal/internal/domain/timeclock/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsJobImmediatelyAndOnTick(t *testing.T) {
	s := NewScheduler(discardLogger())

	var runs atomic.Int32
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_JobErrorDoesNotStopSchedule(t *testing.T) {
	s := NewScheduler(discardLogger())

	var runs atomic.Int32
	s.AddJob("failing", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	})

	s.Start()
	defer s.Stop()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_IgnoresJobsAddedAfterStart(t *testing.T) {
	s := NewScheduler(discardLogger())
	s.Start()
	defer s.Stop()

	s.AddJob("late", time.Millisecond, func(ctx context.Context) error { return nil })

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.jobs)
}

func TestComplianceJobs_EvaluatePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := timeclockmocks.NewMockService(ctrl)
	svc.EXPECT().EvaluatePending(gomock.Any()).Return(2, nil)
	svc.EXPECT().EvaluatePending(gomock.Any()).Return(0, errors.New("db down"))

	jobs := NewComplianceJobs(svc, time.Minute, discardLogger())

	assert.NoError(t, jobs.EvaluatePending(context.Background()))
	assert.EqualError(t, jobs.EvaluatePending(context.Background()), "db down")
}

func TestComplianceJobs_RegisterJobs(t *testing.T) {
	s := NewScheduler(discardLogger())
	NewComplianceJobs(nil, 0, discardLogger()).RegisterJobs(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if assert.Len(t, s.jobs, 1) {
		assert.Equal(t, "evaluate_pending_punches", s.jobs[0].Name)
		assert.Equal(t, 5*time.Minute, s.jobs[0].Interval)
	}
}
