package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
)

// ComplianceJobs re-runs compliance evaluation for punches whose inline
// evaluation did not complete.
type ComplianceJobs struct {
	timeClock timeclock.Service
	interval  time.Duration
	logger    *slog.Logger
}

func NewComplianceJobs(timeClock timeclock.Service, interval time.Duration, logger *slog.Logger) *ComplianceJobs {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ComplianceJobs{timeClock: timeClock, interval: interval, logger: logger}
}

func (j *ComplianceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("evaluate_pending_punches", j.interval, j.EvaluatePending)
}

func (j *ComplianceJobs) EvaluatePending(ctx context.Context) error {
	n, err := j.timeClock.EvaluatePending(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		j.logger.Info("cron: evaluated pending punches", "count", n)
	}
	return nil
}
