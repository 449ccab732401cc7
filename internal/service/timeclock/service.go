package timeclock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/pkg/lock"
	"github.com/gilrsantana/pontolegal/internal/pkg/metrics"
	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// Config tunes the registration service.
type Config struct {
	// Location is the business timezone punches are dated in. Default UTC.
	Location *time.Location

	// RetryGrace keeps the retry job away from punches still being
	// evaluated inline. Default 1 minute.
	RetryGrace time.Duration

	// RetryBatchSize bounds one retry run. Default 100.
	RetryBatchSize int

	// RetryConcurrency bounds parallel evaluations in one run. Default 4.
	RetryConcurrency int
}

type TimeClockServiceImpl struct {
	punches   timeclock.Repository
	evaluator timeclock.ComplianceEvaluator
	locker    lock.Locker
	metrics   *metrics.Metrics
	logger    *slog.Logger
	config    Config
	now       func() time.Time
}

var _ timeclock.Service = (*TimeClockServiceImpl)(nil)

func NewTimeClockService(
	punches timeclock.Repository,
	evaluator timeclock.ComplianceEvaluator,
	locker lock.Locker,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg Config,
) *TimeClockServiceImpl {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RetryGrace == 0 {
		cfg.RetryGrace = time.Minute
	}
	if cfg.RetryBatchSize == 0 {
		cfg.RetryBatchSize = 100
	}
	if cfg.RetryConcurrency == 0 {
		cfg.RetryConcurrency = 4
	}

	return &TimeClockServiceImpl{
		punches:   punches,
		evaluator: evaluator,
		locker:    locker,
		metrics:   m,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// RegisterPunch implements timeclock.Service.
func (s *TimeClockServiceImpl) RegisterPunch(ctx context.Context, req timeclock.RegisterPunchRequest) (timeclock.PunchRegistered, error) {
	registerType := timeclock.RegisterType(req.RegisterType)

	registerTime := req.RegisterTime
	if !registerTime.IsZero() {
		registerTime = registerTime.In(s.config.Location)
	}

	punch, err := timeclock.NewPunch(strings.TrimSpace(req.EmployeeID), registerType, registerTime, s.now())
	if err != nil {
		s.metrics.IncrementRegistered(req.RegisterType, "invalid")
		return timeclock.PunchRegistered{}, err
	}

	created, err := s.store(ctx, punch)
	if err != nil {
		result := "error"
		if errors.Is(err, timeclock.ErrDuplicateRegisterType) {
			result = "duplicate"
		}
		s.metrics.IncrementRegistered(req.RegisterType, result)
		return timeclock.PunchRegistered{}, err
	}
	s.metrics.IncrementRegistered(req.RegisterType, "created")

	// Evaluation failures never fail the registration; the outcome reports
	// them and the retry job picks the punch up later.
	outcome, err := s.evaluator.Evaluate(ctx, &created)
	if err != nil {
		s.logger.WarnContext(ctx, "compliance evaluation did not complete",
			"punch_id", created.ID,
			"employee_id", created.EmployeeID,
			"outcome", outcome.Status,
			"error", err,
		)
	}

	return timeclock.PunchRegistered{Punch: created, Compliance: outcome}, nil
}

// store runs the duplicate check and the insert while holding the
// employee/day lock.
func (s *TimeClockServiceImpl) store(ctx context.Context, punch timeclock.Punch) (timeclock.Punch, error) {
	date := punch.Date()

	release, err := s.locker.Lock(ctx, punch.EmployeeID+":"+date.Format("2006-01-02"))
	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("%w: %v", timeclock.ErrAddPunch, err)
	}
	defer release()

	existing, err := s.punches.FindByEmployeeAndDate(ctx, punch.EmployeeID, date)
	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("%w: %v", timeclock.ErrAddPunch, err)
	}
	for _, p := range existing {
		if p.RegisterType == punch.RegisterType {
			return timeclock.Punch{}, timeclock.ErrDuplicateRegisterType
		}
	}

	created, err := s.punches.Create(ctx, punch)
	if err != nil {
		if errors.Is(err, timeclock.ErrDuplicateRegisterType) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.Punch{}, err
		}
		return timeclock.Punch{}, fmt.Errorf("%w: %v", timeclock.ErrAddPunch, err)
	}

	return created, nil
}

// SetPunchStatus implements timeclock.Service.
func (s *TimeClockServiceImpl) SetPunchStatus(ctx context.Context, req timeclock.UpdatePunchStatusRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	punch, err := s.punches.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, timeclock.ErrPunchNotFound) {
			return timeclock.PunchResponse{}, err
		}
		return timeclock.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}

	punch.Status = timeclock.Status(req.Status)
	// an override settles the punch so a pending retry cannot replace it
	if punch.EvaluatedAt == nil {
		punch.MarkEvaluated(s.now())
	}

	if err := s.punches.Update(ctx, punch); err != nil {
		if errors.Is(err, timeclock.ErrPunchNotFound) {
			return timeclock.PunchResponse{}, err
		}
		return timeclock.PunchResponse{}, fmt.Errorf("%w: %v", timeclock.ErrUpdatePunch, err)
	}

	s.logger.InfoContext(ctx, "punch status changed", "punch_id", punch.ID, "status", punch.Status)

	return punch.ToResponse(), nil
}

// GetPunch implements timeclock.Service.
func (s *TimeClockServiceImpl) GetPunch(ctx context.Context, id string) (timeclock.PunchResponse, error) {
	punch, err := s.punches.GetByID(ctx, id)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}
	return punch.ToResponse(), nil
}

// GetPunchesForEmployeeOnDate implements timeclock.Service.
func (s *TimeClockServiceImpl) GetPunchesForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) ([]timeclock.PunchResponse, error) {
	if validator.IsEmpty(employeeID) {
		var errs validator.ValidationErrors
		return nil, errs.Add(timeclock.FieldEmployeeID, "REQUIRED", "EmployeeId is required")
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.config.Location)

	punches, err := s.punches.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]timeclock.PunchResponse, len(punches))
	for i, p := range punches {
		responses[i] = p.ToResponse()
	}
	return responses, nil
}

// EvaluatePending implements timeclock.Service.
func (s *TimeClockServiceImpl) EvaluatePending(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.config.RetryGrace)

	punches, err := s.punches.ListUnevaluated(ctx, cutoff, s.config.RetryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list unevaluated punches: %w", err)
	}
	if len(punches) == 0 {
		return 0, nil
	}

	var evaluated int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.RetryConcurrency)

	for _, p := range punches {
		punch := p
		g.Go(func() error {
			outcome, err := s.evaluator.Evaluate(gctx, &punch)
			if err != nil {
				s.logger.WarnContext(gctx, "compliance retry failed",
					"punch_id", punch.ID,
					"outcome", outcome.Status,
					"error", err,
				)
				return nil
			}
			atomic.AddInt64(&evaluated, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(evaluated), err
	}

	s.metrics.AddRetried(int(evaluated))

	return int(evaluated), nil
}
