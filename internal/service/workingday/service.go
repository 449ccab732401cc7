package workingday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
)

type WorkingDayServiceImpl struct {
	repo   workingday.Repository
	logger *slog.Logger
}

var _ workingday.Service = (*WorkingDayServiceImpl)(nil)

func NewWorkingDayService(repo workingday.Repository, logger *slog.Logger) *WorkingDayServiceImpl {
	return &WorkingDayServiceImpl{repo: repo, logger: logger}
}

// Create implements workingday.Service.
func (s *WorkingDayServiceImpl) Create(ctx context.Context, req workingday.CreateWorkingDayRequest) (workingday.WorkingDayResponse, error) {
	params, err := req.Params()
	if err != nil {
		return workingday.WorkingDayResponse{}, err
	}

	wd, err := workingday.New(params)
	if err != nil {
		return workingday.WorkingDayResponse{}, err
	}

	created, err := s.repo.Create(ctx, wd)
	if err != nil {
		if errors.Is(err, workingday.ErrWorkingDayNameExists) {
			return workingday.WorkingDayResponse{}, err
		}
		return workingday.WorkingDayResponse{}, fmt.Errorf("%w: %v", workingday.ErrAddWorkingDay, err)
	}

	s.logger.InfoContext(ctx, "working day created", "working_day_id", created.ID, "name", created.Name)

	return created.ToResponse(), nil
}

// Update implements workingday.Service. The stored schedule is left
// untouched when any rule fails.
func (s *WorkingDayServiceImpl) Update(ctx context.Context, req workingday.UpdateWorkingDayRequest) (workingday.WorkingDayResponse, error) {
	params, err := req.Params()
	if err != nil {
		return workingday.WorkingDayResponse{}, err
	}

	wd, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, workingday.ErrWorkingDayNotFound) {
			return workingday.WorkingDayResponse{}, err
		}
		return workingday.WorkingDayResponse{}, fmt.Errorf("failed to get working day: %w", err)
	}

	if err := wd.Update(params); err != nil {
		return workingday.WorkingDayResponse{}, err
	}

	if err := s.repo.Update(ctx, wd); err != nil {
		if errors.Is(err, workingday.ErrWorkingDayNotFound) || errors.Is(err, workingday.ErrWorkingDayNameExists) {
			return workingday.WorkingDayResponse{}, err
		}
		return workingday.WorkingDayResponse{}, fmt.Errorf("%w: %v", workingday.ErrUpdateWorkingDay, err)
	}

	s.logger.InfoContext(ctx, "working day updated", "working_day_id", wd.ID)

	return wd.ToResponse(), nil
}

// Get implements workingday.Service.
func (s *WorkingDayServiceImpl) Get(ctx context.Context, id string) (workingday.WorkingDayResponse, error) {
	wd, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return workingday.WorkingDayResponse{}, err
	}
	return wd.ToResponse(), nil
}

// List implements workingday.Service.
func (s *WorkingDayServiceImpl) List(ctx context.Context) ([]workingday.WorkingDayResponse, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list working days: %w", err)
	}

	responses := make([]workingday.WorkingDayResponse, len(days))
	for i, wd := range days {
		responses[i] = wd.ToResponse()
	}
	return responses, nil
}
