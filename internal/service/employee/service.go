package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	workingDayRepo workingday.Repository
	logger         *slog.Logger
}

var _ employee.EmployeeService = (*EmployeeServiceImpl)(nil)

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	workingDayRepo workingday.Repository,
	logger *slog.Logger,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		workingDayRepo: workingDayRepo,
		logger:         logger,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureWorkingDay(ctx, req.WorkingDayID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:     strings.TrimSpace(req.FullName),
		WorkingDayID: req.WorkingDayID,
	})
	if err != nil {
		if errors.Is(err, workingday.ErrWorkingDayNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("%w: %v", employee.ErrAddEmployee, err)
	}

	s.logger.InfoContext(ctx, "employee created", "employee_id", created.ID, "working_day_id", created.WorkingDayID)

	return created.ToResponse(), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return e.ToResponse(), nil
}

// AssignWorkingDay implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignWorkingDay(ctx context.Context, req employee.AssignWorkingDayRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureWorkingDay(ctx, req.WorkingDayID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateWorkingDay(ctx, req.EmployeeID, req.WorkingDayID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, workingday.ErrWorkingDayNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("%w: %v", employee.ErrUpdateEmployee, err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	s.logger.InfoContext(ctx, "working day assigned", "employee_id", updated.ID, "working_day_id", updated.WorkingDayID)

	return updated.ToResponse(), nil
}

func (s *EmployeeServiceImpl) ensureWorkingDay(ctx context.Context, id string) error {
	if _, err := s.workingDayRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, workingday.ErrWorkingDayNotFound) {
			return err
		}
		return fmt.Errorf("failed to get working day: %w", err)
	}
	return nil
}
