package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(e.WorkingDayID); err != nil {
		return employee.Employee{}, workingday.ErrWorkingDayNotFound
	}

	query := `
		INSERT INTO employees (full_name, working_day_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	if err := q.QueryRow(ctx, query, e.FullName, e.WorkingDayID).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return employee.Employee{}, workingday.ErrWorkingDayNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	query := `
		SELECT id, full_name, working_day_id, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.FullName, &e.WorkingDayID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// UpdateWorkingDay implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateWorkingDay(ctx context.Context, id string, workingDayID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return employee.ErrEmployeeNotFound
	}
	if _, err := uuid.Parse(workingDayID); err != nil {
		return workingday.ErrWorkingDayNotFound
	}

	tag, err := q.Exec(ctx, `UPDATE employees SET working_day_id = $2, updated_at = NOW() WHERE id = $1`, id, workingDayID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return workingday.ErrWorkingDayNotFound
		}
		return fmt.Errorf("failed to update employee working day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
