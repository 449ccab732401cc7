package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workingDayRepository struct {
	db *database.DB
}

const workingDayColumns = `
	id, name, type,
	to_char(start_work, 'HH24:MI'), to_char(start_break, 'HH24:MI'),
	to_char(end_break, 'HH24:MI'), to_char(end_work, 'HH24:MI'),
	tolerance_minutes, created_at, updated_at
`

// Create implements workingday.Repository.
func (r *workingDayRepository) Create(ctx context.Context, wd workingday.WorkingDay) (workingday.WorkingDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_days (
			name, type, start_work, start_break, end_break, end_work, tolerance_minutes
		) VALUES (
			$1, $2, $3::time, $4::time, $5::time, $6::time, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		wd.Name,
		wd.Type,
		wd.StartWork.Format(workingday.ClockLayout),
		wd.StartBreak.Format(workingday.ClockLayout),
		wd.EndBreak.Format(workingday.ClockLayout),
		wd.EndWork.Format(workingday.ClockLayout),
		wd.ToleranceMinutes,
	).Scan(&wd.ID, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return workingday.WorkingDay{}, workingday.ErrWorkingDayNameExists
		}
		return workingday.WorkingDay{}, fmt.Errorf("failed to create working day: %w", err)
	}

	return wd, nil
}

// GetByID implements workingday.Repository.
func (r *workingDayRepository) GetByID(ctx context.Context, id string) (workingday.WorkingDay, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
	}

	query := `SELECT ` + workingDayColumns + ` FROM working_days WHERE id = $1`

	wd, err := scanWorkingDay(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
		}
		return workingday.WorkingDay{}, fmt.Errorf("failed to get working day by id: %w", err)
	}

	return wd, nil
}

// List implements workingday.Repository.
func (r *workingDayRepository) List(ctx context.Context) ([]workingday.WorkingDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingDayColumns + ` FROM working_days ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list working days: %w", err)
	}
	defer rows.Close()

	workingDays := make([]workingday.WorkingDay, 0)
	for rows.Next() {
		wd, err := scanWorkingDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan working day: %w", err)
		}
		workingDays = append(workingDays, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate working days: %w", err)
	}

	return workingDays, nil
}

// Update implements workingday.Repository.
func (r *workingDayRepository) Update(ctx context.Context, wd workingday.WorkingDay) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(wd.ID); err != nil {
		return workingday.ErrWorkingDayNotFound
	}

	query := `
		UPDATE working_days SET
			name = $2, type = $3,
			start_work = $4::time, start_break = $5::time, end_break = $6::time, end_work = $7::time,
			tolerance_minutes = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		wd.ID,
		wd.Name,
		wd.Type,
		wd.StartWork.Format(workingday.ClockLayout),
		wd.StartBreak.Format(workingday.ClockLayout),
		wd.EndBreak.Format(workingday.ClockLayout),
		wd.EndWork.Format(workingday.ClockLayout),
		wd.ToleranceMinutes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return workingday.ErrWorkingDayNameExists
		}
		return fmt.Errorf("failed to update working day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workingday.ErrWorkingDayNotFound
	}

	return nil
}

func scanWorkingDay(row pgx.Row) (workingday.WorkingDay, error) {
	var (
		wd                                       workingday.WorkingDay
		startWork, startBreak, endBreak, endWork string
	)

	err := row.Scan(
		&wd.ID, &wd.Name, &wd.Type,
		&startWork, &startBreak, &endBreak, &endWork,
		&wd.ToleranceMinutes, &wd.CreatedAt, &wd.UpdatedAt,
	)
	if err != nil {
		return workingday.WorkingDay{}, err
	}

	for _, f := range []struct {
		dst *time.Time
		src string
	}{
		{&wd.StartWork, startWork},
		{&wd.StartBreak, startBreak},
		{&wd.EndBreak, endBreak},
		{&wd.EndWork, endWork},
	} {
		if *f.dst, err = time.Parse(workingday.ClockLayout, f.src); err != nil {
			return workingday.WorkingDay{}, fmt.Errorf("parse stored time %q: %w", f.src, err)
		}
	}

	return wd, nil
}

func NewWorkingDayRepository(db *database.DB) workingday.Repository {
	return &workingDayRepository{db: db}
}
