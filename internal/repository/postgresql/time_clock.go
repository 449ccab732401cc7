package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	"github.com/gilrsantana/pontolegal/internal/domain/timeclock"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type timeClockRepository struct {
	db *database.DB

	// loc is the business timezone; register_date and every returned time
	// are expressed in it.
	loc *time.Location
}

const punchColumns = `id, employee_id, register_time, register_type, status, evaluated_at, created_at, updated_at`

// Create implements timeclock.Repository.
func (r *timeClockRepository) Create(ctx context.Context, punch timeclock.Punch) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(punch.EmployeeID); err != nil {
		return timeclock.Punch{}, employee.ErrEmployeeNotFound
	}

	id, err := uuid.NewV7()
	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("failed to generate punch id: %w", err)
	}
	punch.ID = id.String()

	query := `
		INSERT INTO time_clock_punches (
			id, employee_id, register_date, register_time, register_type, status, evaluated_at
		) VALUES (
			$1, $2, $3::date, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		punch.ID,
		punch.EmployeeID,
		r.dateString(punch.RegisterTime),
		punch.RegisterTime,
		punch.RegisterType,
		punch.Status,
		punch.EvaluatedAt,
	).Scan(&punch.CreatedAt, &punch.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return timeclock.Punch{}, timeclock.ErrDuplicateRegisterType
		}
		if isForeignKeyViolation(err) {
			return timeclock.Punch{}, employee.ErrEmployeeNotFound
		}
		return timeclock.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return r.inLocation(punch), nil
}

// GetByID implements timeclock.Repository.
func (r *timeClockRepository) GetByID(ctx context.Context, id string) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return timeclock.Punch{}, timeclock.ErrPunchNotFound
	}

	query := `SELECT ` + punchColumns + ` FROM time_clock_punches WHERE id = $1`

	punch, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.Punch{}, timeclock.ErrPunchNotFound
		}
		return timeclock.Punch{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return r.inLocation(punch), nil
}

// FindByEmployeeAndDate implements timeclock.Repository.
func (r *timeClockRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(employeeID); err != nil {
		return []timeclock.Punch{}, nil
	}

	query := `
		SELECT ` + punchColumns + `
		FROM time_clock_punches
		WHERE employee_id = $1 AND register_date = $2::date
		ORDER BY employee_id ASC, register_time ASC, id ASC
	`

	return r.queryPunches(ctx, q, query, employeeID, r.dateString(date))
}

// Update implements timeclock.Repository.
func (r *timeClockRepository) Update(ctx context.Context, punch timeclock.Punch) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(punch.ID); err != nil {
		return timeclock.ErrPunchNotFound
	}

	query := `
		UPDATE time_clock_punches
		SET status = $2, evaluated_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, punch.ID, punch.Status, punch.EvaluatedAt)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}

	return nil
}

// MarkEvaluated implements timeclock.Repository.
func (r *timeClockRepository) MarkEvaluated(ctx context.Context, punch timeclock.Punch) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(punch.ID); err != nil {
		return timeclock.ErrPunchNotFound
	}

	query := `
		UPDATE time_clock_punches
		SET status = $2, evaluated_at = $3, updated_at = NOW()
		WHERE id = $1 AND evaluated_at IS NULL
	`

	tag, err := q.Exec(ctx, query, punch.ID, punch.Status, punch.EvaluatedAt)
	if err != nil {
		return fmt.Errorf("failed to mark punch evaluated: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM time_clock_punches WHERE id = $1)`, punch.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check punch: %w", err)
	}
	if !exists {
		return timeclock.ErrPunchNotFound
	}
	return timeclock.ErrAlreadyEvaluated
}

// ListUnevaluated implements timeclock.Repository.
func (r *timeClockRepository) ListUnevaluated(ctx context.Context, before time.Time, limit int) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_clock_punches
		WHERE evaluated_at IS NULL AND created_at < $1
		ORDER BY register_time ASC
		LIMIT $2
	`

	return r.queryPunches(ctx, q, query, before, limit)
}

func (r *timeClockRepository) queryPunches(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timeclock.Punch, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	punches := make([]timeclock.Punch, 0)
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, r.inLocation(punch))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

func (r *timeClockRepository) dateString(t time.Time) string {
	return t.In(r.loc).Format("2006-01-02")
}

func (r *timeClockRepository) inLocation(p timeclock.Punch) timeclock.Punch {
	p.RegisterTime = p.RegisterTime.In(r.loc)
	if p.EvaluatedAt != nil {
		at := p.EvaluatedAt.In(r.loc)
		p.EvaluatedAt = &at
	}
	return p
}

func scanPunch(row pgx.Row) (timeclock.Punch, error) {
	var p timeclock.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.RegisterTime, &p.RegisterType, &p.Status,
		&p.EvaluatedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func NewTimeClockRepository(db *database.DB, loc *time.Location) timeclock.Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &timeClockRepository{db: db, loc: loc}
}
