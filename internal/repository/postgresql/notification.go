package postgresql

import (
	"context"
	"fmt"

	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/google/uuid"
)

type reviewNotificationRepository struct {
	db *database.DB
}

const reviewNotificationColumns = `
	id, punch_id, employee_id, status, register_type, register_time,
	window_start, window_end, created_at
`

// Create implements notification.Repository.
func (r *reviewNotificationRepository) Create(ctx context.Context, n notification.ReviewNotification) (notification.ReviewNotification, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return notification.ReviewNotification{}, fmt.Errorf("failed to generate notification id: %w", err)
	}
	n.ID = id.String()

	query := `
		INSERT INTO review_notifications (
			id, punch_id, employee_id, status, register_type, register_time, window_start, window_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		n.ID, n.PunchID, n.EmployeeID, n.Status, n.RegisterType, n.RegisterTime, n.WindowStart, n.WindowEnd,
	).Scan(&n.CreatedAt)
	if err != nil {
		return notification.ReviewNotification{}, fmt.Errorf("%w: %v", notification.ErrAddNotification, err)
	}

	return n, nil
}

// ListByPunch implements notification.Repository.
func (r *reviewNotificationRepository) ListByPunch(ctx context.Context, punchID string) ([]notification.ReviewNotification, error) {
	if _, err := uuid.Parse(punchID); err != nil {
		return []notification.ReviewNotification{}, nil
	}

	query := `
		SELECT ` + reviewNotificationColumns + `
		FROM review_notifications
		WHERE punch_id = $1
		ORDER BY created_at ASC, id ASC
	`
	return r.query(ctx, query, punchID)
}

// ListPending implements notification.Repository.
func (r *reviewNotificationRepository) ListPending(ctx context.Context) ([]notification.ReviewNotification, error) {
	query := `
		SELECT ` + reviewNotificationColumns + `
		FROM review_notifications
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
	`
	return r.query(ctx, query, notification.ReviewStatusPending)
}

func (r *reviewNotificationRepository) query(ctx context.Context, query string, args ...interface{}) ([]notification.ReviewNotification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query review notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]notification.ReviewNotification, 0)
	for rows.Next() {
		var n notification.ReviewNotification
		if err := rows.Scan(
			&n.ID, &n.PunchID, &n.EmployeeID, &n.Status, &n.RegisterType, &n.RegisterTime,
			&n.WindowStart, &n.WindowEnd, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review notifications: %w", err)
	}

	return notifications, nil
}

func NewReviewNotificationRepository(db *database.DB) notification.Repository {
	return &reviewNotificationRepository{db: db}
}
