package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/pkg/events"
	"github.com/gilrsantana/pontolegal/internal/pkg/sse"
)

// ReviewTopic is the hub topic every reviewer stream subscribes to.
const ReviewTopic = "review_notifications"

// Config holds notification service configuration
type Config struct {
	WorkerCount    int           // default: 2
	QueueSize      int           // default: 1000
	PublishTimeout time.Duration // default: 10 seconds
}

// PunchFlaggedEvent is the payload published for every review notification.
type PunchFlaggedEvent struct {
	NotificationID string    `json:"notification_id"`
	PunchID        string    `json:"punch_id"`
	EmployeeID     string    `json:"employee_id"`
	RegisterType   string    `json:"register_type"`
	RegisterTime   time.Time `json:"register_time"`
	WindowStart    string    `json:"window_start"`
	WindowEnd      string    `json:"window_end"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationServiceImpl struct {
	repo      notification.Repository
	hub       *sse.Hub
	publisher events.Publisher
	logger    *slog.Logger
	config    Config

	queue    chan notification.ReviewNotification
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

var _ notification.Service = (*NotificationServiceImpl)(nil)

// NewNotificationService creates the review notification service and starts
// the background workers that forward notifications to the event stream.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, publisher events.Publisher, logger *slog.Logger, cfg Config) *NotificationServiceImpl {
	// Set defaults
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	if cfg.PublishTimeout == 0 {
		cfg.PublishTimeout = 10 * time.Second
	}

	s := &NotificationServiceImpl{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
		queue:     make(chan notification.ReviewNotification, cfg.QueueSize),
		stopCh:    make(chan struct{}),
	}

	// Start background workers
	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	logger.Info("notification service started", "workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)

	return s
}

// worker forwards queued notifications to the event stream
func (s *NotificationServiceImpl) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case n := <-s.queue:
			s.forward(id, n)
		case <-s.stopCh:
			// drain what is already queued
			for {
				select {
				case n := <-s.queue:
					s.forward(id, n)
				default:
					return
				}
			}
		}
	}
}

func (s *NotificationServiceImpl) forward(worker int, n notification.ReviewNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.PublishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, n.EmployeeID, toEvent(n)); err != nil {
		s.logger.Error("failed to publish punch flagged event",
			"worker", worker,
			"notification_id", n.ID,
			"punch_id", n.PunchID,
			"error", err,
		)
	}
}

// Publish pushes the notification to live SSE subscribers and queues it for
// the event stream. When the queue is full the event is published inline.
func (s *NotificationServiceImpl) Publish(ctx context.Context, n notification.ReviewNotification) {
	s.hub.Publish(sse.Event{
		Topic: ReviewTopic,
		Event: notification.EventReviewCreated,
		Data:  n.ToResponse(),
	})

	select {
	case <-s.stopCh:
		s.forward(-1, n)
		return
	default:
	}

	select {
	case s.queue <- n:
	default:
		// Queue full, publish inline
		s.forward(-1, n)
	}
}

// ListByPunch returns every review notification raised for a punch
func (s *NotificationServiceImpl) ListByPunch(ctx context.Context, punchID string) ([]notification.ReviewNotificationResponse, error) {
	if punchID == "" {
		return nil, notification.ErrPunchIDRequired
	}

	notifications, err := s.repo.ListByPunch(ctx, punchID)
	if err != nil {
		return nil, err
	}
	return toResponses(notifications), nil
}

// ListPending returns every review notification still awaiting review
func (s *NotificationServiceImpl) ListPending(ctx context.Context) ([]notification.ReviewNotificationResponse, error) {
	notifications, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(notifications), nil
}

// Subscribe creates an SSE subscription for reviewers
func (s *NotificationServiceImpl) Subscribe(ctx context.Context) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(ReviewTopic)

	out := make(chan notification.SSEEvent, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if resp, ok := event.Data.(notification.ReviewNotificationResponse); ok {
					select {
					case out <- notification.SSEEvent{Event: event.Event, Data: resp}:
					case <-ctx.Done():
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// Stop drains the queue and stops the workers
func (s *NotificationServiceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		s.logger.Info("notification service stopped")
	})
}

func toEvent(n notification.ReviewNotification) PunchFlaggedEvent {
	return PunchFlaggedEvent{
		NotificationID: n.ID,
		PunchID:        n.PunchID,
		EmployeeID:     n.EmployeeID,
		RegisterType:   n.RegisterType,
		RegisterTime:   n.RegisterTime,
		WindowStart:    n.WindowStart,
		WindowEnd:      n.WindowEnd,
		CreatedAt:      n.CreatedAt,
	}
}

func toResponses(notifications []notification.ReviewNotification) []notification.ReviewNotificationResponse {
	responses := make([]notification.ReviewNotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = n.ToResponse()
	}
	return responses
}
