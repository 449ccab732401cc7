package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gilrsantana/pontolegal/internal/domain/notification"
	"github.com/gilrsantana/pontolegal/internal/handler/http/response"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// ReviewNotificationHandler serves review notifications to reviewers
type ReviewNotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type reviewNotificationHandlerImpl struct {
	notifService notification.Service
	jwtService   jwt.Service
	keepalive    time.Duration
}

// NewReviewNotificationHandler creates a new review notification handler
func NewReviewNotificationHandler(notifService notification.Service, jwtService jwt.Service) ReviewNotificationHandler {
	return &reviewNotificationHandlerImpl{
		notifService: notifService,
		jwtService:   jwtService,
		keepalive:    30 * time.Second,
	}
}

// List returns the notifications of one punch when punch_id is given,
// otherwise every notification still pending review
func (h *reviewNotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		result []notification.ReviewNotificationResponse
		err    error
	)

	if punchID := r.URL.Query().Get("punch_id"); punchID != "" {
		result, err = h.notifService.ListByPunch(r.Context(), punchID)
	} else {
		result, err = h.notifService.ListPending(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSSEToken generates a short-lived token for SSE connections
func (h *reviewNotificationHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, _ := jwtauth.FromContext(r.Context())
	subject, _ := claims["sub"].(string)
	if subject == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(subject)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, notification.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles the SSE connection for new review notifications
func (h *reviewNotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	subject, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.notifService.Subscribe(r.Context())
	defer cleanup()

	connected, _ := json.Marshal(map[string]string{"status": "connected", "subscriber": subject})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
