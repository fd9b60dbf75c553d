package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/handler/http/response"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// EventsHandler streams data-change events so open dashboards can refresh.
type EventsHandler interface {
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewEventsHandler(hub *sse.Hub, jwtService jwt.Service) EventsHandler {
	return &eventsHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// GetSSEToken handles POST /events/token
func (h *eventsHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles GET /events/stream?token=
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot send headers, so the token rides in the query string
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	writeEvent(w, sse.EventConnected, map[string]string{"status": "connected", "user_id": userID})
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if writeEvent(w, event.Event, event.Data) {
				flusher.Flush()
			}

		case <-keepalive.C:
			writeEvent(w, sse.EventPing, map[string]int64{"timestamp": time.Now().Unix()})
			flusher.Flush()

		case <-r.Context().Done():
			return

		case <-h.hub.Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data interface{}) bool {
	payload, err := json.Marshal(data)
	if err != nil {
		return false
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	return true
}
