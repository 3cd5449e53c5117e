package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/handler/http/response"
)

// PingFunc checks the record store. A nil PingFunc always reports healthy.
type PingFunc func(ctx context.Context) error

type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	storeName string
	ping      PingFunc
}

func NewHealthHandler(storeName string, ping PingFunc) HealthHandler {
	return &healthHandlerImpl{
		storeName: storeName,
		ping:      ping,
	}
}

// Check implements HealthHandler.
func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "OK",
		Message:   "Factory attendance API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Store:     h.storeName,
	}

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			slog.Error("Health check store ping failed", "store", h.storeName, "error", err)
			response.ServiceUnavailable(w, "Record store unreachable")
			return
		}
	}

	response.Success(w, status)
}
