package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

type handler struct {
	startedAt time.Time
}

func (h *handler) health(c echo.Context) error {
	now := time.Now()

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}

// RegisterRoutes mounts the liveness endpoint. The endpoint is public and
// reports how long the process has been up, in seconds.
func RegisterRoutes(e *echo.Echo) {
	h := &handler{startedAt: time.Now()}

	e.GET("/health", h.health)
}
