package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	source  SnapshotSource
	version string
}

func NewHealthController(source SnapshotSource, version string) *HealthController {
	return &HealthController{
		source:  source,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Content must have been loaded at least once
	if h.source != nil {
		if snap, err := h.source.Snapshot(); err != nil {
			checks["content"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["content"] = "ok, fetched " + snap.FetchedAt.Format(time.RFC3339)
		}
	} else {
		checks["content"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
