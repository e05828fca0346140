package health

import (
	"encoding/json"
	"fmt"
	"ifcfg-agent/internal/domain/interfaces"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// HealthService provides health check functionality
type HealthService struct {
	mu                sync.RWMutex
	clock             interfaces.Clock
	logger            *logrus.Logger
	startTime         time.Time
	lastCycle         time.Time
	sourceHealthy     bool
	sourceError       error
	appliedInterfaces int64
	failedInterfaces  int64
	osFamily          string
	scriptsDir        string
}

// HealthStatus represents health check status
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the health check response struct
type HealthResponse struct {
	Status     HealthStatus           `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	LastCheck  string                 `json:"last_check"`
	Components map[string]interface{} `json:"components"`
	Statistics map[string]interface{} `json:"statistics"`
}

// NewHealthService creates a new HealthService
func NewHealthService(clock interfaces.Clock, logger *logrus.Logger) *HealthService {
	return &HealthService{
		clock:         clock,
		logger:        logger,
		startTime:     clock.Now(),
		sourceHealthy: false,
	}
}

// UpdateSourceHealth updates the declaration source health status
func (h *HealthService) UpdateSourceHealth(healthy bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sourceHealthy = healthy
	h.sourceError = err
	h.lastCycle = h.clock.Now()
}

// RecordCycle adds the outcome of one apply cycle to the statistics
func (h *HealthService) RecordCycle(applied, failed int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.appliedInterfaces += int64(applied)
	h.failedInterfaces += int64(failed)
}

// SetTarget sets the detected OS family and the ifcfg directory in use
func (h *HealthService) SetTarget(osFamily, scriptsDir string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.osFamily = osFamily
	h.scriptsDir = scriptsDir
}

// Router returns the HTTP handler serving health and metrics endpoints
func (h *HealthService) Router() http.Handler {
	r := mux.NewRouter()
	r.Handle("/", h).Methods(http.MethodGet)
	r.Handle("/healthz", h).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

// ServeHTTP handles the HTTP health check endpoint
func (h *HealthService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := h.buildHealthResponse()

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.WithError(err).Error("failed to encode health check response")
	}
}

// buildHealthResponse constructs the health check response
func (h *HealthService) buildHealthResponse() HealthResponse {
	h.mu.RLock()
	defer h.mu.RUnlock()

	now := h.clock.Now()
	lastCheck := ""
	if !h.lastCycle.IsZero() {
		lastCheck = h.lastCycle.Format(time.RFC3339)
	}

	components := map[string]interface{}{
		"declaration_source": map[string]interface{}{
			"healthy": h.sourceHealthy,
			"error":   h.formatError(h.sourceError),
		},
		"target": map[string]interface{}{
			"os_family":   h.osFamily,
			"scripts_dir": h.scriptsDir,
		},
	}

	statistics := map[string]interface{}{
		"applied_interfaces": h.appliedInterfaces,
		"failed_interfaces":  h.failedInterfaces,
		"uptime":             h.formatUptime(now.Sub(h.startTime)),
	}

	return HealthResponse{
		Status:     h.determineOverallStatus(),
		Timestamp:  now.Format(time.RFC3339),
		LastCheck:  lastCheck,
		Components: components,
		Statistics: statistics,
	}
}

// determineOverallStatus determines the overall health status
func (h *HealthService) determineOverallStatus() HealthStatus {
	if !h.sourceHealthy {
		return StatusUnhealthy
	}

	// If failed interfaces are 50% or more, status is degraded
	if h.failedInterfaces > 0 {
		failureRate := float64(h.failedInterfaces) / float64(h.appliedInterfaces+h.failedInterfaces)
		if failureRate >= 0.5 {
			return StatusDegraded
		}
	}

	return StatusHealthy
}

func (h *HealthService) formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// formatUptime formats uptime duration to human-readable format
func (h *HealthService) formatUptime(duration time.Duration) string {
	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
