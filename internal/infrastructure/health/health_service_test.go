package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestHealthService() (*HealthService, *fixedClock) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	clock := &fixedClock{now: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)}
	return NewHealthService(clock, logger), clock
}

func TestHealthService_Status(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *HealthService)
		want  HealthStatus
		code  int
	}{
		{
			name:  "소스 미확인",
			setup: func(h *HealthService) {},
			want:  StatusUnhealthy,
			code:  http.StatusServiceUnavailable,
		},
		{
			name: "정상",
			setup: func(h *HealthService) {
				h.UpdateSourceHealth(true, nil)
				h.RecordCycle(3, 1)
			},
			want: StatusHealthy,
			code: http.StatusOK,
		},
		{
			name: "실패율 50% 이상",
			setup: func(h *HealthService) {
				h.UpdateSourceHealth(true, nil)
				h.RecordCycle(1, 1)
			},
			want: StatusDegraded,
			code: http.StatusOK,
		},
		{
			name: "소스 에러",
			setup: func(h *HealthService) {
				h.UpdateSourceHealth(false, errors.New("connection refused"))
			},
			want: StatusUnhealthy,
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHealthService()
			tt.setup(h)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.code, rec.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Status)
		})
	}
}

func TestHealthService_Router(t *testing.T) {
	h, clock := newTestHealthService()
	h.UpdateSourceHealth(true, nil)
	h.SetTarget("RedHat", "/etc/sysconfig/network-scripts")
	clock.now = clock.now.Add(2*time.Hour + 5*time.Minute)

	router := h.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2h5m", resp.Statistics["uptime"])
	target := resp.Components["target"].(map[string]interface{})
	assert.Equal(t, "RedHat", target["os_family"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
