package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 인터페이스 처리 관련 메트릭
	InterfacesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_interfaces_processed_total",
			Help: "Total number of interface declarations processed",
		},
		[]string{"status"}, // applied, unchanged, failed
	)

	InterfaceProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ifcfg_interface_processing_duration_seconds",
			Help:    "Time spent processing each interface declaration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"interface_name", "status"},
	)

	// 검증 실패 메트릭
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_validation_errors_total",
			Help: "Total number of declarations rejected by validation",
		},
		[]string{"error_type"}, // INVALID_IPV4, INVALID_MAC, ...
	)

	// 동작 실행 메트릭
	ActionsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_actions_executed_total",
			Help: "Total number of post-write actions executed",
		},
		[]string{"kind", "status"}, // flush|reload, success|failed
	)

	// 폴링 관련 메트릭
	PollingCycleCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ifcfg_polling_cycles_total",
			Help: "Total number of polling cycles executed",
		},
	)

	PollingCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ifcfg_polling_cycle_duration_seconds",
			Help:    "Time spent in each polling cycle",
			Buckets: prometheus.DefBuckets,
		},
	)

	PollingBackoffLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ifcfg_polling_backoff_level",
			Help: "Current backoff level (0 = no backoff)",
		},
	)

	// 선언 소스 상태
	DeclarationSourceStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ifcfg_declaration_source_status",
			Help: "Declaration source status (1 = readable, 0 = unavailable)",
		},
	)

	// 에러 메트릭
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, network, system, timeout
	)

	// 시스템 정보
	AgentInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ifcfg_agent_info",
			Help: "Agent information",
		},
		[]string{"version", "os_family", "node_name"},
	)
)

// RecordInterfaceProcessing은 인터페이스 처리 시간을 기록합니다
func RecordInterfaceProcessing(interfaceName string, status string, duration float64) {
	InterfaceProcessingDuration.WithLabelValues(interfaceName, status).Observe(duration)
	InterfacesProcessed.WithLabelValues(status).Inc()
}

// RecordValidationError는 검증 실패를 기록합니다
func RecordValidationError(errorType string) {
	ValidationErrors.WithLabelValues(errorType).Inc()
}

// RecordAction은 동작 실행 결과를 기록합니다
func RecordAction(kind string, success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	ActionsExecuted.WithLabelValues(kind, status).Inc()
}

// RecordPollingCycle은 폴링 사이클 메트릭을 기록합니다
func RecordPollingCycle(duration float64) {
	PollingCycleCount.Inc()
	PollingCycleDuration.Observe(duration)
}

// RecordError는 에러 발생을 기록합니다
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetBackoffLevel은 현재 백오프 레벨을 설정합니다
func SetBackoffLevel(level float64) {
	PollingBackoffLevel.Set(level)
}

// SetDeclarationSourceStatus는 선언 소스 상태를 설정합니다
func SetDeclarationSourceStatus(available bool) {
	if available {
		DeclarationSourceStatus.Set(1)
	} else {
		DeclarationSourceStatus.Set(0)
	}
}

// SetAgentInfo는 에이전트 정보를 설정합니다
func SetAgentInfo(version, osFamily, nodeName string) {
	AgentInfo.WithLabelValues(version, osFamily, nodeName).Set(1)
}
