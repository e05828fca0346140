package polling

import (
	"context"
	"math"
	"time"

	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// Strategy는 폴링 전략 인터페이스입니다
type Strategy interface {
	// NextInterval은 직전 주기의 성공 여부로 다음 폴링까지의 대기 시간을 반환합니다
	NextInterval(success bool) time.Duration
	// Reset은 폴링 전략을 초기 상태로 리셋합니다
	Reset()
}

// FixedIntervalStrategy는 결과와 무관하게 같은 간격을 사용합니다
type FixedIntervalStrategy struct {
	interval time.Duration
}

// NewFixedIntervalStrategy는 새로운 고정 간격 전략을 생성합니다
func NewFixedIntervalStrategy(interval time.Duration) *FixedIntervalStrategy {
	return &FixedIntervalStrategy{interval: interval}
}

func (s *FixedIntervalStrategy) NextInterval(success bool) time.Duration {
	return s.interval
}

func (s *FixedIntervalStrategy) Reset() {}

// ExponentialBackoffStrategy는 연속 실패 시 간격을 지수적으로 늘리는 폴링 전략입니다
type ExponentialBackoffStrategy struct {
	baseInterval time.Duration
	maxInterval  time.Duration
	multiplier   float64
	failures     int
	logger       *logrus.Logger
}

// NewExponentialBackoffStrategy는 새로운 지수 백오프 전략을 생성합니다.
// multiplier가 1 이하이면 2를 사용합니다.
func NewExponentialBackoffStrategy(
	baseInterval time.Duration,
	maxInterval time.Duration,
	multiplier float64,
	logger *logrus.Logger,
) *ExponentialBackoffStrategy {
	if multiplier <= 1 {
		multiplier = 2.0
	}

	return &ExponentialBackoffStrategy{
		baseInterval: baseInterval,
		maxInterval:  maxInterval,
		multiplier:   multiplier,
		logger:       logger,
	}
}

// NextInterval은 다음 폴링까지의 대기 시간을 계산합니다
func (s *ExponentialBackoffStrategy) NextInterval(success bool) time.Duration {
	if success {
		if s.failures > 0 {
			s.logger.WithField("failures", s.failures).Debug("Resetting backoff after success")
			s.Reset()
		}
		return s.baseInterval
	}

	s.failures++
	metrics.SetBackoffLevel(float64(s.failures))

	// n번째 연속 실패: base * multiplier^(n-1), 최대 maxInterval
	next := time.Duration(float64(s.baseInterval) * math.Pow(s.multiplier, float64(s.failures-1)))
	if next > s.maxInterval {
		next = s.maxInterval
	}

	s.logger.WithFields(logrus.Fields{
		"backoff_count": s.failures,
		"next_interval": next,
		"max_interval":  s.maxInterval,
	}).Debug("Exponential backoff calculated")

	return next
}

// Reset은 백오프 카운터를 리셋합니다
func (s *ExponentialBackoffStrategy) Reset() {
	s.failures = 0
	metrics.SetBackoffLevel(0)
}

// PollingController는 작업을 주기적으로 실행하는 컨트롤러입니다.
// 시작 직후 한 번 실행하고, Trigger로 다음 주기를 앞당길 수 있습니다.
type PollingController struct {
	strategy Strategy
	trigger  chan struct{}
	logger   *logrus.Logger
}

// NewPollingController는 새로운 폴링 컨트롤러를 생성합니다
func NewPollingController(strategy Strategy, logger *logrus.Logger) *PollingController {
	return &PollingController{
		strategy: strategy,
		trigger:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Trigger는 대기 중인 간격을 건너뛰고 즉시 다음 주기를 실행하도록 요청합니다.
// 이미 요청이 대기 중이면 합쳐집니다.
func (c *PollingController) Trigger() {
	select {
	case c.trigger <- struct{}{}:
	default:
	}
}

// Start는 ctx가 취소될 때까지 폴링합니다
func (c *PollingController) Start(ctx context.Context, task func(context.Context) error) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		case <-c.trigger:
			c.logger.Debug("Polling cycle triggered")
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}

		start := time.Now()
		err := task(ctx)
		metrics.RecordPollingCycle(time.Since(start).Seconds())
		if err != nil {
			c.logger.WithError(err).Error("Polling task failed")
		}

		timer.Reset(c.strategy.NextInterval(err == nil))
	}
}
