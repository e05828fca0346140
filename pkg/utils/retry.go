package utils

import (
	"context"
	"fmt"
	"time"
)

// RetryConfig는 재시도 설정
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig는 기본 재시도 설정
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 1 * time.Second,
	MaxDelay:     30 * time.Second,
	Multiplier:   2.0,
}

// RetryWithBackoff는 지수 백오프를 사용한 재시도.
// MaxAttempts가 1보다 작으면 한 번만 시도합니다.
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation func() error) error {
	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := config.InitialDelay

	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if attempt >= attempts {
			if attempts == 1 {
				return err
			}
			return fmt.Errorf("최대 재시도 횟수 초과 (%d회): %w", attempts, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * config.Multiplier)
			if config.MaxDelay > 0 && delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}
	}
}
