package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestRetryWithBackoff(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("두 번째 시도에 성공", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), fastConfig(3), func() error {
			calls++
			if calls < 2 {
				return errBoom
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("최대 횟수 초과", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), fastConfig(3), func() error {
			calls++
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "3회")
		assert.Equal(t, 3, calls)
	})

	t.Run("단일 시도는 원래 에러 반환", func(t *testing.T) {
		err := RetryWithBackoff(context.Background(), fastConfig(0), func() error { return errBoom })
		assert.Equal(t, errBoom, err)
	})

	t.Run("컨텍스트 취소", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := fastConfig(5)
		cfg.InitialDelay = time.Hour
		calls := 0
		err := RetryWithBackoff(ctx, cfg, func() error {
			calls++
			cancel()
			return errBoom
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
