package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := New(ErrorTypeInvalidIPv4, "notAnIP is not an IP address.")
	assert.Equal(t, "[INVALID_IPV4] notAnIP is not an IP address.", err.Error())

	wrapped := NewSystemError("파일 쓰기 실패", fmt.Errorf("disk full"))
	assert.Equal(t, "[SYSTEM] 파일 쓰기 실패: disk full", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "disk full")
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("context: %w", New(ErrorTypeInvalidMAC, "x is not a MAC address."))

	assert.ErrorIs(t, err, &DomainError{Type: ErrorTypeInvalidMAC})
	assert.NotErrorIs(t, err, &DomainError{Type: ErrorTypeInvalidIPv4})
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"일반 검증 에러", NewValidationError("bad", nil), true},
		{"IPv6 리스트 에러", New(ErrorTypeInvalidIPv6InList, "x"), true},
		{"짝 필드 누락", New(ErrorTypeMissingPairedField, "x"), true},
		{"잘못된 상태", New(ErrorTypeInvalidState, "x"), true},
		{"시스템 에러", NewSystemError("x", nil), false},
		{"일반 에러", fmt.Errorf("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidationError(tt.err))
		})
	}
}

func TestTypeHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsSystemError(NewSystemError("x", nil)))
	assert.True(t, IsNetworkError(NewNetworkError("x", nil)))
	assert.True(t, IsTimeoutError(NewTimeoutError("x")))

	errType, ok := TypeOf(fmt.Errorf("wrap: %w", New(ErrorTypeInvalidBoolean, "x")))
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeInvalidBoolean, errType)

	_, ok = TypeOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}
