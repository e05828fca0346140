package errors

import (
	"errors"
	"fmt"
)

// ErrorType은 에러의 종류를 나타냅니다
type ErrorType string

const (
	// ErrorTypeValidation은 일반적인 유효성 검증 실패를 나타냅니다
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound는 리소스를 찾을 수 없음을 나타냅니다
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeSystem은 시스템 레벨 에러를 나타냅니다
	ErrorTypeSystem ErrorType = "SYSTEM"

	// ErrorTypeNetwork는 네트워크 관련 에러를 나타냅니다
	ErrorTypeNetwork ErrorType = "NETWORK"

	// ErrorTypeTimeout은 타임아웃 에러를 나타냅니다
	ErrorTypeTimeout ErrorType = "TIMEOUT"
)

// 인터페이스 선언 검증 에러 종류
const (
	ErrorTypeInvalidIPv4        ErrorType = "INVALID_IPV4"
	ErrorTypeInvalidIPv6        ErrorType = "INVALID_IPV6"
	ErrorTypeInvalidIPv6InList  ErrorType = "INVALID_IPV6_IN_LIST"
	ErrorTypeInvalidMAC         ErrorType = "INVALID_MAC"
	ErrorTypeInvalidBoolean     ErrorType = "INVALID_BOOLEAN"
	ErrorTypeInvalidNumeric     ErrorType = "INVALID_NUMERIC"
	ErrorTypeMissingPairedField ErrorType = "MISSING_PAIRED_FIELD"
	ErrorTypeInvalidState       ErrorType = "INVALID_STATE"
	ErrorTypeInvalidParameter   ErrorType = "INVALID_PARAMETER"
)

// validationTypes는 IsValidationError가 검증 에러로 취급하는 종류들입니다
var validationTypes = map[ErrorType]bool{
	ErrorTypeValidation:         true,
	ErrorTypeInvalidIPv4:        true,
	ErrorTypeInvalidIPv6:        true,
	ErrorTypeInvalidIPv6InList:  true,
	ErrorTypeInvalidMAC:         true,
	ErrorTypeInvalidBoolean:     true,
	ErrorTypeInvalidNumeric:     true,
	ErrorTypeMissingPairedField: true,
	ErrorTypeInvalidState:       true,
	ErrorTypeInvalidParameter:   true,
}

// DomainError는 도메인 레벨의 에러를 나타냅니다
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error는 error 인터페이스를 구현합니다
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap은 내부 에러를 반환합니다
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is는 에러 비교를 위한 메서드입니다
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// 생성자 함수들

// New는 주어진 종류의 에러를 생성합니다
func New(errType ErrorType, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
	}
}

// NewValidationError는 유효성 검증 에러를 생성합니다
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError는 리소스를 찾을 수 없는 에러를 생성합니다
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewSystemError는 시스템 에러를 생성합니다
func NewSystemError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeSystem,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError는 네트워크 관련 에러를 생성합니다
func NewNetworkError(message string, cause error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewTimeoutError는 타임아웃 에러를 생성합니다
func NewTimeoutError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeTimeout,
		Message: message,
	}
}

// 에러 타입 확인 헬퍼 함수들

// TypeOf는 에러 체인에서 DomainError의 종류를 꺼냅니다
func TypeOf(err error) (ErrorType, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type, true
	}
	return "", false
}

// IsType은 에러가 주어진 종류인지 확인합니다
func IsType(err error, errType ErrorType) bool {
	t, ok := TypeOf(err)
	return ok && t == errType
}

// IsValidationError는 유효성 검증 에러(세부 종류 포함)인지 확인합니다
func IsValidationError(err error) bool {
	t, ok := TypeOf(err)
	return ok && validationTypes[t]
}

// IsNotFoundError는 리소스를 찾을 수 없는 에러인지 확인합니다
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsSystemError는 시스템 에러인지 확인합니다
func IsSystemError(err error) bool {
	return IsType(err, ErrorTypeSystem)
}

// IsNetworkError는 네트워크 에러인지 확인합니다
func IsNetworkError(err error) bool {
	return IsType(err, ErrorTypeNetwork)
}

// IsTimeoutError는 타임아웃 에러인지 확인합니다
func IsTimeoutError(err error) bool {
	return IsType(err, ErrorTypeTimeout)
}
