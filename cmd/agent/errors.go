package main

import domainerrors "ifcfg-agent/internal/domain/errors"

// errorCategory는 에러 메트릭 라벨을 결정합니다
func errorCategory(err error) string {
	switch {
	case domainerrors.IsValidationError(err):
		return "validation"
	case domainerrors.IsNetworkError(err):
		return "network"
	case domainerrors.IsTimeoutError(err):
		return "timeout"
	case domainerrors.IsNotFoundError(err):
		return "not_found"
	default:
		return "system"
	}
}
