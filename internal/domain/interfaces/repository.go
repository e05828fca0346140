package interfaces

import (
	"context"

	"ifcfg-agent/internal/domain/entities"
)

// DeclarationRepository는 인터페이스 선언 저장소 인터페이스입니다
type DeclarationRepository interface {
	// List는 모든 인터페이스 선언을 제목 순으로 반환합니다
	List(ctx context.Context) ([]entities.Declaration, error)
}
