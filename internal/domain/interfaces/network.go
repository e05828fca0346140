package interfaces

import (
	"context"

	"ifcfg-agent/internal/domain/entities"
)

// ActionExecutor는 계획된 동작을 순서대로 실행하는 인터페이스입니다
type ActionExecutor interface {
	// Execute는 동작 목록을 순서대로 실행합니다. 첫 실패에서 중단합니다
	Execute(ctx context.Context, actions []entities.Action) error
}

// BackupService는 ifcfg 파일 백업을 관리하는 인터페이스입니다
type BackupService interface {
	CreateBackup(ctx context.Context, interfaceName string, configPath string) error
	RestoreLatestBackup(ctx context.Context, interfaceName string, configPath string) error
	HasBackup(ctx context.Context, interfaceName string) bool
}
