package usecases

import (
	"bytes"
	"context"
	"path/filepath"
	"time"

	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ResultStatus는 선언 하나의 처리 결과입니다
type ResultStatus string

const (
	StatusApplied   ResultStatus = "applied"
	StatusUnchanged ResultStatus = "unchanged"
	StatusPlanned   ResultStatus = "planned"
	StatusFailed    ResultStatus = "failed"
)

// InterfaceResult는 선언별 처리 결과입니다
type InterfaceResult struct {
	Name       string
	ConfigPath string
	Status     ResultStatus
	Actions    []entities.Action
	Err        error
}

// ApplyInterfacesInput은 유스케이스의 입력 파라미터입니다
type ApplyInterfacesInput struct {
	// DryRun이면 렌더링과 계획만 수행하고 파일 기록이나 명령 실행은 하지 않습니다
	DryRun bool
}

// ApplyInterfacesOutput은 유스케이스의 출력 결과입니다
type ApplyInterfacesOutput struct {
	RunID          string
	ProcessedCount int
	UnchangedCount int
	FailedCount    int
	TotalCount     int
	Results        []InterfaceResult
}

// ApplyInterfacesUseCase는 선언을 ifcfg 파일로 렌더링하고 변경된 파일에 대해 후속 동작을 실행합니다
type ApplyInterfacesUseCase struct {
	repository interfaces.DeclarationRepository
	facts      interfaces.FactProvider
	builder    *services.ModelBuilder
	renderer   *services.IfcfgRenderer
	planner    *services.ActionPlanner
	executor   interfaces.ActionExecutor
	backup     interfaces.BackupService
	fileSystem interfaces.FileSystem
	scriptsDir string
	logger     *logrus.Logger
}

// NewApplyInterfacesUseCase는 새로운 ApplyInterfacesUseCase를 생성합니다
func NewApplyInterfacesUseCase(
	repo interfaces.DeclarationRepository,
	facts interfaces.FactProvider,
	builder *services.ModelBuilder,
	renderer *services.IfcfgRenderer,
	planner *services.ActionPlanner,
	executor interfaces.ActionExecutor,
	backup interfaces.BackupService,
	fs interfaces.FileSystem,
	scriptsDir string,
	logger *logrus.Logger,
) *ApplyInterfacesUseCase {
	return &ApplyInterfacesUseCase{
		repository: repo,
		facts:      facts,
		builder:    builder,
		renderer:   renderer,
		planner:    planner,
		executor:   executor,
		backup:     backup,
		fileSystem: fs,
		scriptsDir: scriptsDir,
		logger:     logger,
	}
}

// Execute는 모든 선언을 처리합니다. 선언 하나의 실패는 나머지 처리를 막지 않습니다
func (uc *ApplyInterfacesUseCase) Execute(ctx context.Context, input ApplyInterfacesInput) (*ApplyInterfacesOutput, error) {
	runID := uuid.New().String()
	log := uc.logger.WithField("run_id", runID)

	declarations, err := uc.repository.List(ctx)
	if err != nil {
		metrics.SetDeclarationSourceStatus(false)
		return nil, errors.NewSystemError("인터페이스 선언 조회 실패", err)
	}
	metrics.SetDeclarationSourceStatus(true)

	output := &ApplyInterfacesOutput{
		RunID:      runID,
		TotalCount: len(declarations),
	}

	for _, decl := range declarations {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		start := time.Now()
		result := uc.processDeclaration(ctx, log, decl, input.DryRun)
		metrics.RecordInterfaceProcessing(result.Name, string(result.Status), time.Since(start).Seconds())

		switch result.Status {
		case StatusFailed:
			output.FailedCount++
			log.WithFields(logrus.Fields{
				"interface": result.Name,
				"error":     result.Err,
			}).Error("인터페이스 처리 실패")
		case StatusUnchanged:
			output.UnchangedCount++
		default:
			output.ProcessedCount++
		}
		output.Results = append(output.Results, result)
	}

	if output.ProcessedCount > 0 || output.FailedCount > 0 {
		log.WithFields(logrus.Fields{
			"processed": output.ProcessedCount,
			"unchanged": output.UnchangedCount,
			"failed":    output.FailedCount,
			"total":     output.TotalCount,
			"dry_run":   input.DryRun,
		}).Info("인터페이스 처리 완료")
	}

	return output, nil
}

// processDeclaration은 선언 하나를 검증, 렌더링, 기록, 실행합니다
func (uc *ApplyInterfacesUseCase) processDeclaration(ctx context.Context, log *logrus.Entry, decl entities.Declaration, dryRun bool) InterfaceResult {
	result := InterfaceResult{Name: decl.Title}

	model, err := uc.builder.Build(decl, uc.facts)
	if err != nil {
		if errType, ok := errors.TypeOf(err); ok && errors.IsValidationError(err) {
			metrics.RecordValidationError(string(errType))
		}
		return failed(result, err)
	}

	configPath := filepath.Join(uc.scriptsDir, model.ConfigFileName())
	result.ConfigPath = configPath
	log = log.WithFields(logrus.Fields{
		"interface":   model.Name,
		"config_path": configPath,
	})

	content := uc.renderer.RenderText(model)

	existed := uc.fileSystem.Exists(configPath)
	if existed {
		current, err := uc.fileSystem.ReadFile(configPath)
		if err == nil && bytes.Equal(current, content) {
			log.Debug("ifcfg 파일 최신 상태 유지")
			result.Status = StatusUnchanged
			return result
		}
	}

	// 파일 내용이 바뀌었을 때만 동작이 필요함
	result.Actions = uc.planner.Plan(model, configPath)

	if dryRun {
		log.WithField("actions", len(result.Actions)).Info("dry-run: 변경 예정")
		result.Status = StatusPlanned
		return result
	}

	if existed {
		if err := uc.backup.CreateBackup(ctx, model.Name, configPath); err != nil {
			return failed(result, err)
		}
	}

	if err := uc.fileSystem.WriteFile(configPath, content, constants.ConfigFilePermission); err != nil {
		return failed(result, errors.NewSystemError("ifcfg 파일 기록 실패", err))
	}
	if err := uc.fileSystem.Chown(configPath, constants.ConfigFileOwnerUID, constants.ConfigFileOwnerGID); err != nil {
		uc.rollback(ctx, log, model.Name, configPath, existed)
		return failed(result, errors.NewSystemError("ifcfg 파일 소유자 변경 실패", err))
	}
	log.Info("ifcfg 파일 기록 완료")

	if err := uc.executor.Execute(ctx, result.Actions); err != nil {
		// 되돌려 두어야 다음 주기에 변경이 다시 감지되어 동작이 재시도됨
		uc.rollback(ctx, log, model.Name, configPath, existed)
		return failed(result, err)
	}

	result.Status = StatusApplied
	return result
}

// rollback은 기록한 파일을 이전 상태로 되돌립니다
func (uc *ApplyInterfacesUseCase) rollback(ctx context.Context, log *logrus.Entry, name, configPath string, existed bool) {
	var err error
	if existed {
		err = uc.backup.RestoreLatestBackup(ctx, name, configPath)
	} else {
		err = uc.fileSystem.Remove(configPath)
	}
	if err != nil {
		log.WithError(err).Error("롤백 실패")
		return
	}
	log.Warn("ifcfg 파일 롤백 완료")
}

func failed(result InterfaceResult, err error) InterfaceResult {
	result.Status = StatusFailed
	result.Err = err
	return result
}
