package network

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/infrastructure/metrics"
	"ifcfg-agent/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ExecutorOptions는 동작 실행 설정입니다
type ExecutorOptions struct {
	CommandTimeout time.Duration
	// Retry는 reload 동작에만 적용됩니다
	Retry utils.RetryConfig
}

// NMCLIExecutor는 계획된 동작을 호스트 명령으로 실행합니다
type NMCLIExecutor struct {
	commandExecutor interfaces.CommandExecutor
	options         ExecutorOptions
	logger          *logrus.Logger
}

// NewNMCLIExecutor는 새로운 NMCLIExecutor를 생성합니다
func NewNMCLIExecutor(
	executor interfaces.CommandExecutor,
	options ExecutorOptions,
	logger *logrus.Logger,
) *NMCLIExecutor {
	return &NMCLIExecutor{
		commandExecutor: executor,
		options:         options,
		logger:          logger,
	}
}

// Execute는 동작을 순서대로 실행하고 첫 실패에서 중단합니다
func (e *NMCLIExecutor) Execute(ctx context.Context, actions []entities.Action) error {
	if err := entities.ValidateOrdering(actions); err != nil {
		return errors.NewValidationError("동작 순서가 올바르지 않음", err)
	}

	for _, action := range actions {
		if len(action.Command) == 0 {
			return errors.NewValidationError(fmt.Sprintf("동작 %s에 명령이 없음", action.ID), nil)
		}

		err := e.run(ctx, action)
		metrics.RecordAction(string(action.Kind), err == nil)
		if err != nil {
			return errors.NewNetworkError(fmt.Sprintf("동작 실패: %s", action.ID), err)
		}
	}

	return nil
}

func (e *NMCLIExecutor) run(ctx context.Context, action entities.Action) error {
	log := e.logger.WithFields(logrus.Fields{
		"action_id": action.ID,
		"command":   strings.Join(action.Command, " "),
	})

	once := func() error {
		_, err := e.commandExecutor.ExecuteWithTimeout(ctx, e.options.CommandTimeout, action.Command[0], action.Command[1:]...)
		if err != nil {
			log.WithError(err).Warn("동작 명령 실행 실패")
		}
		return err
	}

	log.Info("동작 실행")
	if action.Kind == entities.ActionReload {
		return utils.RetryWithBackoff(ctx, e.options.Retry, once)
	}
	return once()
}
