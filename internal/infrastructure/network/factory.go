package network

import (
	"fmt"
	"path/filepath"

	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// NetworkManagerFactory는 OS 계열에 맞는 ifcfg 디렉토리와 동작 실행기를 만듭니다
type NetworkManagerFactory struct {
	facts           interfaces.FactProvider
	commandExecutor interfaces.CommandExecutor
	logger          *logrus.Logger
	hostRoot        string
	scriptsDir      string
	options         ExecutorOptions
}

// NewNetworkManagerFactory는 새로운 NetworkManagerFactory를 생성합니다.
// scriptsDir가 비어 있지 않으면 osfamily fact 대신 그대로 사용합니다.
func NewNetworkManagerFactory(
	facts interfaces.FactProvider,
	executor interfaces.CommandExecutor,
	hostRoot string,
	scriptsDir string,
	options ExecutorOptions,
	logger *logrus.Logger,
) *NetworkManagerFactory {
	return &NetworkManagerFactory{
		facts:           facts,
		commandExecutor: executor,
		logger:          logger,
		hostRoot:        hostRoot,
		scriptsDir:      scriptsDir,
		options:         options,
	}
}

// ScriptsDir는 ifcfg 파일을 기록할 디렉토리를 반환합니다
func (f *NetworkManagerFactory) ScriptsDir() (string, error) {
	if f.scriptsDir != "" {
		return f.scriptsDir, nil
	}

	osFamily, ok := f.facts.Fact(interfaces.FactOSFamily)
	if !ok {
		return "", errors.NewSystemError("osfamily fact is not available", nil)
	}

	f.logger.WithField("os_family", osFamily).Debug("OS family resolved from facts")

	return ScriptsDirFor(interfaces.OSFamily(osFamily), f.hostRoot)
}

// ScriptsDirFor는 OS 계열의 ifcfg 디렉토리 규칙을 hostRoot 아래에서 반환합니다
func ScriptsDirFor(osFamily interfaces.OSFamily, hostRoot string) (string, error) {
	switch osFamily {
	case interfaces.OSFamilyRedHat:
		return filepath.Join(hostRoot, constants.RHELNetworkScriptsDir), nil
	case interfaces.OSFamilySuse:
		return filepath.Join(hostRoot, constants.SUSENetworkConfigDir), nil
	default:
		return "", errors.NewSystemError(fmt.Sprintf("ifcfg files are not supported on OS family %s", osFamily), nil)
	}
}

// CreateActionExecutor는 nmcli 기반 동작 실행기를 생성합니다
func (f *NetworkManagerFactory) CreateActionExecutor() interfaces.ActionExecutor {
	return NewNMCLIExecutor(f.commandExecutor, f.options, f.logger)
}
