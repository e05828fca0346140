//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ifcfg-agent/internal/application/usecases"
	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/adapters"
	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/container"
	"ifcfg-agent/internal/infrastructure/facts"
	"ifcfg-agent/internal/infrastructure/persistence"
	infraservices "ifcfg-agent/internal/infrastructure/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarations = `interfaces:
  test1:
    ensure: up
    device: eth1
    ipaddress: 1.2.3.4
    netmask: 255.255.255.0
  eth6.203:
    ensure: up
    flush: true
`

const factsFile = `osfamily: RedHat
macaddress_eth1: fe:fe:fe:aa:aa:aa
macaddress_eth6: bb:cc:bb:cc:bb:cc
`

// recordingExecutor는 실행 요청된 동작을 기록만 합니다
type recordingExecutor struct {
	batches [][]entities.Action
}

func (r *recordingExecutor) Execute(ctx context.Context, actions []entities.Action) error {
	r.batches = append(r.batches, actions)
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // 테스트 중 로그 출력 억제
	return logger
}

func TestContainerDryRun(t *testing.T) {
	if testing.Short() {
		t.Skip("통합 테스트는 -short 플래그와 함께 실행시 스킵됩니다")
	}

	dir := t.TempDir()
	scriptsDir := filepath.Join(dir, "network-scripts")
	require.NoError(t, os.MkdirAll(scriptsDir, 0755))
	writeFile(t, filepath.Join(dir, "interfaces.yaml"), declarations)
	writeFile(t, filepath.Join(dir, "facts.yaml"), factsFile)

	t.Setenv("DECLARATION_SOURCE", "file")
	t.Setenv("DECLARATIONS_FILE", filepath.Join(dir, "interfaces.yaml"))
	t.Setenv("FACTS_FILE", filepath.Join(dir, "facts.yaml"))
	t.Setenv("SCRIPTS_DIR", scriptsDir)
	t.Setenv("BACKUP_DIR", filepath.Join(dir, "backups"))
	t.Setenv("DRY_RUN", "true")

	cfg, err := config.NewEnvironmentConfigLoader().Load()
	require.NoError(t, err)
	assert.True(t, cfg.Agent.DryRun)

	c, err := container.NewContainer(cfg, quietLogger())
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, scriptsDir, c.GetScriptsDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	output, err := c.GetApplyInterfacesUseCase().Execute(ctx, usecases.ApplyInterfacesInput{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, output.TotalCount)
	assert.Equal(t, 0, output.FailedCount)
	for _, result := range output.Results {
		assert.Equal(t, usecases.StatusPlanned, result.Status, result.Name)
		assert.NotEmpty(t, result.Actions)
	}

	entries, err := os.ReadDir(scriptsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry-run은 파일을 기록하지 않아야 함")
}

func TestApplyToDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("통합 테스트는 -short 플래그와 함께 실행시 스킵됩니다")
	}
	if os.Geteuid() != 0 {
		t.Skip("ifcfg 파일 소유자 변경에 root 권한이 필요합니다")
	}

	logger := quietLogger()
	dir := t.TempDir()
	scriptsDir := filepath.Join(dir, "network-scripts")
	backupDir := filepath.Join(dir, "backups")
	declPath := filepath.Join(dir, "interfaces.yaml")
	require.NoError(t, os.MkdirAll(scriptsDir, 0755))
	writeFile(t, declPath, declarations)
	writeFile(t, filepath.Join(dir, "facts.yaml"), factsFile)

	fs := adapters.NewRealFileSystem()
	static, err := facts.LoadFactsFile(fs, filepath.Join(dir, "facts.yaml"))
	require.NoError(t, err)

	executor := &recordingExecutor{}
	useCase := usecases.NewApplyInterfacesUseCase(
		persistence.NewYAMLRepository(fs, declPath, logger),
		static,
		services.NewModelBuilder(logger),
		services.NewIfcfgRenderer(),
		services.NewActionPlanner(),
		executor,
		infraservices.NewBackupService(fs, adapters.NewRealClock(), logger, backupDir),
		fs,
		scriptsDir,
		logger,
	)
	ctx := context.Background()

	t.Run("최초 적용", func(t *testing.T) {
		output, err := useCase.Execute(ctx, usecases.ApplyInterfacesInput{})
		require.NoError(t, err)
		assert.Equal(t, 2, output.ProcessedCount)
		assert.Len(t, executor.batches, 2)

		content, err := os.ReadFile(filepath.Join(scriptsDir, "ifcfg-test1"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "HWADDR=fe:fe:fe:aa:aa:aa\n")
	})

	t.Run("변경 없으면 동작 없음", func(t *testing.T) {
		output, err := useCase.Execute(ctx, usecases.ApplyInterfacesInput{})
		require.NoError(t, err)
		assert.Equal(t, 2, output.UnchangedCount)
		assert.Len(t, executor.batches, 2)
	})

	t.Run("변경 시 백업 후 재적용", func(t *testing.T) {
		writeFile(t, declPath, declarations+"    mtu: 9000\n")

		output, err := useCase.Execute(ctx, usecases.ApplyInterfacesInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, output.ProcessedCount)
		assert.Equal(t, 1, output.UnchangedCount)

		backups, err := filepath.Glob(filepath.Join(backupDir, "eth6.203_*.bak"))
		require.NoError(t, err)
		assert.Len(t, backups, 1)

		content, err := os.ReadFile(filepath.Join(scriptsDir, "ifcfg-eth6.203"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "MTU=9000\n")
	})
}
