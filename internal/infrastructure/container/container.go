package container

import (
	"context"
	"database/sql"
	"time"

	"ifcfg-agent/internal/application/usecases"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/adapters"
	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/facts"
	"ifcfg-agent/internal/infrastructure/health"
	"ifcfg-agent/internal/infrastructure/network"
	"ifcfg-agent/internal/infrastructure/persistence"
	infraservices "ifcfg-agent/internal/infrastructure/services"
	"ifcfg-agent/pkg/db"
	"ifcfg-agent/pkg/utils"

	"github.com/sirupsen/logrus"
)

const dbConnectTimeout = 10 * time.Second

// Container는 의존성 주입을 관리하는 컨테이너입니다
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// 인프라스트럭처 어댑터들
	fileSystem      interfaces.FileSystem
	commandExecutor interfaces.CommandExecutor
	clock           interfaces.Clock
	osDetector      interfaces.OSDetector
	factProvider    interfaces.FactProvider

	// 서비스들
	healthService  *health.HealthService
	networkFactory *network.NetworkManagerFactory
	backupService  interfaces.BackupService
	scriptsDir     string

	// 레포지토리
	repository interfaces.DeclarationRepository

	// 유스케이스
	applyUseCase *usecases.ApplyInterfacesUseCase

	// 데이터베이스 (mysql 소스일 때만)
	db *sql.DB
}

// NewContainer는 새로운 Container를 생성합니다
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}

	if err := container.initializeServices(); err != nil {
		container.Close()
		return nil, err
	}

	container.initializeUseCases()

	return container, nil
}

// initializeInfrastructure는 인프라스트럭처 컴포넌트들을 초기화합니다
func (c *Container) initializeInfrastructure() error {
	c.fileSystem = adapters.NewRealFileSystem()
	c.commandExecutor = adapters.NewRealCommandExecutor(c.logger)
	c.clock = adapters.NewRealClock()
	c.osDetector = adapters.NewRealOSDetector(c.fileSystem, c.config.Agent.HostRoot)

	// fact 조회 순서: 정적 파일 > netlink > os-release
	var providers []interfaces.FactProvider
	if c.config.Source.FactsFile != "" {
		static, err := facts.LoadFactsFile(c.fileSystem, c.config.Source.FactsFile)
		if err != nil {
			return err
		}
		providers = append(providers, static)
	}
	providers = append(providers,
		facts.NewNetlinkFactProvider(c.logger),
		facts.NewOSFamilyFactProvider(c.osDetector, c.logger),
	)
	c.factProvider = facts.NewChainFactProvider(providers...)

	switch c.config.Source.Type {
	case config.SourceMySQL:
		dbCfg := c.config.Database
		ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
		defer cancel()

		conn, err := db.Open(ctx, db.Config{
			Host:         dbCfg.Host,
			Port:         dbCfg.Port,
			User:         dbCfg.User,
			Password:     dbCfg.Password,
			Database:     dbCfg.Database,
			MaxOpenConns: dbCfg.MaxOpenConns,
			MaxIdleConns: dbCfg.MaxIdleConns,
			MaxLifetime:  dbCfg.MaxLifetime,
		}, c.logger)
		if err != nil {
			return err
		}
		c.db = conn
		c.repository = persistence.NewMySQLRepository(c.db, c.logger)
	default:
		c.repository = persistence.NewYAMLRepository(c.fileSystem, c.config.Source.DeclarationsFile, c.logger)
	}

	return nil
}

// initializeServices는 서비스들을 초기화합니다
func (c *Container) initializeServices() error {
	c.healthService = health.NewHealthService(c.clock, c.logger)

	agentCfg := c.config.Agent
	c.networkFactory = network.NewNetworkManagerFactory(
		c.factProvider,
		c.commandExecutor,
		agentCfg.HostRoot,
		agentCfg.ScriptsDir,
		network.ExecutorOptions{
			CommandTimeout: agentCfg.CommandTimeout,
			Retry: utils.RetryConfig{
				MaxAttempts:  agentCfg.MaxRetries + 1,
				InitialDelay: agentCfg.RetryDelay,
				MaxDelay:     utils.DefaultRetryConfig.MaxDelay,
				Multiplier:   utils.DefaultRetryConfig.Multiplier,
			},
		},
		c.logger,
	)

	scriptsDir, err := c.networkFactory.ScriptsDir()
	if err != nil {
		return err
	}
	c.scriptsDir = scriptsDir

	c.backupService = infraservices.NewBackupService(c.fileSystem, c.clock, c.logger, agentCfg.BackupDirectory)

	return nil
}

// initializeUseCases는 유스케이스들을 초기화합니다
func (c *Container) initializeUseCases() {
	c.applyUseCase = usecases.NewApplyInterfacesUseCase(
		c.repository,
		c.factProvider,
		services.NewModelBuilder(c.logger),
		services.NewIfcfgRenderer(),
		services.NewActionPlanner(),
		c.networkFactory.CreateActionExecutor(),
		c.backupService,
		c.fileSystem,
		c.scriptsDir,
		c.logger,
	)
}

// GetConfig는 설정을 반환합니다
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetHealthService는 헬스 서비스를 반환합니다
func (c *Container) GetHealthService() *health.HealthService {
	return c.healthService
}

// GetFactProvider는 fact 조회 체인을 반환합니다
func (c *Container) GetFactProvider() interfaces.FactProvider {
	return c.factProvider
}

// GetScriptsDir는 ifcfg 파일을 기록하는 디렉토리를 반환합니다
func (c *Container) GetScriptsDir() string {
	return c.scriptsDir
}

// GetApplyInterfacesUseCase는 인터페이스 적용 유스케이스를 반환합니다
func (c *Container) GetApplyInterfacesUseCase() *usecases.ApplyInterfacesUseCase {
	return c.applyUseCase
}

// Close는 컨테이너를 정리합니다
func (c *Container) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
