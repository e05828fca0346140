package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ifcfg-agent/internal/application/polling"
	"ifcfg-agent/internal/application/usecases"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/container"
	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// version은 빌드 시 -ldflags로 덮어씁니다
var version = "dev"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Info level.", logLevelStr)
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(logLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	configLoader := config.NewEnvironmentConfigLoader()
	cfg, err := configLoader.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	appContainer, err := container.NewContainer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create dependency injection container")
	}
	defer func() {
		if err := appContainer.Close(); err != nil {
			logger.WithError(err).Error("Failed to cleanup container")
		}
	}()

	app := NewApplication(appContainer, logger)
	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("Failed to run application")
		os.Exit(1)
	}
}

// Application은 메인 애플리케이션 구조체입니다
type Application struct {
	container    *container.Container
	logger       *logrus.Logger
	applyUseCase *usecases.ApplyInterfacesUseCase
	healthServer *http.Server
}

// NewApplication은 새로운 Application을 생성합니다
func NewApplication(container *container.Container, logger *logrus.Logger) *Application {
	return &Application{
		container:    container,
		logger:       logger,
		applyUseCase: container.GetApplyInterfacesUseCase(),
	}
}

// Run은 애플리케이션을 실행합니다
func (a *Application) Run() error {
	cfg := a.container.GetConfig()
	defer a.shutdown()

	// ifcfg 디렉토리를 직접 지정하면 osfamily fact가 없어도 치명적이지 않음
	osFamily, ok := a.container.GetFactProvider().Fact(interfaces.FactOSFamily)
	if !ok {
		a.logger.Warn("osfamily fact is not available")
	}
	a.logger.WithFields(logrus.Fields{
		"os_family":   osFamily,
		"scripts_dir": a.container.GetScriptsDir(),
		"source":      cfg.Source.Type,
		"dry_run":     cfg.Agent.DryRun,
	}).Info("Operating system detected")

	hostname, _ := os.Hostname()
	metrics.SetAgentInfo(version, osFamily, hostname)
	a.container.GetHealthService().SetTarget(osFamily, a.container.GetScriptsDir())

	a.startHealthServer(cfg.Health.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var strategy polling.Strategy
	if cfg.Agent.Backoff.Enabled {
		strategy = polling.NewExponentialBackoffStrategy(
			cfg.Agent.PollInterval,
			cfg.Agent.Backoff.MaxInterval,
			cfg.Agent.Backoff.Multiplier,
			a.logger,
		)
		a.logger.WithFields(logrus.Fields{
			"base_interval": cfg.Agent.PollInterval,
			"max_interval":  cfg.Agent.Backoff.MaxInterval,
			"multiplier":    cfg.Agent.Backoff.Multiplier,
		}).Info("Exponential backoff polling enabled")
	} else {
		strategy = polling.NewFixedIntervalStrategy(cfg.Agent.PollInterval)
		a.logger.WithField("interval", cfg.Agent.PollInterval).Info("Fixed interval polling enabled")
	}

	pollingController := polling.NewPollingController(strategy, a.logger)

	// SIGHUP은 선언을 즉시 다시 적용, SIGINT/SIGTERM은 종료
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigChan:
				if sig == syscall.SIGHUP {
					a.logger.Info("Received SIGHUP, re-applying declarations")
					pollingController.Trigger()
					continue
				}
				a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")
				cancel()
				return
			}
		}
	}()

	a.logger.WithField("version", version).Info("ifcfg agent started")

	return pollingController.Start(ctx, func(ctx context.Context) error {
		return a.processDeclarations(ctx, cfg.Agent.DryRun)
	})
}

// startHealthServer는 헬스체크 서버를 시작합니다
func (a *Application) startHealthServer(port string) {
	a.healthServer = &http.Server{
		Addr:              ":" + port,
		Handler:           a.container.GetHealthService().Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.logger.WithField("port", port).Info("Health check server started (with /metrics)")
		if err := a.healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.WithError(err).Error("Health check server failed")
		}
	}()
}

// processDeclarations는 한 주기의 선언 적용을 수행합니다
func (a *Application) processDeclarations(ctx context.Context, dryRun bool) error {
	healthService := a.container.GetHealthService()

	output, err := a.applyUseCase.Execute(ctx, usecases.ApplyInterfacesInput{DryRun: dryRun})
	if err != nil {
		healthService.UpdateSourceHealth(false, err)
		metrics.RecordError("system")
		return err
	}
	healthService.UpdateSourceHealth(true, nil)
	healthService.RecordCycle(output.ProcessedCount, output.FailedCount)

	for _, result := range output.Results {
		if result.Status == usecases.StatusFailed {
			metrics.RecordError(errorCategory(result.Err))
		}
	}

	return nil
}

// shutdown은 애플리케이션을 정리합니다
func (a *Application) shutdown() {
	if a.healthServer == nil {
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := a.healthServer.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("Failed to shutdown health check server")
	}
}
