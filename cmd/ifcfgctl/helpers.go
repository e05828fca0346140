package main

import (
	"fmt"
	"path/filepath"

	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/adapters"
	"ifcfg-agent/internal/infrastructure/facts"
	"ifcfg-agent/internal/infrastructure/network"
	"ifcfg-agent/internal/infrastructure/persistence"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session은 한 번의 명령 실행에 필요한 구성 요소를 묶습니다
type session struct {
	opts         *options
	logger       *logrus.Logger
	declarations []entities.Declaration
	facts        interfaces.FactProvider
	builder      *services.ModelBuilder
}

func newSession(cmd *cobra.Command, opts *options) (*session, error) {
	logger := opts.logger(cmd)
	fs := adapters.NewRealFileSystem()

	repo := persistence.NewYAMLRepository(fs, opts.declarationsFile, logger)
	declarations, err := repo.List(cmd.Context())
	if err != nil {
		return nil, err
	}

	provider, err := buildFacts(opts, fs, logger)
	if err != nil {
		return nil, err
	}

	return &session{
		opts:         opts,
		logger:       logger,
		declarations: declarations,
		facts:        provider,
		builder:      services.NewModelBuilder(logger),
	}, nil
}

func buildFacts(opts *options, fs interfaces.FileSystem, logger *logrus.Logger) (interfaces.FactProvider, error) {
	var providers []interfaces.FactProvider
	if opts.factsFile != "" {
		static, err := facts.LoadFactsFile(fs, opts.factsFile)
		if err != nil {
			return nil, err
		}
		providers = append(providers, static)
	}
	if opts.discover {
		providers = append(providers,
			facts.NewNetlinkFactProvider(logger),
			facts.NewOSFamilyFactProvider(adapters.NewRealOSDetector(fs, opts.hostRoot), logger),
		)
	}
	return facts.NewChainFactProvider(providers...), nil
}

// scriptsDir는 --scripts-dir, osfamily fact, RHEL 기본 경로 순으로 ifcfg 디렉토리를 정합니다
func (s *session) scriptsDir() (string, error) {
	if s.opts.scriptsDir != "" {
		return s.opts.scriptsDir, nil
	}
	family, ok := s.facts.Fact(interfaces.FactOSFamily)
	if !ok {
		s.logger.Debug("osfamily fact가 없어 RHEL 경로 사용")
		return filepath.Join(s.opts.hostRoot, constants.RHELNetworkScriptsDir), nil
	}
	return network.ScriptsDirFor(interfaces.OSFamily(family), s.opts.hostRoot)
}

// model은 제목으로 선언을 찾아 검증된 모델을 만듭니다
func (s *session) model(title string) (*entities.InterfaceModel, error) {
	for _, decl := range s.declarations {
		if decl.Title == title {
			return s.builder.Build(decl, s.facts)
		}
	}
	return nil, fmt.Errorf("interface %q is not declared in %s", title, s.opts.declarationsFile)
}
