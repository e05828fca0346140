package persistence

import (
	"context"
	"fmt"
	"sort"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// declarationFile은 선언 파일의 최상위 구조입니다
//
//	interfaces:
//	  eth6.203:
//	    ensure: up
//	    ipaddress: 10.0.0.5
//	    netmask: 255.255.255.0
type declarationFile struct {
	Interfaces map[string]map[string]interface{} `yaml:"interfaces"`
}

// YAMLRepository는 YAML 파일 기반의 DeclarationRepository 구현체입니다.
// List를 호출할 때마다 파일을 다시 읽습니다.
type YAMLRepository struct {
	fileSystem interfaces.FileSystem
	path       string
	logger     *logrus.Logger
}

// NewYAMLRepository는 새로운 YAMLRepository를 생성합니다
func NewYAMLRepository(fs interfaces.FileSystem, path string, logger *logrus.Logger) interfaces.DeclarationRepository {
	return &YAMLRepository{
		fileSystem: fs,
		path:       path,
		logger:     logger,
	}
}

// List는 파일의 모든 선언을 제목 순으로 반환합니다
func (r *YAMLRepository) List(ctx context.Context) ([]entities.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.fileSystem.ReadFile(r.path)
	if err != nil {
		return nil, errors.NewSystemError(fmt.Sprintf("선언 파일 읽기 실패: %s", r.path), err)
	}

	var file declarationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("선언 파일 파싱 실패: %s", r.path), err)
	}

	titles := make([]string, 0, len(file.Interfaces))
	for title := range file.Interfaces {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	declarations := make([]entities.Declaration, 0, len(titles))
	for _, title := range titles {
		params := file.Interfaces[title]
		if params == nil {
			params = map[string]interface{}{}
		}
		declarations = append(declarations, entities.Declaration{Title: title, Params: params})
	}

	r.logger.WithFields(logrus.Fields{
		"path":  r.path,
		"count": len(declarations),
	}).Debug("선언 파일 로드 완료")

	return declarations, nil
}
