package facts

import (
	"fmt"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// StaticFactProvider는 고정된 fact 맵을 제공합니다
type StaticFactProvider struct {
	facts map[string]string
}

// NewStaticFactProvider는 주어진 맵을 복사하여 StaticFactProvider를 생성합니다
func NewStaticFactProvider(facts map[string]string) *StaticFactProvider {
	copied := make(map[string]string, len(facts))
	for k, v := range facts {
		copied[k] = v
	}
	return &StaticFactProvider{facts: copied}
}

// Fact는 키에 해당하는 fact를 반환합니다
func (p *StaticFactProvider) Fact(key string) (string, bool) {
	v, ok := p.facts[key]
	return v, ok
}

// All은 모든 fact의 복사본을 반환합니다
func (p *StaticFactProvider) All() map[string]string {
	copied := make(map[string]string, len(p.facts))
	for k, v := range p.facts {
		copied[k] = v
	}
	return copied
}

// LoadFactsFile은 평탄한 YAML 맵 형식의 fact 파일을 읽습니다
//
//	osfamily: RedHat
//	macaddress_eth1: fe:fe:fe:aa:aa:aa
func LoadFactsFile(fs interfaces.FileSystem, path string) (*StaticFactProvider, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemError(fmt.Sprintf("fact 파일 읽기 실패: %s", path), err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("fact 파일 파싱 실패: %s", path), err)
	}

	return NewStaticFactProvider(raw), nil
}
