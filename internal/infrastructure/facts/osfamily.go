package facts

import (
	"sync"

	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// OSFamilyFactProvider는 OSDetector 결과를 osfamily fact로 제공합니다.
// 감지는 처음 조회할 때 한 번만 수행합니다.
type OSFamilyFactProvider struct {
	detector interfaces.OSDetector
	logger   *logrus.Logger

	once   sync.Once
	family interfaces.OSFamily
	err    error
}

// NewOSFamilyFactProvider는 새로운 OSFamilyFactProvider를 생성합니다
func NewOSFamilyFactProvider(detector interfaces.OSDetector, logger *logrus.Logger) *OSFamilyFactProvider {
	return &OSFamilyFactProvider{
		detector: detector,
		logger:   logger,
	}
}

// Fact는 osfamily 키에 대해서만 응답합니다
func (p *OSFamilyFactProvider) Fact(key string) (string, bool) {
	if key != interfaces.FactOSFamily {
		return "", false
	}

	p.once.Do(func() {
		p.family, p.err = p.detector.DetectOS()
		if p.err != nil {
			p.logger.WithError(p.err).Warn("OS 계열 감지 실패")
		}
	})
	if p.err != nil {
		return "", false
	}
	return string(p.family), true
}
