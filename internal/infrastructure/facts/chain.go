package facts

import "ifcfg-agent/internal/domain/interfaces"

// ChainFactProvider는 여러 제공자를 순서대로 조회하며 처음 찾은 값을 사용합니다
type ChainFactProvider struct {
	providers []interfaces.FactProvider
}

// NewChainFactProvider는 새로운 ChainFactProvider를 생성합니다. nil 제공자는 무시합니다
func NewChainFactProvider(providers ...interfaces.FactProvider) *ChainFactProvider {
	chain := &ChainFactProvider{}
	for _, p := range providers {
		if p != nil {
			chain.providers = append(chain.providers, p)
		}
	}
	return chain
}

// Fact는 처음으로 값을 가진 제공자의 fact를 반환합니다
func (c *ChainFactProvider) Fact(key string) (string, bool) {
	for _, p := range c.providers {
		if v, ok := p.Fact(key); ok {
			return v, true
		}
	}
	return "", false
}
