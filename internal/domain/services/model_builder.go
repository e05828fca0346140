package services

import (
	"fmt"
	"sort"
	"strconv"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/domain/validation"

	"github.com/sirupsen/logrus"
)

// 선언 파라미터 이름
const (
	ParamEnsure       = "ensure"
	ParamDevice       = "device"
	ParamIPAddress    = "ipaddress"
	ParamNetmask      = "netmask"
	ParamGateway      = "gateway"
	ParamMacAddress   = "macaddress"
	ParamManageHwaddr = "manage_hwaddr"
	ParamMTU          = "mtu"
	ParamEthtoolOpts  = "ethtool_opts"
	ParamPeerDNS      = "peerdns"
	ParamDNS1         = "dns1"
	ParamDNS2         = "dns2"
	ParamDomain       = "domain"
	ParamUserctl      = "userctl"
	ParamIPv6Init     = "ipv6init"
	ParamIPv6Autoconf = "ipv6autoconf"
	ParamIPv6PeerDNS  = "ipv6peerdns"
	ParamIPv6Address  = "ipv6address"
	ParamIPv6Gateway  = "ipv6gateway"
	ParamLinkDelay    = "linkdelay"
	ParamScope        = "scope"
	ParamDefRoute     = "defroute"
	ParamMetric       = "metric"
	ParamZone         = "zone"
	ParamFlush        = "flush"
)

var knownParams = map[string]bool{
	ParamEnsure: true, ParamDevice: true, ParamIPAddress: true, ParamNetmask: true,
	ParamGateway: true, ParamMacAddress: true, ParamManageHwaddr: true, ParamMTU: true,
	ParamEthtoolOpts: true, ParamPeerDNS: true, ParamDNS1: true, ParamDNS2: true,
	ParamDomain: true, ParamUserctl: true, ParamIPv6Init: true, ParamIPv6Autoconf: true,
	ParamIPv6PeerDNS: true, ParamIPv6Address: true, ParamIPv6Gateway: true,
	ParamLinkDelay: true, ParamScope: true, ParamDefRoute: true, ParamMetric: true,
	ParamZone: true, ParamFlush: true,
}

// ModelBuilder는 원시 선언과 fact로부터 검증된 InterfaceModel을 만듭니다
type ModelBuilder struct {
	logger *logrus.Logger
}

// NewModelBuilder는 새로운 ModelBuilder를 생성합니다
func NewModelBuilder(logger *logrus.Logger) *ModelBuilder {
	return &ModelBuilder{
		logger: logger,
	}
}

// Build는 선언을 검증하여 InterfaceModel을 생성합니다.
// 첫 번째 검증 실패에서 중단하며 부분 모델은 반환하지 않습니다.
// facts가 nil이면 fact 기반 기본값 도출을 건너뜁니다.
func (b *ModelBuilder) Build(decl entities.Declaration, facts interfaces.FactProvider) (*entities.InterfaceModel, error) {
	if decl.Title == "" {
		return nil, errors.New(errors.ErrorTypeInvalidParameter, "interface title must not be empty")
	}
	p := params(decl.Params)

	if err := p.checkKnown(); err != nil {
		return nil, err
	}

	m := &entities.InterfaceModel{
		Name:      decl.Title,
		Device:    BaseDevice(decl.Title),
		Interface: decl.Title,
	}

	// 1. 장치 이름
	device, err := p.str(ParamDevice)
	if err != nil {
		return nil, err
	}
	if v, ok := device.Get(); ok {
		if v == "" {
			return nil, errors.New(errors.ErrorTypeInvalidParameter, "device must not be empty")
		}
		m.Device = v
		m.Interface = v
	}

	// 2. 상태
	ensure, err := p.str(ParamEnsure)
	if err != nil {
		return nil, err
	}
	state, ok := entities.ParseInterfaceState(ensure.Value())
	if !ok {
		return nil, errors.New(errors.ErrorTypeInvalidState,
			fmt.Sprintf("%q is not a valid ensure value; expected up or down", ensure.Value()))
	}
	m.State = state

	// 3. ipaddress와 netmask는 함께 선언되어야 함
	hasAddr, hasMask := p.has(ParamIPAddress), p.has(ParamNetmask)
	if hasAddr && !hasMask {
		return nil, errors.New(errors.ErrorTypeMissingPairedField, "ipaddress is declared without netmask")
	}
	if hasMask && !hasAddr {
		return nil, errors.New(errors.ErrorTypeMissingPairedField, "netmask is declared without ipaddress")
	}

	// 4. IPv4 주소 필드
	ipv4Fields := []struct {
		key    string
		target *entities.OptionalString
	}{
		{ParamIPAddress, &m.IPv4Address},
		{ParamNetmask, &m.IPv4Netmask},
		{ParamGateway, &m.IPv4Gateway},
		{ParamDNS1, &m.DNS1},
		{ParamDNS2, &m.DNS2},
	}
	for _, f := range ipv4Fields {
		v, err := p.str(f.key)
		if err != nil {
			return nil, err
		}
		if s, ok := v.Get(); ok {
			if err := validation.IPv4(s); err != nil {
				return nil, err
			}
		}
		*f.target = v
	}

	// 5. 하드웨어 주소
	m.ManageHwaddr = true
	if p.has(ParamManageHwaddr) {
		if m.ManageHwaddr, err = validation.Bool(p[ParamManageHwaddr]); err != nil {
			return nil, err
		}
	}
	mac, err := p.str(ParamMacAddress)
	if err != nil {
		return nil, err
	}
	if s, ok := mac.Get(); ok {
		if err := validation.MAC(s); err != nil {
			return nil, err
		}
		if m.ManageHwaddr {
			m.MacAddress = mac
		}
	} else if m.ManageHwaddr && facts != nil {
		key := interfaces.MacAddressFactKey(m.Device)
		if fact, found := facts.Fact(key); found && fact != "" {
			m.MacAddress = entities.SomeString(fact)
		} else {
			b.logger.WithFields(logrus.Fields{
				"interface": m.Name,
				"fact":      key,
			}).Debug("MAC 주소 fact가 없어 HWADDR를 생략")
		}
	}

	// 6. IPv6 주소 필드
	if p.has(ParamIPv6Address) {
		if m.IPv6Address, err = validation.IPv6Value(p[ParamIPv6Address]); err != nil {
			return nil, err
		}
	}
	gw6, err := p.str(ParamIPv6Gateway)
	if err != nil {
		return nil, err
	}
	if s, ok := gw6.Get(); ok {
		if err := validation.IPv6(s); err != nil {
			return nil, err
		}
	}
	m.IPv6Gateway = gw6

	// 7. 불리언과 숫자 필드
	boolFields := []struct {
		key    string
		target *entities.OptionalBool
	}{
		{ParamUserctl, &m.Userctl},
		{ParamPeerDNS, &m.PeerDNS},
		{ParamIPv6Init, &m.IPv6Init},
		{ParamIPv6Autoconf, &m.IPv6Autoconf},
		{ParamIPv6PeerDNS, &m.IPv6PeerDNS},
	}
	for _, f := range boolFields {
		if !p.has(f.key) {
			continue
		}
		v, err := validation.Bool(p[f.key])
		if err != nil {
			return nil, err
		}
		*f.target = entities.SomeBool(v)
	}
	if p.has(ParamFlush) {
		if m.Flush, err = validation.Bool(p[ParamFlush]); err != nil {
			return nil, err
		}
	}

	if m.MTU, err = p.str(ParamMTU); err != nil {
		return nil, err
	}
	if s, ok := m.MTU.Get(); ok {
		if err := validation.Numeric(s); err != nil {
			return nil, err
		}
	}

	// 8. 자유 텍스트와 그대로 전달되는 필드
	textFields := []struct {
		key    string
		target *entities.OptionalString
	}{
		{ParamEthtoolOpts, &m.EthtoolOpts},
		{ParamDomain, &m.Domain},
		{ParamScope, &m.Scope},
		{ParamLinkDelay, &m.LinkDelay},
		{ParamMetric, &m.Metric},
		{ParamZone, &m.Zone},
	}
	for _, f := range textFields {
		if *f.target, err = p.str(f.key); err != nil {
			return nil, err
		}
	}

	// defroute는 yes/no 값이므로 YAML 불리언도 받음
	if v, ok := p[ParamDefRoute].(bool); ok {
		m.DefRoute = entities.SomeString(yesNo(v))
	} else if m.DefRoute, err = p.str(ParamDefRoute); err != nil {
		return nil, err
	}

	return m, nil
}

// params는 원시 선언 파라미터에 대한 접근 헬퍼입니다
type params map[string]interface{}

// has는 키가 nil이 아닌 값으로 선언되었는지 확인합니다
func (p params) has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

func (p params) checkKnown() error {
	var unknown []string
	for k := range p {
		if !knownParams[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return errors.New(errors.ErrorTypeInvalidParameter, fmt.Sprintf("unknown parameter: %s", unknown[0]))
}

// str은 문자열 필드를 읽습니다. 정수 값은 10진 문자열로 변환합니다
func (p params) str(key string) (entities.OptionalString, error) {
	if !p.has(key) {
		return entities.OptionalString{}, nil
	}
	switch v := p[key].(type) {
	case string:
		return entities.SomeString(v), nil
	case int:
		return entities.SomeString(strconv.Itoa(v)), nil
	case int64:
		return entities.SomeString(strconv.FormatInt(v, 10)), nil
	case uint64:
		return entities.SomeString(strconv.FormatUint(v, 10)), nil
	case float64:
		if v == float64(int64(v)) {
			return entities.SomeString(strconv.FormatInt(int64(v), 10)), nil
		}
	}
	return entities.OptionalString{}, errors.New(errors.ErrorTypeInvalidParameter,
		fmt.Sprintf("%s must be a string, got %v", key, p[key]))
}
