package facts

import (
	"net"
	"strings"

	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

// linkHandle은 netlink 링크 조회를 추상화합니다
type linkHandle interface {
	LinkByName(name string) (netlink.Link, error)
	LinkList() ([]netlink.Link, error)
}

type defaultLinkHandle struct{}

func (defaultLinkHandle) LinkByName(name string) (netlink.Link, error) { return netlink.LinkByName(name) }
func (defaultLinkHandle) LinkList() ([]netlink.Link, error)            { return netlink.LinkList() }

// NetlinkFactProvider는 커널 링크 정보에서 macaddress_<device> fact를 제공합니다
type NetlinkFactProvider struct {
	handle linkHandle
	logger *logrus.Logger
}

// NewNetlinkFactProvider는 새로운 NetlinkFactProvider를 생성합니다
func NewNetlinkFactProvider(logger *logrus.Logger) *NetlinkFactProvider {
	return &NetlinkFactProvider{
		handle: defaultLinkHandle{},
		logger: logger,
	}
}

// Fact는 macaddress_ 접두사 키에 대해서만 응답합니다
func (p *NetlinkFactProvider) Fact(key string) (string, bool) {
	device, ok := strings.CutPrefix(key, interfaces.FactMacAddressPrefix)
	if !ok || device == "" {
		return "", false
	}

	link, err := p.handle.LinkByName(device)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"device": device,
			"error":  err,
		}).Debug("netlink 링크 조회 실패")
		return "", false
	}

	return hardwareAddr(link.Attrs().HardwareAddr)
}

// Collect는 모든 링크의 MAC 주소 fact를 수집합니다
func (p *NetlinkFactProvider) Collect() (map[string]string, error) {
	links, err := p.handle.LinkList()
	if err != nil {
		return nil, errors.NewSystemError("네트워크 링크 목록 조회 실패", err)
	}

	result := make(map[string]string, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		if mac, ok := hardwareAddr(attrs.HardwareAddr); ok {
			result[interfaces.MacAddressFactKey(attrs.Name)] = mac
		}
	}
	return result, nil
}

// 루프백처럼 주소가 없거나 0으로만 채워진 링크는 fact로 보지 않음
func hardwareAddr(addr net.HardwareAddr) (string, bool) {
	if len(addr) == 0 {
		return "", false
	}
	for _, b := range addr {
		if b != 0 {
			return strings.ToLower(addr.String()), true
		}
	}
	return "", false
}
