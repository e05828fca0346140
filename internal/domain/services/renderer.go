package services

import (
	"fmt"
	"strings"

	"ifcfg-agent/internal/domain/entities"
)

// IfcfgRenderer는 InterfaceModel을 ifcfg KEY=VALUE 줄로 직렬화합니다.
// 순수 함수이며 검증된 모델에 대해 실패하지 않습니다.
type IfcfgRenderer struct{}

// NewIfcfgRenderer는 새로운 IfcfgRenderer를 생성합니다
func NewIfcfgRenderer() *IfcfgRenderer {
	return &IfcfgRenderer{}
}

// Render는 고정된 순서의 설정 줄 목록을 반환합니다
func (r *IfcfgRenderer) Render(m *entities.InterfaceModel) []string {
	w := &lineWriter{}

	w.set("DEVICE", m.Interface)
	w.set("BOOTPROTO", "none")
	w.optional("HWADDR", m.MacAddress)
	w.set("ONBOOT", yesNo(m.OnBoot()))
	w.set("HOTPLUG", yesNo(m.Hotplug()))
	w.set("TYPE", "Ethernet")

	w.optional("IPADDR", m.IPv4Address)
	w.optional("NETMASK", m.IPv4Netmask)
	w.optional("GATEWAY", m.IPv4Gateway)
	w.optional("MTU", m.MTU)
	w.quoted("ETHTOOL_OPTS", m.EthtoolOpts)
	w.set("PEERDNS", yesNo(m.PeerDNS.ValueOr(false)))
	w.optional("DNS1", m.DNS1)
	w.optional("DNS2", m.DNS2)
	w.quoted("DOMAIN", m.Domain)
	w.optionalBool("USERCTL", m.Userctl)

	w.optionalBool("IPV6INIT", m.IPv6Init)
	w.optionalBool("IPV6_AUTOCONF", m.IPv6Autoconf)
	if primary, ok := m.IPv6Address.Primary(); ok {
		w.set("IPV6ADDR", primary)
		if rest := m.IPv6Address.Secondaries(); len(rest) > 0 {
			w.set("IPV6ADDR_SECONDARIES", quote(strings.Join(rest, " ")))
		}
	}
	w.optional("IPV6_DEFAULTGW", m.IPv6Gateway)
	w.optionalBool("IPV6_PEERDNS", m.IPv6PeerDNS)

	w.optional("LINKDELAY", m.LinkDelay)
	w.quoted("SCOPE", m.Scope)
	w.optional("DEFROUTE", m.DefRoute)
	w.optional("ZONE", m.Zone)
	w.optional("METRIC", m.Metric)
	w.set("NM_CONTROLLED", "yes")

	return w.lines
}

// RenderText는 줄 목록을 개행으로 이어 파일 내용으로 반환합니다
func (r *IfcfgRenderer) RenderText(m *entities.InterfaceModel) []byte {
	return []byte(strings.Join(r.Render(m), "\n") + "\n")
}

type lineWriter struct {
	lines []string
}

func (w *lineWriter) set(key, value string) {
	w.lines = append(w.lines, fmt.Sprintf("%s=%s", key, value))
}

func (w *lineWriter) optional(key string, v entities.OptionalString) {
	if s, ok := v.Get(); ok {
		w.set(key, s)
	}
}

func (w *lineWriter) quoted(key string, v entities.OptionalString) {
	if s, ok := v.Get(); ok {
		w.set(key, quote(s))
	}
}

func (w *lineWriter) optionalBool(key string, v entities.OptionalBool) {
	if b, ok := v.Get(); ok {
		w.set(key, yesNo(b))
	}
}

func quote(s string) string {
	return `"` + s + `"`
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
