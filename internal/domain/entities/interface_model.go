package entities

import "fmt"

// InterfaceState는 인터페이스의 선언된 상태입니다
type InterfaceState string

const (
	StateUp   InterfaceState = "up"
	StateDown InterfaceState = "down"
)

// ParseInterfaceState는 ensure 값을 InterfaceState로 변환합니다
func ParseInterfaceState(s string) (InterfaceState, bool) {
	switch InterfaceState(s) {
	case StateUp, StateDown:
		return InterfaceState(s), true
	}
	return "", false
}

// InterfaceModel은 검증이 끝난 하나의 인터페이스 설정입니다.
// ModelBuilder만 생성하며, 생성 이후에는 Renderer와 ActionPlanner가 읽기만 합니다.
type InterfaceModel struct {
	// Name은 선언 제목이며 ifcfg 파일 이름에 쓰입니다
	Name string
	// Device는 VLAN 접미사를 뗀 기본 장치 이름입니다 (fact 조회와 flush 대상)
	Device string
	// Interface는 DEVICE= 줄에 기록되는 값입니다
	Interface string
	State     InterfaceState

	IPv4Address OptionalString
	IPv4Netmask OptionalString
	IPv4Gateway OptionalString
	DNS1        OptionalString
	DNS2        OptionalString

	MacAddress   OptionalString
	ManageHwaddr bool
	MTU          OptionalString

	EthtoolOpts OptionalString
	Domain      OptionalString
	Scope       OptionalString

	Userctl      OptionalBool
	PeerDNS      OptionalBool
	IPv6Init     OptionalBool
	IPv6Autoconf OptionalBool
	IPv6PeerDNS  OptionalBool

	IPv6Address IPv6Value
	IPv6Gateway OptionalString

	LinkDelay OptionalString
	DefRoute  OptionalString
	Metric    OptionalString
	Zone      OptionalString

	Flush bool
}

// OnBoot는 부팅 시 활성화 여부입니다
func (m *InterfaceModel) OnBoot() bool {
	return m.State == StateUp
}

// Hotplug는 핫플러그 활성화 여부입니다
func (m *InterfaceModel) Hotplug() bool {
	return m.State == StateUp
}

// ConfigFileName은 ifcfg 파일 이름을 반환합니다
func (m *InterfaceModel) ConfigFileName() string {
	return fmt.Sprintf("ifcfg-%s", m.Name)
}
