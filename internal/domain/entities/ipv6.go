package entities

// IPv6Kind는 ipv6address 선언의 형태입니다
type IPv6Kind int

const (
	IPv6None IPv6Kind = iota
	IPv6Single
	IPv6List
)

// IPv6Value는 단일 주소 또는 순서가 있는 주소 목록을 표현하는 태그드 값입니다.
// 형태는 검증 경계에서 한 번 결정됩니다.
type IPv6Value struct {
	kind      IPv6Kind
	addresses []string
}

// NewSingleIPv6는 단일 주소 값을 생성합니다
func NewSingleIPv6(addr string) IPv6Value {
	return IPv6Value{kind: IPv6Single, addresses: []string{addr}}
}

// NewIPv6List는 선언 순서를 보존하는 주소 목록 값을 생성합니다
func NewIPv6List(addrs []string) IPv6Value {
	copied := make([]string, len(addrs))
	copy(copied, addrs)
	return IPv6Value{kind: IPv6List, addresses: copied}
}

// Kind는 값의 형태를 반환합니다
func (v IPv6Value) Kind() IPv6Kind {
	return v.kind
}

// IsSet은 하나 이상의 주소가 있는지 확인합니다
func (v IPv6Value) IsSet() bool {
	return len(v.addresses) > 0
}

// Primary는 첫 번째 주소를 반환합니다
func (v IPv6Value) Primary() (string, bool) {
	if len(v.addresses) == 0 {
		return "", false
	}
	return v.addresses[0], true
}

// Secondaries는 첫 번째를 제외한 나머지 주소를 순서대로 반환합니다
func (v IPv6Value) Secondaries() []string {
	if len(v.addresses) < 2 {
		return nil
	}
	rest := make([]string, len(v.addresses)-1)
	copy(rest, v.addresses[1:])
	return rest
}

// Addresses는 모든 주소의 복사본을 반환합니다
func (v IPv6Value) Addresses() []string {
	copied := make([]string, len(v.addresses))
	copy(copied, v.addresses)
	return copied
}
