package interfaces

// 잘 알려진 fact 키
const (
	FactOSFamily         = "osfamily"
	FactMacAddressPrefix = "macaddress_"
)

// FactProvider는 환경에서 수집된 fact를 조회하는 인터페이스입니다
type FactProvider interface {
	// Fact는 키에 해당하는 fact 값을 반환합니다. 없으면 false입니다
	Fact(key string) (string, bool)
}

// MacAddressFactKey는 장치의 MAC 주소 fact 키를 만듭니다
func MacAddressFactKey(device string) string {
	return FactMacAddressPrefix + device
}
