package services

import (
	"regexp"
)

// VLAN 접미사: 기본 장치 + "." + 숫자 태그
var vlanSuffixPattern = regexp.MustCompile(`^(.+)\.([0-9]+)$`)

// BaseDevice는 인터페이스 이름에서 VLAN 접미사를 제거한 기본 장치 이름을 반환합니다.
// 접미사가 없으면 이름을 그대로 반환합니다.
func BaseDevice(name string) string {
	if m := vlanSuffixPattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// VLANTag는 이름에 VLAN 접미사가 있으면 태그를 반환합니다
func VLANTag(name string) (string, bool) {
	if m := vlanSuffixPattern.FindStringSubmatch(name); m != nil {
		return m[2], true
	}
	return "", false
}
