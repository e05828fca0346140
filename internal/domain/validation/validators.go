// Package validation은 인터페이스 선언 필드의 타입 검증기를 제공합니다.
// 모든 검증기는 순수 함수이며 실패 시 문제 값을 메시지에 포함한 DomainError를 반환합니다.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"

	"inet.af/netaddr"
)

var (
	// 콜론으로 구분된 16진수 6옥텟
	macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

	// 점으로 구분된 10진수 4옥텟
	dottedQuadPattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3}){3}$`)
)

// IPv4는 점 표기 IPv4 주소인지 검증합니다
func IPv4(value string) error {
	if !dottedQuadPattern.MatchString(value) {
		return invalidIPv4(value)
	}
	ip, err := netaddr.ParseIP(value)
	if err != nil || !ip.Is4() {
		return invalidIPv4(value)
	}
	return nil
}

// IPv6는 IPv6 주소(선택적 /prefixlen 포함)인지 검증합니다.
// 접두사 길이는 주소 검증 전에 제거됩니다.
func IPv6(value string) error {
	if !isIPv6(value) {
		return errors.New(errors.ErrorTypeInvalidIPv6, fmt.Sprintf("%s is not an IPv6 address.", value))
	}
	return nil
}

// IPv6Value는 ipv6address 원시 값을 태그드 값으로 변환하며 검증합니다.
// 문자열은 단일 주소, 리스트는 각 원소를 순서대로 검증하고,
// 그 외 형태는 내용을 문자열로 풀어 에러 메시지에 담습니다.
func IPv6Value(raw interface{}) (entities.IPv6Value, error) {
	switch v := raw.(type) {
	case string:
		if err := IPv6(v); err != nil {
			return entities.IPv6Value{}, err
		}
		return entities.NewSingleIPv6(v), nil

	case []string:
		return ipv6List(v)

	case []interface{}:
		addrs := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return entities.IPv6Value{}, invalidIPv6InList(fmt.Sprintf("%v", elem))
			}
			addrs = append(addrs, s)
		}
		return ipv6List(addrs)
	}

	return entities.IPv6Value{}, errors.New(errors.ErrorTypeInvalidIPv6, fmt.Sprintf("%v is not an IPv6 address.", raw))
}

// MAC는 콜론 구분 MAC 주소인지 검증합니다
func MAC(value string) error {
	if !macPattern.MatchString(value) {
		return errors.New(errors.ErrorTypeInvalidMAC, fmt.Sprintf("%s is not a MAC address.", value))
	}
	return nil
}

// Bool은 불리언 또는 true/false/yes/no 문자열(대소문자 무시)을 bool로 변환합니다
func Bool(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true", "yes":
			return true, nil
		case "false", "no":
			return false, nil
		}
	}
	return false, errors.New(errors.ErrorTypeInvalidBoolean, fmt.Sprintf("%v is not a boolean.", raw))
}

// Numeric은 양의 10진 정수 문자열인지 검증합니다
func Numeric(value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil || n == 0 {
		return errors.New(errors.ErrorTypeInvalidNumeric, fmt.Sprintf("%s is not a positive integer.", value))
	}
	return nil
}

func ipv6List(addrs []string) (entities.IPv6Value, error) {
	if len(addrs) == 0 {
		return entities.IPv6Value{}, nil
	}
	for _, addr := range addrs {
		if !isIPv6(addr) {
			return entities.IPv6Value{}, invalidIPv6InList(addr)
		}
	}
	return entities.NewIPv6List(addrs), nil
}

// isIPv6는 존(zone) 없는 IPv6 리터럴 또는 리터럴/접두사 길이를 허용합니다
func isIPv6(value string) bool {
	if strings.Contains(value, "/") {
		prefix, err := netaddr.ParseIPPrefix(value)
		if err != nil {
			return false
		}
		ip := prefix.IP()
		return ip.Is6() && ip.Zone() == "" && prefix.Bits() <= 128
	}
	ip, err := netaddr.ParseIP(value)
	return err == nil && ip.Is6() && ip.Zone() == ""
}

func invalidIPv4(value string) error {
	return errors.New(errors.ErrorTypeInvalidIPv4, fmt.Sprintf("%s is not an IP address.", value))
}

func invalidIPv6InList(value string) error {
	return errors.New(errors.ErrorTypeInvalidIPv6InList, fmt.Sprintf("%s is not an IP(v6) address.", value))
}
