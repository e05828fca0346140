package entities

// OptionalString은 선언 여부를 값과 함께 보관하는 문자열입니다.
// 선언되지 않은 필드와 빈 문자열로 선언된 필드를 구분합니다.
type OptionalString struct {
	value string
	set   bool
}

// SomeString은 선언된 문자열 값을 생성합니다
func SomeString(v string) OptionalString {
	return OptionalString{value: v, set: true}
}

// IsSet은 값이 선언되었는지 확인합니다
func (o OptionalString) IsSet() bool {
	return o.set
}

// Get은 값과 선언 여부를 반환합니다
func (o OptionalString) Get() (string, bool) {
	return o.value, o.set
}

// Value는 값을 반환합니다. 선언되지 않았다면 빈 문자열입니다
func (o OptionalString) Value() string {
	return o.value
}

// OptionalBool은 선언 여부를 값과 함께 보관하는 불리언입니다.
// "false로 선언됨"과 "선언되지 않음"을 구분합니다.
type OptionalBool struct {
	value bool
	set   bool
}

// SomeBool은 선언된 불리언 값을 생성합니다
func SomeBool(v bool) OptionalBool {
	return OptionalBool{value: v, set: true}
}

// IsSet은 값이 선언되었는지 확인합니다
func (o OptionalBool) IsSet() bool {
	return o.set
}

// Get은 값과 선언 여부를 반환합니다
func (o OptionalBool) Get() (bool, bool) {
	return o.value, o.set
}

// ValueOr는 선언된 값 또는 기본값을 반환합니다
func (o OptionalBool) ValueOr(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}
