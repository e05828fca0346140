package entities

// Declaration은 하나의 네트워크 인터페이스 선언입니다.
// Params는 YAML/JSON에서 디코딩된 그대로의 값(string, bool, 숫자, 리스트, 맵)을 담습니다.
type Declaration struct {
	Title  string
	Params map[string]interface{}
}
