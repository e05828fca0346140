package entities

import "fmt"

// ActionKind는 설정 파일 기록 이후 수행할 동작의 종류입니다
type ActionKind string

const (
	ActionFlush  ActionKind = "flush"
	ActionReload ActionKind = "reload"
)

// 동작 식별자들
const (
	FlushActionID  = "network-flush"
	ReloadActionID = "nmcli_manage"
)

// Action은 오케스트레이터에게 전달되는 하나의 동작 의도입니다
type Action struct {
	ID      string
	Kind    ActionKind
	Command []string
	// Before는 이 동작보다 뒤에 와야 하는 동작 ID 목록입니다
	Before []string
	// Requires는 이 동작보다 먼저 끝나야 하는 리소스 목록입니다 (예: file:/etc/...)
	Requires []string
}

// FileResource는 파일 기록 리소스 식별자를 만듭니다
func FileResource(path string) string {
	return "file:" + path
}

// ValidateOrdering은 Before 제약이 슬라이스 순서로 만족되는지 검사합니다.
// Requires의 file: 리소스는 모든 동작보다 먼저 기록되므로 검사 대상이 아닙니다.
func ValidateOrdering(actions []Action) error {
	position := make(map[string]int, len(actions))
	for i, a := range actions {
		if _, dup := position[a.ID]; dup {
			return fmt.Errorf("duplicate action id: %s", a.ID)
		}
		position[a.ID] = i
	}

	for i, a := range actions {
		for _, next := range a.Before {
			j, ok := position[next]
			if !ok {
				return fmt.Errorf("action %s must come before unknown action %s", a.ID, next)
			}
			if j <= i {
				return fmt.Errorf("action %s must come before %s", a.ID, next)
			}
		}
		for _, req := range a.Requires {
			j, ok := position[req]
			if ok && j >= i {
				return fmt.Errorf("action %s requires %s to run first", a.ID, req)
			}
		}
	}
	return nil
}
