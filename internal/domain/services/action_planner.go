package services

import (
	"ifcfg-agent/internal/domain/entities"
)

// ActionPlanner는 설정 파일 기록 이후 필요한 동작을 순서대로 결정합니다.
// 실행은 하지 않고 의도만 반환합니다.
type ActionPlanner struct{}

// NewActionPlanner는 새로운 ActionPlanner를 생성합니다
func NewActionPlanner() *ActionPlanner {
	return &ActionPlanner{}
}

// Plan은 동작 목록을 반환합니다. flush가 선언되었으면 주소 flush가 먼저 오고,
// 마지막은 항상 configPath 기록에 의존하는 NetworkManager reload입니다.
func (p *ActionPlanner) Plan(m *entities.InterfaceModel, configPath string) []entities.Action {
	var actions []entities.Action

	if m.Flush {
		actions = append(actions, entities.Action{
			ID:      entities.FlushActionID,
			Kind:    entities.ActionFlush,
			Command: []string{"ip", "addr", "flush", "dev", m.Device},
			Before:  []string{entities.ReloadActionID},
		})
	}

	actions = append(actions, entities.Action{
		ID:       entities.ReloadActionID,
		Kind:     entities.ActionReload,
		Command:  []string{"nmcli", "connection", "reload"},
		Requires: []string{entities.FileResource(configPath)},
	})

	return actions
}
