package services

import (
	"testing"

	"ifcfg-agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/etc/sysconfig/network-scripts/ifcfg-test1"

func TestActionPlanner_Plan(t *testing.T) {
	facts := fakeFacts{"osfamily": "RedHat", "macaddress_eth1": "fe:fe:fe:aa:aa:aa"}
	planner := NewActionPlanner()

	t.Run("flush 없음 - reload만", func(t *testing.T) {
		model := buildModel(t, "test1", map[string]interface{}{
			"ensure":    "up",
			"device":    "eth1",
			"ipaddress": "1.2.3.4",
			"netmask":   "255.255.255.0",
		}, facts)

		actions := planner.Plan(model, testConfigPath)

		require.Len(t, actions, 1)
		reload := actions[0]
		assert.Equal(t, entities.ReloadActionID, reload.ID)
		assert.Equal(t, entities.ActionReload, reload.Kind)
		assert.Equal(t, []string{"file:" + testConfigPath}, reload.Requires)
		assert.NoError(t, entities.ValidateOrdering(actions))
	})

	t.Run("flush true - flush가 reload보다 먼저", func(t *testing.T) {
		model := buildModel(t, "test1", map[string]interface{}{
			"ensure":    "up",
			"device":    "eth1",
			"ipaddress": "1.2.3.4",
			"netmask":   "255.255.255.0",
			"flush":     true,
		}, facts)

		actions := planner.Plan(model, testConfigPath)

		require.Len(t, actions, 2)
		flush := actions[0]
		assert.Equal(t, entities.FlushActionID, flush.ID)
		assert.Equal(t, entities.ActionFlush, flush.Kind)
		assert.Equal(t, []string{"ip", "addr", "flush", "dev", "eth1"}, flush.Command)
		assert.Equal(t, []string{entities.ReloadActionID}, flush.Before)
		assert.Equal(t, entities.ActionReload, actions[len(actions)-1].Kind)
		assert.NoError(t, entities.ValidateOrdering(actions))
	})

	t.Run("flush 대상은 기본 장치", func(t *testing.T) {
		model := buildModel(t, "eth6.203", map[string]interface{}{
			"ensure": "up",
			"flush":  "yes",
		}, nil)

		actions := planner.Plan(model, "/tmp/ifcfg-eth6.203")

		require.Len(t, actions, 2)
		assert.Equal(t, "eth6", actions[0].Command[len(actions[0].Command)-1])
	})
}
