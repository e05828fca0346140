package services

import (
	"testing"

	"ifcfg-agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, title string, params map[string]interface{}, facts fakeFacts) *entities.InterfaceModel {
	t.Helper()
	model, err := newTestBuilder().Build(entities.Declaration{Title: title, Params: params}, facts)
	require.NoError(t, err)
	return model
}

func TestIfcfgRenderer_Render(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		params map[string]interface{}
		facts  fakeFacts
		want   []string
	}{
		{
			name:  "필수 파라미터",
			title: "test1",
			params: map[string]interface{}{
				"ensure":    "up",
				"device":    "eth1",
				"ipaddress": "1.2.3.4",
				"netmask":   "255.255.255.0",
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth1": "fe:fe:fe:aa:aa:aa"},
			want: []string{
				"DEVICE=eth1",
				"BOOTPROTO=none",
				"HWADDR=fe:fe:fe:aa:aa:aa",
				"ONBOOT=yes",
				"HOTPLUG=yes",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"PEERDNS=no",
				"NM_CONTROLLED=yes",
			},
		},
		{
			name:  "선택 파라미터 전체",
			title: "test1",
			params: map[string]interface{}{
				"ensure":       "down",
				"device":       "eth1",
				"ipaddress":    "1.2.3.4",
				"netmask":      "255.255.255.0",
				"gateway":      "1.2.3.1",
				"macaddress":   "ef:ef:ef:ef:ef:ef",
				"userctl":      true,
				"mtu":          "9000",
				"ethtool_opts": "speed 1000 duplex full autoneg off",
				"peerdns":      true,
				"dns1":         "3.4.5.6",
				"dns2":         "5.6.7.8",
				"domain":       "somedomain.com",
				"ipv6init":     true,
				"ipv6autoconf": true,
				"ipv6peerdns":  true,
				"ipv6address":  "123:4567:89ab:cdef:123:4567:89ab:cdef/64",
				"ipv6gateway":  "123:4567:89ab:cdef:123:4567:89ab:1",
				"linkdelay":    "5",
				"scope":        "peer 1.2.3.1",
				"defroute":     "yes",
				"metric":       "10",
				"zone":         "trusted",
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth1": "fe:fe:fe:aa:aa:aa"},
			want: []string{
				"DEVICE=eth1",
				"BOOTPROTO=none",
				"HWADDR=ef:ef:ef:ef:ef:ef",
				"ONBOOT=no",
				"HOTPLUG=no",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"GATEWAY=1.2.3.1",
				"MTU=9000",
				`ETHTOOL_OPTS="speed 1000 duplex full autoneg off"`,
				"PEERDNS=yes",
				"DNS1=3.4.5.6",
				"DNS2=5.6.7.8",
				`DOMAIN="somedomain.com"`,
				"USERCTL=yes",
				"IPV6INIT=yes",
				"IPV6_AUTOCONF=yes",
				"IPV6ADDR=123:4567:89ab:cdef:123:4567:89ab:cdef/64",
				"IPV6_DEFAULTGW=123:4567:89ab:cdef:123:4567:89ab:1",
				"IPV6_PEERDNS=yes",
				"LINKDELAY=5",
				`SCOPE="peer 1.2.3.1"`,
				"DEFROUTE=yes",
				"ZONE=trusted",
				"METRIC=10",
				"NM_CONTROLLED=yes",
			},
		},
		{
			name:  "VLAN",
			title: "eth6.203",
			params: map[string]interface{}{
				"ensure":    "up",
				"ipaddress": "1.2.3.4",
				"netmask":   "255.255.255.0",
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth6": "bb:cc:bb:cc:bb:cc"},
			want: []string{
				"DEVICE=eth6.203",
				"BOOTPROTO=none",
				"HWADDR=bb:cc:bb:cc:bb:cc",
				"ONBOOT=yes",
				"HOTPLUG=yes",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"PEERDNS=no",
				"NM_CONTROLLED=yes",
			},
		},
		{
			name:  "manage_hwaddr 비활성",
			title: "test0",
			params: map[string]interface{}{
				"ensure":        "up",
				"device":        "eth0",
				"ipaddress":     "1.2.3.4",
				"netmask":       "255.255.255.0",
				"manage_hwaddr": false,
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth0": "bb:cc:bb:cc:bb:cc"},
			want: []string{
				"DEVICE=eth0",
				"BOOTPROTO=none",
				"ONBOOT=yes",
				"HOTPLUG=yes",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"PEERDNS=no",
				"NM_CONTROLLED=yes",
			},
		},
		{
			name:  "리스트의 단일 ipv6address",
			title: "test1",
			params: map[string]interface{}{
				"ensure":      "up",
				"device":      "eth1",
				"ipaddress":   "1.2.3.4",
				"netmask":     "255.255.255.0",
				"ipv6init":    true,
				"ipv6address": []interface{}{"123:4567:89ab:cdef:123:4567:89ab:cdee"},
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth1": "fe:fe:fe:aa:aa:aa"},
			want: []string{
				"DEVICE=eth1",
				"BOOTPROTO=none",
				"HWADDR=fe:fe:fe:aa:aa:aa",
				"ONBOOT=yes",
				"HOTPLUG=yes",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"PEERDNS=no",
				"IPV6INIT=yes",
				"IPV6ADDR=123:4567:89ab:cdef:123:4567:89ab:cdee",
				"NM_CONTROLLED=yes",
			},
		},
		{
			name:  "여러 ipv6address",
			title: "test1",
			params: map[string]interface{}{
				"ensure":    "up",
				"device":    "eth1",
				"ipaddress": "1.2.3.4",
				"netmask":   "255.255.255.0",
				"ipv6init":  true,
				"ipv6address": []interface{}{
					"123:4567:89ab:cdef:123:4567:89ab:cded",
					"123:4567:89ab:cdef:123:4567:89ab:cdee",
					"123:4567:89ab:cdef:123:4567:89ab:cdef",
				},
			},
			facts: fakeFacts{"osfamily": "RedHat", "macaddress_eth1": "fe:fe:fe:aa:aa:aa"},
			want: []string{
				"DEVICE=eth1",
				"BOOTPROTO=none",
				"HWADDR=fe:fe:fe:aa:aa:aa",
				"ONBOOT=yes",
				"HOTPLUG=yes",
				"TYPE=Ethernet",
				"IPADDR=1.2.3.4",
				"NETMASK=255.255.255.0",
				"PEERDNS=no",
				"IPV6INIT=yes",
				"IPV6ADDR=123:4567:89ab:cdef:123:4567:89ab:cded",
				`IPV6ADDR_SECONDARIES="123:4567:89ab:cdef:123:4567:89ab:cdee 123:4567:89ab:cdef:123:4567:89ab:cdef"`,
				"NM_CONTROLLED=yes",
			},
		},
	}

	renderer := NewIfcfgRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := buildModel(t, tt.title, tt.params, tt.facts)
			assert.Equal(t, tt.want, renderer.Render(model))
		})
	}
}

func TestIfcfgRenderer_PresenceNotTruthiness(t *testing.T) {
	model := buildModel(t, "test1", map[string]interface{}{
		"ensure":   "up",
		"userctl":  false,
		"ipv6init": false,
		"domain":   "",
	}, nil)

	lines := NewIfcfgRenderer().Render(model)

	assert.Contains(t, lines, "USERCTL=no")
	assert.Contains(t, lines, "IPV6INIT=no")
	assert.Contains(t, lines, `DOMAIN=""`)
	assert.Contains(t, lines, "PEERDNS=no")
	assert.NotContains(t, lines, "IPV6_AUTOCONF=no")
	for _, line := range lines {
		assert.NotRegexp(t, `^(IPADDR|NETMASK|HWADDR|MTU|IPV6ADDR)=`, line)
	}
}

func TestIfcfgRenderer_Deterministic(t *testing.T) {
	model := buildModel(t, "test1", map[string]interface{}{
		"ensure":      "up",
		"device":      "eth1",
		"ipaddress":   "1.2.3.4",
		"netmask":     "255.255.255.0",
		"ipv6address": []interface{}{"::1", "::2", "::3"},
	}, fakeFacts{"macaddress_eth1": "fe:fe:fe:aa:aa:aa"})

	renderer := NewIfcfgRenderer()
	first := renderer.RenderText(model)
	second := renderer.RenderText(model)

	assert.Equal(t, first, second)
	assert.Equal(t, byte('\n'), first[len(first)-1])
	assert.Contains(t, string(first), "IPV6ADDR=::1\nIPV6ADDR_SECONDARIES=\"::2 ::3\"\n")
}
