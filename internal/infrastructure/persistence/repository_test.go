package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/infrastructure/adapters"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interfaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLRepository_List(t *testing.T) {
	path := writeFile(t, `
interfaces:
  test1:
    ensure: up
    device: eth1
    ipaddress: 1.2.3.4
    netmask: 255.255.255.0
    mtu: 9000
    ipv6address:
      - "::1"
      - "::2"
  eth6.203:
    ensure: down
  empty:
`)

	repo := NewYAMLRepository(adapters.NewRealFileSystem(), path, quietLogger())
	decls, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, decls, 3)
	assert.Equal(t, "empty", decls[0].Title)
	assert.Empty(t, decls[0].Params)
	assert.Equal(t, "eth6.203", decls[1].Title)
	assert.Equal(t, "test1", decls[2].Title)

	params := decls[2].Params
	assert.Equal(t, "eth1", params["device"])
	assert.Equal(t, 9000, params["mtu"])
	assert.Equal(t, []interface{}{"::1", "::2"}, params["ipv6address"])
}

func TestYAMLRepository_Errors(t *testing.T) {
	t.Run("파일 없음", func(t *testing.T) {
		repo := NewYAMLRepository(adapters.NewRealFileSystem(), "/nonexistent/interfaces.yaml", quietLogger())
		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsSystemError(err))
	})

	t.Run("잘못된 구조", func(t *testing.T) {
		path := writeFile(t, "interfaces:\n  - test1\n")
		repo := NewYAMLRepository(adapters.NewRealFileSystem(), path, quietLogger())
		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("취소된 컨텍스트", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repo := NewYAMLRepository(adapters.NewRealFileSystem(), "/unused", quietLogger())
		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeDeclaration(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, params map[string]interface{})
	}{
		{
			name: "JSON 객체",
			raw:  `{"ensure":"up","mtu":9000,"flush":true,"ipv6address":["::1","::2"]}`,
			check: func(t *testing.T, params map[string]interface{}) {
				assert.Equal(t, "up", params["ensure"])
				assert.Equal(t, float64(9000), params["mtu"])
				assert.Equal(t, true, params["flush"])
				assert.Equal(t, []interface{}{"::1", "::2"}, params["ipv6address"])
			},
		},
		{
			name: "빈 params",
			raw:  "",
			check: func(t *testing.T, params map[string]interface{}) {
				assert.Empty(t, params)
			},
		},
		{
			name:    "배열은 거부",
			raw:     `["ensure"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := decodeDeclaration("test1", []byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test1", decl.Title)
			tt.check(t, decl.Params)
		})
	}
}
