package adapters

import (
	"context"
	"testing"
	"time"

	domainErrors "ifcfg-agent/internal/domain/errors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommandExecutor_Execute(t *testing.T) {
	executor := NewRealCommandExecutor(logrus.New())

	output, err := executor.Execute(context.Background(), "sh", "-c", "echo ifcfg")
	require.NoError(t, err)
	assert.Equal(t, "ifcfg\n", string(output))

	_, err = executor.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.True(t, domainErrors.IsSystemError(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestRealCommandExecutor_ExecuteWithTimeout(t *testing.T) {
	executor := NewRealCommandExecutor(logrus.New())

	_, err := executor.ExecuteWithTimeout(context.Background(), 50*time.Millisecond, "sleep", "5")
	require.Error(t, err)
	assert.True(t, domainErrors.IsTimeoutError(err))

	output, err := executor.ExecuteWithTimeout(context.Background(), 5*time.Second, "sh", "-c", "printf ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(output))
}
