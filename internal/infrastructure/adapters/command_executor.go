package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	domainErrors "ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// RealCommandExecutor is a CommandExecutor implementation that executes actual system commands
type RealCommandExecutor struct {
	logger *logrus.Logger
}

// NewRealCommandExecutor creates a new RealCommandExecutor
func NewRealCommandExecutor(logger *logrus.Logger) interfaces.CommandExecutor {
	return &RealCommandExecutor{
		logger: logger,
	}
}

// Execute executes a command and returns its stdout
func (e *RealCommandExecutor) Execute(ctx context.Context, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	e.logger.WithFields(logrus.Fields{
		"command":  command,
		"args":     strings.Join(args, " "),
		"duration": time.Since(start),
		"success":  err == nil,
	}).Debug("command executed")

	if err != nil {
		return stdout.Bytes(), domainErrors.NewSystemError(
			fmt.Sprintf("command execution failed: %s %s", command, strings.Join(args, " ")),
			fmt.Errorf("%w, stderr: %s", err, strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.Bytes(), nil
}

// ExecuteWithTimeout executes a command with timeout
func (e *RealCommandExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := e.Execute(ctx, command, args...)
	if err != nil {
		// Convert to timeout error when context deadline exceeded
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domainErrors.NewTimeoutError(
				fmt.Sprintf("command execution timeout: %s %s (timeout: %v)", command, strings.Join(args, " "), timeout),
			)
		}
		return output, err
	}

	return output, nil
}
