package config

import (
	"fmt"
	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// 선언 소스 종류
const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

// Config is a struct that holds application configuration
type Config struct {
	Source   SourceConfig
	Database DatabaseConfig
	Agent    AgentConfig
	Health   HealthConfig
}

// SourceConfig holds where declarations and static facts come from
type SourceConfig struct {
	Type             string
	DeclarationsFile string
	FactsFile        string
}

// DatabaseConfig is a struct that holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// BackoffConfig holds exponential backoff polling settings
type BackoffConfig struct {
	Enabled     bool
	MaxInterval time.Duration
	Multiplier  float64
}

// AgentConfig is a struct that holds agent configuration
type AgentConfig struct {
	PollInterval    time.Duration
	Backoff         BackoffConfig
	MaxRetries      int
	RetryDelay      time.Duration
	CommandTimeout  time.Duration
	BackupDirectory string
	// ScriptsDir overrides the OS-derived ifcfg directory when set
	ScriptsDir string
	HostRoot   string
	DryRun     bool
}

// HealthConfig is a struct that holds health check configuration
type HealthConfig struct {
	Port string
}

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader is an implementation that loads configuration from environment variables
type EnvironmentConfigLoader struct{}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader
func NewEnvironmentConfigLoader() ConfigLoader {
	return &EnvironmentConfigLoader{}
}

// Load loads configuration from environment variables
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	config := &Config{
		Source: SourceConfig{
			Type:             strings.ToLower(getEnvOrDefault("DECLARATION_SOURCE", SourceFile)),
			DeclarationsFile: getEnvOrDefault("DECLARATIONS_FILE", constants.DefaultDeclarationsFile),
			FactsFile:        getEnvOrDefault("FACTS_FILE", constants.DefaultFactsFile),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", constants.DefaultDBHost),
			Port:         getEnvOrDefault("DB_PORT", constants.DefaultDBPort),
			User:         getEnvOrDefault("DB_USER", "root"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			Database:     getEnvOrDefault("DB_NAME", constants.DefaultDBName),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvDurationOrDefault("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Agent: AgentConfig{
			PollInterval: getEnvDurationOrDefault("POLL_INTERVAL", 60*time.Second),
			Backoff: BackoffConfig{
				Enabled:     getEnvBoolOrDefault("BACKOFF_ENABLED", true),
				MaxInterval: getEnvDurationOrDefault("BACKOFF_MAX_INTERVAL", 10*time.Minute),
				Multiplier:  getEnvFloatOrDefault("BACKOFF_MULTIPLIER", 2.0),
			},
			MaxRetries:      getEnvIntOrDefault("MAX_RETRIES", 3),
			RetryDelay:      getEnvDurationOrDefault("RETRY_DELAY", 2*time.Second),
			CommandTimeout:  getEnvDurationOrDefault("COMMAND_TIMEOUT", constants.DefaultCommandTimeout*time.Second),
			BackupDirectory: getEnvOrDefault("BACKUP_DIR", constants.DefaultBackupDir),
			ScriptsDir:      getEnvOrDefault("SCRIPTS_DIR", ""),
			HostRoot:        getEnvOrDefault("HOST_ROOT", ""),
			DryRun:          getEnvBoolOrDefault("DRY_RUN", false),
		},
		Health: HealthConfig{
			Port: getEnvOrDefault("HEALTH_PORT", constants.DefaultHealthPort),
		},
	}

	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validate validates the configuration
func (l *EnvironmentConfigLoader) validate(config *Config) error {
	switch config.Source.Type {
	case SourceFile:
		if config.Source.DeclarationsFile == "" {
			return errors.NewValidationError("declarations file not configured", nil)
		}
	case SourceMySQL:
		// Database settings only matter for the mysql source
		if config.Database.Host == "" {
			return errors.NewValidationError("database host not configured", nil)
		}
		if config.Database.Port == "" {
			return errors.NewValidationError("database port not configured", nil)
		}
		if config.Database.User == "" {
			return errors.NewValidationError("database user not configured", nil)
		}
		if config.Database.Database == "" {
			return errors.NewValidationError("database name not configured", nil)
		}
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown declaration source: %s", config.Source.Type), nil)
	}

	if config.Agent.PollInterval <= 0 {
		return errors.NewValidationError("invalid polling interval", nil)
	}
	if config.Agent.Backoff.Enabled && config.Agent.Backoff.MaxInterval < config.Agent.PollInterval {
		return errors.NewValidationError("backoff max interval must not be shorter than polling interval", nil)
	}
	if config.Agent.MaxRetries < 0 {
		return errors.NewValidationError("invalid max retry count", nil)
	}
	if config.Agent.CommandTimeout <= 0 {
		return errors.NewValidationError("invalid command timeout", nil)
	}

	if config.Health.Port == "" {
		return errors.NewValidationError("health check port not configured", nil)
	}

	return nil
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
