package tablefill

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for the tablefill engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// LogFormat selects the log output format (text, json)
	LogFormat string `yaml:"log_format"`
	// MainPart selects the part holding the template table: a part name such as
	// "word/document.xml" or a package relationship type such as "officeDocument".
	MainPart string `yaml:"main_part"`
	// PreserveSpace marks substituted text that starts or ends with whitespace
	// with xml:space="preserve".
	PreserveSpace bool `yaml:"preserve_space"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		MainPart:      "officeDocument",
		PreserveSpace: true,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// TABLEFILL_LOG_LEVEL
	if val := os.Getenv("TABLEFILL_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	// TABLEFILL_LOG_FORMAT
	if val := os.Getenv("TABLEFILL_LOG_FORMAT"); val != "" {
		config.LogFormat = strings.ToLower(val)
	}

	// TABLEFILL_MAIN_PART
	if val := os.Getenv("TABLEFILL_MAIN_PART"); val != "" {
		config.MainPart = val
	}

	// TABLEFILL_PRESERVE_SPACE
	if val := os.Getenv("TABLEFILL_PRESERVE_SPACE"); val != "" {
		config.PreserveSpace = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a YAML configuration file. Keys missing from the file keep
// their default values.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log format: " + c.LogFormat)
	}

	if strings.TrimSpace(c.MainPart) == "" {
		return errors.New("main part cannot be empty")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// outside the lock: the logger reads the config back
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
