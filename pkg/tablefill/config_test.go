package tablefill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "officeDocument", config.MainPart)
	assert.True(t, config.PreserveSpace)
	assert.NoError(t, config.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "log level",
			envVars: map[string]string{"TABLEFILL_LOG_LEVEL": "DEBUG"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.LogLevel)
			},
		},
		{
			name:    "log format",
			envVars: map[string]string{"TABLEFILL_LOG_FORMAT": "json"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "json", config.LogFormat)
			},
		},
		{
			name:    "main part",
			envVars: map[string]string{"TABLEFILL_MAIN_PART": "word/document2.xml"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "word/document2.xml", config.MainPart)
			},
		},
		{
			name:    "preserve space off",
			envVars: map[string]string{"TABLEFILL_PRESERVE_SPACE": "no"},
			check: func(t *testing.T, config *Config) {
				assert.False(t, config.PreserveSpace)
			},
		},
		{
			name:    "unset keeps defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, DefaultConfig(), config)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"TABLEFILL_LOG_LEVEL", "TABLEFILL_LOG_FORMAT", "TABLEFILL_MAIN_PART", "TABLEFILL_PRESERVE_SPACE"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"off level", func(c *Config) { c.LogLevel = "off" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty main part", func(c *Config) { c.MainPart = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tablefill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: WARN\npreserve_space: false\n"), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.PreserveSpace)
	assert.Equal(t, "officeDocument", config.MainPart, "missing keys keep defaults")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log_format: xml\n"), 0o644))
	_, err = LoadConfigFile(bad)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("log_level: [unclosed\n"), 0o644))
	_, err = LoadConfigFile(broken)
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGlobalConfig(t *testing.T) {
	prev := GetGlobalConfig()
	t.Cleanup(func() { SetGlobalConfig(prev) })

	config := DefaultConfig()
	config.MainPart = "word/document.xml"
	SetGlobalConfig(config)

	got := GetGlobalConfig()
	assert.Equal(t, "word/document.xml", got.MainPart)

	got.MainPart = "changed"
	assert.Equal(t, "word/document.xml", GetGlobalConfig().MainPart, "GetGlobalConfig returns a copy")
	assert.Equal(t, "word/document.xml", New().Config().MainPart)
}
