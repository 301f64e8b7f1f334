package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5000", config.Server.Port)
	assert.Equal(t, BackendIITM, config.ASR.Backend)
	assert.Equal(t, "https://asr.iitm.ac.in/internal/asr/decode", config.ASR.URL)
	assert.Zero(t, config.ASR.Timeout)
	assert.Equal(t, "english", config.ASR.DefaultLanguage)
	assert.Equal(t, DriverMemory, config.Store.Driver)
	assert.Equal(t, int64(32<<20), config.Server.MaxUploadBytes())
	assert.Equal(t, "0.0.0.0:5000", config.Server.Address())
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("TEST_ASR_HOST", "asr.internal")
	path := writeConfig(t, `
server:
  port: "8080"
  environment: production
  read_timeout: 15s
asr:
  url: http://${TEST_ASR_HOST}/decode
  timeout: 90s
  default_language: hindi
store:
  driver: sqlite
log:
  development: true
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Server.Port)
	assert.True(t, config.Server.IsProduction())
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, "http://asr.internal/decode", config.ASR.URL)
	assert.Equal(t, 90*time.Second, config.ASR.Timeout)
	assert.Equal(t, "hindi", config.ASR.DefaultLanguage)
	assert.Equal(t, DriverSQLite, config.Store.Driver)
	assert.True(t, config.Log.Development)
	// untouched keys keep their defaults
	assert.Equal(t, 120*time.Second, config.Server.IdleTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"8080\"\n")
	t.Setenv("SPEECH_SEARCH_PORT", "9090")
	t.Setenv("SPEECH_SEARCH_ASR_TIMEOUT", "45s")
	t.Setenv("SPEECH_SEARCH_STORE_DRIVER", "sqlite")
	t.Setenv("SPEECH_SEARCH_LOG_DEVELOPMENT", "true")
	t.Setenv("SPEECH_SEARCH_MAX_UPLOAD_MB", "8")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, 45*time.Second, config.ASR.Timeout)
	assert.Equal(t, DriverSQLite, config.Store.Driver)
	assert.True(t, config.Log.Development)
	assert.Equal(t, int64(8), config.Server.MaxUploadMB)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		yaml          string
		env           map[string]string
		errorContains string
	}{
		{
			name:          "unknown backend",
			yaml:          "asr:\n  backend: carrier-pigeon\n",
			errorContains: "unknown asr backend",
		},
		{
			name:          "openai without key",
			yaml:          "asr:\n  backend: openai\n",
			env:           map[string]string{"OPENAI_API_KEY": ""},
			errorContains: "OpenAI API key is required",
		},
		{
			name:          "openai with malformed key",
			yaml:          "asr:\n  backend: openai\n",
			env:           map[string]string{"OPENAI_API_KEY": "invalid-key"},
			errorContains: "must start with 'sk-'",
		},
		{
			name:          "unknown store driver",
			yaml:          "store:\n  driver: redis\n",
			errorContains: "unknown store driver",
		},
		{
			name:          "bad port",
			yaml:          "server:\n  port: \"99999\"\n",
			errorContains: "out of range",
		},
		{
			name:          "relative asr url",
			yaml:          "asr:\n  url: /decode\n",
			errorContains: "scheme must be http or https",
		},
		{
			name:          "malformed env duration",
			yaml:          "",
			env:           map[string]string{"SPEECH_SEARCH_ASR_TIMEOUT": "soon"},
			errorContains: "invalid SPEECH_SEARCH_ASR_TIMEOUT",
		},
		{
			name:          "invalid yaml",
			yaml:          "server: [",
			errorContains: "failed to parse YAML",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(writeConfig(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestLoad_OpenAIBackend(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-1234567890abcdef1234567890abcdef")
	t.Setenv("SPEECH_SEARCH_ASR_BACKEND", "openai")

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendOpenAI, config.ASR.Backend)
	assert.Equal(t, "sk-1234567890abcdef1234567890abcdef", config.ASR.OpenAIAPIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SPEECH_SEARCH_DOTENV_VALUE=from-dotenv\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Setenv("SPEECH_SEARCH_DOTENV_VALUE", "")
	os.Unsetenv("SPEECH_SEARCH_DOTENV_VALUE")

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("SPEECH_SEARCH_DOTENV_VALUE"))
}

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, ValidateTimeout(0, "asr"))
	assert.Error(t, ValidateTimeout(-time.Second, "asr"))
	assert.Error(t, ValidateTimeout(time.Hour, "asr"))
}
