package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"speech-search/internal/app/api/asr"
)

// ASR backends
const (
	BackendIITM   = "iitm"
	BackendOpenAI = "openai"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the complete service configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	ASR    ASRConfig    `yaml:"asr"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Environment     string        `yaml:"environment"`
	MaxUploadMB     int64         `yaml:"max_upload_mb"`
}

// ASRConfig selects and configures the speech recognition backend
type ASRConfig struct {
	Backend string `yaml:"backend"`
	URL     string `yaml:"url"`
	// zero means no client-side timeout
	Timeout         time.Duration     `yaml:"timeout"`
	DefaultLanguage string            `yaml:"default_language"`
	CustomHeaders   map[string]string `yaml:"custom_headers,omitempty"`
	OpenAIAPIKey    string            `yaml:"openai_api_key,omitempty"`
	OpenAIModel     string            `yaml:"openai_model,omitempty"`
	OpenAIBaseURL   string            `yaml:"openai_base_url,omitempty"`
}

// StoreConfig selects the transcript store
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn,omitempty"`
}

// LogConfig configures logging
type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "5000",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    0,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
			MaxUploadMB:     32,
		},
		ASR: ASRConfig{
			Backend:         BackendIITM,
			URL:             asr.DefaultURL,
			DefaultLanguage: "english",
		},
		Store: StoreConfig{
			Driver: DriverMemory,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and environment overrides, then validates it
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// ${VAR} references are expanded before parsing
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Address returns host:port for the HTTP listener
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// MaxUploadBytes returns the multipart memory limit in bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// IsProduction reports whether the server runs in production mode
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LoadWithEnv loads .env files before Load so they can feed overrides and
// ${VAR} references in the YAML file
func LoadWithEnv(path string) (*Config, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, err
	}
	return Load(path)
}
