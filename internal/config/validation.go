package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port); err != nil {
		return err
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive")
	}
	for name, d := range map[string]time.Duration{
		"server read":     c.Server.ReadTimeout,
		"server write":    c.Server.WriteTimeout,
		"server idle":     c.Server.IdleTimeout,
		"server shutdown": c.Server.ShutdownTimeout,
		"asr":             c.ASR.Timeout,
	} {
		if err := ValidateTimeout(d, name); err != nil {
			return err
		}
	}

	switch c.ASR.Backend {
	case BackendIITM:
		if err := ValidateURL(c.ASR.URL, "asr url"); err != nil {
			return err
		}
	case BackendOpenAI:
		if err := ValidateAPIKey(c.ASR.OpenAIAPIKey); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown asr backend %q (want %s or %s)", c.ASR.Backend, BackendIITM, BackendOpenAI)
	}

	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.Store.Driver, DriverMemory, DriverSQLite)
	}

	return nil
}

// ValidatePort validates a TCP port number
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port %d out of range (must be between 1 and 65535)", n)
	}
	return nil
}

// ValidateTimeout validates a timeout where zero means none
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return fmt.Errorf("%s timeout cannot be negative", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateURL validates an absolute http(s) URL
func ValidateURL(raw string, name string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https", name)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s: host is required", name)
	}
	return nil
}

// ValidateAPIKey validates an OpenAI API key format
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("OpenAI API key is required for the openai backend (set OPENAI_API_KEY)")
	}
	if !strings.HasPrefix(apiKey, "sk-") {
		return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(apiKey) < 20 {
		return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	return nil
}
