package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPrefix namespaces every environment override
const envPrefix = "SPEECH_SEARCH_"

// LoadEnv loads environment variables from the first .env file found.
// Missing files are not an error; variables may be set system-wide.
// Variables already present in the environment are never overwritten.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// applyEnv overlays SPEECH_SEARCH_* variables and OPENAI_API_KEY on c
func (c *Config) applyEnv() error {
	setString(&c.Server.Host, "HOST")
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Environment, "ENV")
	setString(&c.ASR.Backend, "ASR_BACKEND")
	setString(&c.ASR.URL, "ASR_URL")
	setString(&c.ASR.DefaultLanguage, "ASR_DEFAULT_LANGUAGE")
	setString(&c.ASR.OpenAIModel, "OPENAI_MODEL")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.DSN, "STORE_DSN")

	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		c.ASR.OpenAIAPIKey = key
	}

	if err := setDuration(&c.ASR.Timeout, "ASR_TIMEOUT"); err != nil {
		return err
	}
	if err := setInt64(&c.Server.MaxUploadMB, "MAX_UPLOAD_MB"); err != nil {
		return err
	}
	return setBool(&c.Log.Development, "LOG_DEVELOPMENT")
}

func lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(envPrefix + name)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setString(dst *string, name string) {
	if value, ok := lookup(name); ok {
		*dst = value
	}
}

func setDuration(dst *time.Duration, name string) error {
	value, ok := lookup(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = d
	return nil
}

func setInt64(dst *int64, name string) error {
	value, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, name string) error {
	value, ok := lookup(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = b
	return nil
}
