// Package config loads the ptcg CLI configuration from file, environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sternrassler/ptcg-client/pkg/client"
	"github.com/Sternrassler/ptcg-client/pkg/logging"
	"github.com/Sternrassler/ptcg-client/pkg/store"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PTCG_REDIS_ADDR.
// The API key is also read from PTCG_API_KEY.
const EnvPrefix = "PTCG"

// Load loads the configuration. An explicit configPath must exist; without
// one, ./ptcg.yaml and ~/.config/ptcg/ptcg.yaml are tried and a missing file
// falls back to defaults and environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api.api_key", "PTCG_API_KEY", "PTCG_API_API_KEY")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ptcg")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ptcg"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	defaults := client.DefaultConfig()

	v.SetDefault("api.base_url", defaults.BaseURL)
	v.SetDefault("api.api_key", "")
	v.SetDefault("api.user_agent", defaults.UserAgent)
	v.SetDefault("api.timeout", defaults.Timeout)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// validate checks if the configuration is valid.
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil || cfg.Logging.Level == "" {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		string(logging.FormatConsole): true,
		string(logging.FormatJSON):    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filters.%s is empty", name)
		}
	}

	return nil
}

// ClientConfig returns the API client configuration.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:   c.API.BaseURL,
		APIKey:    c.API.APIKey,
		UserAgent: c.API.UserAgent,
		Timeout:   c.API.Timeout,
	}
}

// StoreOptions returns the snapshot store connection options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// LoggingConfig returns the logger configuration.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:   logging.LogLevel(strings.ToLower(c.Logging.Level)),
		Format:  logging.Format(c.Logging.Format),
		NoColor: !c.Logging.Color,
		Output:  os.Stderr,
	}
}

// Filter returns the preset filter expression called name.
func (c *Config) Filter(name string) (string, error) {
	expression, ok := c.Filters[name]
	if !ok {
		return "", fmt.Errorf("filter preset %q not found in config", name)
	}
	return expression, nil
}
