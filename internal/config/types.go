package config

import "time"

// Config represents the complete configuration structure.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Filters FilterConfig  `mapstructure:"filters"`
}

// APIConfig holds the Pokémon TCG API connection details.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// RedisConfig locates the snapshot store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FilterConfig maps preset names to card filter expressions.
type FilterConfig map[string]string
