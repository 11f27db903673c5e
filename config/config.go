package config

import "time"

// Config is read once at startup and treated as immutable afterwards.
// Durations are carried as milliseconds to match the platform's settings
// format.
type Config struct {
	Name            string `yaml:"name"`
	BaseURL         string `yaml:"base_url"`
	APIVersion      string `yaml:"api_version"`
	APIToken        string `yaml:"api_token"`
	TimeoutMs       int    `yaml:"timeout_ms"`
	RetryAttempts   int    `yaml:"retry_attempts"`
	RetryDelayMs    int    `yaml:"retry_delay_ms"`
	CacheTTLMs      int    `yaml:"cache_ttl_ms"`
	CacheMaxEntries int    `yaml:"cache_max_entries"`
	DebounceMs      int    `yaml:"debounce_ms"`
	AuthHeader      string `yaml:"auth_header"`
	AuthTokenPrefix string `yaml:"auth_token_prefix"`
	UserAgent       string `yaml:"user_agent"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMs) * time.Millisecond
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
