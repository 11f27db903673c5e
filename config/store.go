package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fynloName            = "fynlo"
	fynloBaseURL         = "https://api.fynlo.co.uk"
	fynloAPIVersion      = "v1"
	fynloTimeoutMs       = 30000
	fynloRetryAttempts   = 3
	fynloRetryDelayMs    = 1000
	fynloCacheTTLMs      = 300000
	fynloCacheMaxEntries = 1000
	fynloDebounceMs      = 300
	fynloAuthHeader      = "Authorization"
	fynloAuthTokenPrefix = "Bearer "
	fynloUserAgent       = "fynlo-go"

	configDirName  = ".fynlo"
	configFileName = "config.yaml"
)

type ConfigStore interface {
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	path, _ := getPath()
	return &FileIO{configFilePath: path}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (Config, error) {
	var result Config

	buf, err := os.ReadFile(f.configFilePath)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, err
	}

	return result, nil
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		Name:            fynloName,
		BaseURL:         fynloBaseURL,
		APIVersion:      fynloAPIVersion,
		TimeoutMs:       fynloTimeoutMs,
		RetryAttempts:   fynloRetryAttempts,
		RetryDelayMs:    fynloRetryDelayMs,
		CacheTTLMs:      fynloCacheTTLMs,
		CacheMaxEntries: fynloCacheMaxEntries,
		DebounceMs:      fynloDebounceMs,
		AuthHeader:      fynloAuthHeader,
		AuthTokenPrefix: fynloAuthTokenPrefix,
		UserAgent:       fynloUserAgent,
	}
}

func (f *FileIO) Write(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0644)
}

func getPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDirName, configFileName), nil
}
