package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"comanda/internal/config"
)

// fileConfig mirrors config.Config with durations as strings so the YAML file
// can say "10s" instead of nanosecond integers.
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Backend struct {
		BaseURL string `yaml:"baseUrl"`
		Timeout string `yaml:"timeout"`
	} `yaml:"backend"`
	Push struct {
		URL string `yaml:"url"`
	} `yaml:"push"`
	Sync struct {
		TablePollInterval    string `yaml:"tablePollInterval"`
		DeliveryPollInterval string `yaml:"deliveryPollInterval"`
	} `yaml:"sync"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	backendTimeout, err := time.ParseDuration(fc.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("parsing backend timeout: %w", err)
	}

	tablePoll, err := time.ParseDuration(fc.Sync.TablePollInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing table poll interval: %w", err)
	}

	deliveryPoll, err := time.ParseDuration(fc.Sync.DeliveryPollInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing delivery poll interval: %w", err)
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Backend: config.BackendConfig{
			BaseURL: fc.Backend.BaseURL,
			Timeout: backendTimeout,
		},
		Push: config.PushConfig{
			URL: fc.Push.URL,
		},
		Sync: config.SyncConfig{
			TablePollInterval:    tablePoll,
			DeliveryPollInterval: deliveryPoll,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
	}, nil
}
