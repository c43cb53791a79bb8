package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Push    PushConfig
	Sync    SyncConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

// BackendConfig points at the remote restaurant backend that owns all
// persistence and business logic.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type PushConfig struct {
	URL string
}

type SyncConfig struct {
	TablePollInterval    time.Duration
	DeliveryPollInterval time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8090)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8080/api/back-whatsapp-qr-app")
	viper.SetDefault("BACKEND_TIMEOUT", "10s")
	viper.SetDefault("PUSH_URL", "ws://localhost:8080/api/back-whatsapp-qr-app/events")
	viper.SetDefault("TABLE_POLL_INTERVAL", "15s")
	viper.SetDefault("DELIVERY_POLL_INTERVAL", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	backendTimeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	tablePoll, err := time.ParseDuration(viper.GetString("TABLE_POLL_INTERVAL"))
	if err != nil {
		return nil, err
	}

	deliveryPoll, err := time.ParseDuration(viper.GetString("DELIVERY_POLL_INTERVAL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: backendTimeout,
		},
		Push: PushConfig{
			URL: viper.GetString("PUSH_URL"),
		},
		Sync: SyncConfig{
			TablePollInterval:    tablePoll,
			DeliveryPollInterval: deliveryPoll,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
