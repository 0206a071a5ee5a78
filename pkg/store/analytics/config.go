package analytics

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analytics config: %w", err)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint missing in %s", profilePath)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &cfg, nil
}
