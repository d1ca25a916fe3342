package web

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tablefit/tablefit"
)

// Config holds server settings loaded from a YAML file.
type Config struct {
	Listen        string  `yaml:"listen"`
	MaxWidth      int     `yaml:"max_width"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Listen:        ":8080",
		MaxWidth:      tablefit.DefaultMaxWidth,
		RatePerSecond: 5,
		RateBurst:     10,
	}
}

// LoadConfig reads a Config from path. A missing file yields the defaults;
// keys absent from the file keep their default values. A file that exists
// but does not parse is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
