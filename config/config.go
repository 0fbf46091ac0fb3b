// Package config loads and validates the application configuration.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// App is the full application configuration.
type App struct {
	Server  Server  `yaml:"server"`
	Data    Data    `yaml:"data"`
	Weather Weather `yaml:"weather"`
}

type Server struct {
	Port int    `yaml:"port" validate:"gte=0,lte=65535"`
	Env  string `yaml:"env"`
}

// Data points at the raw sources a load consumes. Shifts and calendar are
// required; the presence map and station directory are optional extras.
type Data struct {
	Shifts   string `yaml:"shifts" validate:"required"`
	Calendar string `yaml:"calendar" validate:"required"`
	Presence string `yaml:"presence"`
	Stations string `yaml:"stations"`
}

type Weather struct {
	FeedURL string `yaml:"feed_url"`
}

const defaultPort = 4000

// Load reads and validates a YAML configuration file.
func Load(path string) (App, error) {
	var cfg App
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	return cfg, nil
}
