package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNx = 32
	DefaultNy = 32
	DefaultX0 = -1.0
	DefaultX1 = 1.0
	DefaultY0 = -1.0
	DefaultY1 = 1.0
)

type Config struct {
	Field    string       `yaml:"field"`
	Quantity string       `yaml:"quantity"`
	Nx       int          `yaml:"nx"`
	Ny       int          `yaml:"ny"`
	Domain   DomainConfig `yaml:"domain"`
}

type DomainConfig struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
	Y0 float64 `yaml:"y0"`
	Y1 float64 `yaml:"y1"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:    "trig",
		Quantity: "value",
		Nx:       DefaultNx,
		Ny:       DefaultNy,
		Domain: DomainConfig{
			X0: DefaultX0,
			X1: DefaultX1,
			Y0: DefaultY0,
			Y1: DefaultY1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
