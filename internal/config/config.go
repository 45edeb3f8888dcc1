package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"frozentoes.log"`
	Window   Window `yaml:"window"`
}

type Window struct {
	DisableMouse bool `yaml:"disable-mouse" env:"DISABLE_MOUSE"`
	CellWidth    int  `yaml:"cell-width" env:"CELL_WIDTH" env-default:"7"`
	CellHeight   int  `yaml:"cell-height" env:"CELL_HEIGHT" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file. A missing file falls back to the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
