package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/regnull/easysig"
)

// DefaultLogLevel is used when the configuration does not name a level.
const DefaultLogLevel = "info"

// Config is the top level config structure.
type Config struct {
	Signing easysig.Config
	Log     Log
}

// Log holds the logging configuration.
type Log struct {
	Level string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Signing: easysig.DefaultConfig(),
		Log:     Log{Level: DefaultLogLevel},
	}
}

// ReadConfig reads in the configuration file in .toml format. Values missing
// from the file keep their defaults.
func ReadConfig(filePath string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(filePath, config); err != nil {
		return nil, fmt.Errorf("unable to decode .toml file [%s] error [%s]", filePath, err)
	}

	return config, nil
}
