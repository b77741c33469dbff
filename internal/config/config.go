// Package config reads the settings of the tennis command
// from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultEnvFile = ".env"

type Config struct {
	// Name of the first player
	Player1 string `env:"TENNIS_PLAYER1,default=player1"`
	// Name of the second player
	Player2 string `env:"TENNIS_PLAYER2,default=player2"`
	// A logrus level name (e.g. "debug", "warn")
	LogLevel string `env:"TENNIS_LOG_LEVEL,default=info"`
}

// Loads the config from the environment after applying
// the variables of envFile. Variables that are already
// set take precedence over the file.
//
// An empty envFile means DefaultEnvFile which is skipped
// when it does not exist.
func Load(envFile string) (*Config, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}

	err := godotenv.Load(envFile)
	if err != nil && !(optional && errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	config := &Config{}
	err = envdecode.Decode(config)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}

	if _, err := config.Level(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("TENNIS_LOG_LEVEL: %w", err)
	}
	return level, nil
}
