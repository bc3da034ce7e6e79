package config

import (
	"github.com/bluegreyowl/gradebook/pkg/conf"
	"github.com/pkg/errors"
)

type Config struct {
	Storage struct {
		// csv or sqlite
		Backend string
		Path    string

		// Write a trailing grade column to the CSV file.
		// Loading always recomputes the grade from marks.
		PersistGrade bool
	}

	Grades struct {
		// Optional YAML grade scale; empty means the built-in scale.
		ScalePath string
	}

	Server struct {
		ListenAddress string
	}

	Log struct {
		// Optional rotating log file for the CLI.
		Path string
	}
}

func ParseConfig() (*Config, error) {
	config := &Config{}
	config.Storage.Backend = "csv"
	config.Storage.Path = "students.csv"
	config.Server.ListenAddress = ":18080"

	if err := conf.ParseConfig(config, conf.EnvPrefix("GB"), conf.ConfigName("gradebook")); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}
