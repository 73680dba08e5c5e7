package main

import (
	"github.com/vrischmann/envconfig"
)

const configPrefix = "PAON"

type Config struct {
	// channels that get a logging observer at startup
	Channels        []string `envconfig:"default=default"`
	Strict          bool     `envconfig:"default=false"`
	MaxMessageBytes int      `envconfig:"default=4096"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.InitWithPrefix(&cfg, configPrefix)
	if err != nil {
		return Config{}, err
	}
	return cfg, err
}
