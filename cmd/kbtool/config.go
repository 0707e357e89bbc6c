package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
)

type Config struct {
	BadgerFilepath      string  `envconfig:"BADGER_FILEPATH"`
	LogLevel            string  `envconfig:"LOG_LEVEL" default:"WARN"`
	ConfidenceThreshold float64 `envconfig:"CONFIDENCE_THRESHOLD" default:"0.2"`
	Tokenizer           string  `envconfig:"TOKENIZER" default:"regexp"`
	Lemmatizer          string  `envconfig:"LEMMATIZER" default:"porter"`
	KnowledgeFile       string  `envconfig:"KNOWLEDGE_FILE"`
	InspectAddr         string  `envconfig:"INSPECT_ADDR" default:"localhost:8090"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}
	return cfg, nil
}
