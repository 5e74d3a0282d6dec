package main

import (
	"fmt"
	"os"

	"github.com/blukai/vlq/internal/vlqcache"
	"github.com/kelseyhightower/envconfig"
	"github.com/phuslu/log"
)

type Config struct {
	CacheSize int    `envconfig:"CACHE_SIZE" default:"1024"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

func loadConfig() (*Config, error) {
	config := new(Config)
	if err := envconfig.Process("vlq", config); err != nil {
		return nil, err
	}
	return config, nil
}

func configureLogger(level string) *log.Logger {
	logger := log.DefaultLogger

	// https://github.com/phuslu/log?tab=readme-ov-file#pretty-console-writer
	logger.Level = log.ParseLevel(level)
	logger.TimeFormat = "15:04:05"
	logger.Writer = &log.ConsoleWriter{
		ColorOutput:    true,
		QuoteString:    true,
		EndWithMessage: true,
		Writer:         os.Stderr,
	}

	return &logger
}

func erringMain(args []string) error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("could not process config: %w", err)
	}

	logger := configureLogger(config.LogLevel)

	cache, err := vlqcache.New(config.CacheSize, logger)
	if err != nil {
		return fmt.Errorf("could not construct decode cache: %w", err)
	}

	rootCmd := newRootCmd(cache, logger)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := erringMain(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vlq: %v\n", err)
		os.Exit(1)
	}
}
