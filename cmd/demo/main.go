package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/distribution-auth/optional/config"
	"github.com/distribution-auth/optional/scenario"
)

func main() {
	var (
		configFile string
		debug      bool
		err        error
	)

	flag.StringVar(&configFile, "config", "", "Scenario configuration file (defaults to the built-in scenario set)")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	scenarios := scenario.Defaults()

	if configFile != "" {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			logger.Sugar().Fatalf("Error reading config file %s: %v", configFile, err)
		}

		var cfg config.Config

		err = yaml.Unmarshal(raw, &cfg)
		if err != nil {
			logger.Sugar().Fatalf("Error parsing config file %s: %v", configFile, err)
		}

		err = cfg.Validate()
		if err != nil {
			logger.Sugar().Fatalf("Invalid configuration: %v", err)
		}

		scenarios, err = cfg.CreateScenarios()
		if err != nil {
			logger.Sugar().Fatalf("Error creating scenarios: %v", err)
		}
	}

	for _, s := range scenarios {
		logger.Info("running scenario", zap.String("scenario", s.Name()))

		err = s.Run(logger)
		if err != nil {
			logger.Sugar().Fatalf("Scenario %s failed: %v", s.Name(), err)
		}
	}
}
