package config

import (
	"fmt"

	"github.com/distribution-auth/optional/scenario"
)

// Config collects all configuration options.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	for _, s := range c.Scenarios {
		if s.Type == "" {
			return fmt.Errorf("scenario type is required")
		}

		if err := s.Config.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// CreateScenarios instantiates every configured scenario.
func (c Config) CreateScenarios() ([]scenario.Scenario, error) {
	scenarios := make([]scenario.Scenario, 0, len(c.Scenarios))

	for _, s := range c.Scenarios {
		sc, err := s.Config.CreateScenario()
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

// rawConfig is a general struct to be used by other config structs to unmarshal yaml config first.
type rawConfig struct {
	Type   string                 `yaml:"type"`
	Config map[string]interface{} `yaml:"config"`
}
