package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/distribution-auth/optional"
	"github.com/distribution-auth/optional/scenario"
)

// Scenario is the configuration for a scenario.Scenario.
type Scenario struct {
	Type   string `yaml:"type"`
	Config ScenarioFactory
}

func (c *Scenario) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	var config ScenarioFactory

	switch rawConfig.Type {
	case "lookup":
		var factory lookupScenario

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory
	case "threshold":
		var factory thresholdScenario

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory
	case "parse":
		var factory parseScenario

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory
	case "exclusive":
		var factory exclusiveScenario

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory
	default:
		return fmt.Errorf("unknown scenario type: %s", rawConfig.Type)
	}

	c.Type = rawConfig.Type
	c.Config = config

	return nil
}

// ScenarioFactory creates a new scenario.Scenario.
type ScenarioFactory interface {
	Validate() error
	CreateScenario() (scenario.Scenario, error)
}

type lookupScenario struct {
	Prices  map[string]string `mapstructure:"prices"`
	Known   string            `mapstructure:"known"`
	Unknown string            `mapstructure:"unknown"`
}

func (c lookupScenario) Validate() error {
	if len(c.Prices) == 0 {
		return fmt.Errorf("lookup scenario: prices are required")
	}

	if c.Known == "" {
		return fmt.Errorf("lookup scenario: known key is required")
	}

	if c.Unknown == "" {
		return fmt.Errorf("lookup scenario: unknown key is required")
	}

	return nil
}

func (c lookupScenario) CreateScenario() (scenario.Scenario, error) {
	return scenario.NewLookup(c.Prices, c.Known, c.Unknown), nil
}

type thresholdScenario struct {
	// Limit is optional and defaults to 100.
	Limit  *float64  `mapstructure:"limit"`
	Values []float64 `mapstructure:"values"`
}

func (c thresholdScenario) Validate() error {
	if len(c.Values) == 0 {
		return fmt.Errorf("threshold scenario: values are required")
	}

	return nil
}

func (c thresholdScenario) CreateScenario() (scenario.Scenario, error) {
	limit := optional.GetOrElse(optional.FromPointer(c.Limit), 100.0)

	return scenario.NewThreshold(limit, c.Values), nil
}

type parseScenario struct {
	Inputs []string `mapstructure:"inputs"`
}

func (c parseScenario) Validate() error {
	if len(c.Inputs) == 0 {
		return fmt.Errorf("parse scenario: inputs are required")
	}

	return nil
}

func (c parseScenario) CreateScenario() (scenario.Scenario, error) {
	return scenario.NewParse(c.Inputs), nil
}

type exclusiveScenario struct {
	Value string `mapstructure:"value"`
}

func (c exclusiveScenario) Validate() error {
	if c.Value == "" {
		return fmt.Errorf("exclusive scenario: value is required")
	}

	return nil
}

func (c exclusiveScenario) CreateScenario() (scenario.Scenario, error) {
	return scenario.NewExclusive(c.Value), nil
}
