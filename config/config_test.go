package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/distribution-auth/optional/config"
)

const configContent = `
scenarios:
    - type: lookup
      config:
        prices:
            gb: £16.10
            us: $19.99
        known: gb
        unknown: de
    - type: threshold
      config:
        limit: 100.0
        values: [50.0, 101.5]
    - type: parse
      config:
        inputs: ["42", "not a number"]
    - type: exclusive
      config:
        value: £16.10
`

func TestConfig(t *testing.T) {
	var cfg config.Config

	err := yaml.Unmarshal([]byte(configContent), &cfg)
	require.NoError(t, err)

	require.NoError(t, cfg.Validate())

	scenarios, err := cfg.CreateScenarios()
	require.NoError(t, err)
	require.Len(t, scenarios, 4)

	for _, s := range scenarios {
		assert.NoError(t, s.Run(zap.NewNop()))
	}
}

func TestConfig_DefaultThresholdLimit(t *testing.T) {
	const content = `
scenarios:
    - type: threshold
      config:
        values: [50.0, 101.5]
`

	var cfg config.Config

	err := yaml.Unmarshal([]byte(content), &cfg)
	require.NoError(t, err)

	require.NoError(t, cfg.Validate())

	scenarios, err := cfg.CreateScenarios()
	require.NoError(t, err)

	require.NoError(t, scenarios[0].Run(zap.NewNop()))
}

func TestConfig_UnknownScenarioType(t *testing.T) {
	const content = `
scenarios:
    - type: unknown
      config: {}
`

	var cfg config.Config

	err := yaml.Unmarshal([]byte(content), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario type")
}

func TestConfigValidate(t *testing.T) {
	t.Run("NoScenarios", func(t *testing.T) {
		var cfg config.Config

		require.Error(t, cfg.Validate())
	})

	t.Run("MissingRequiredValues", func(t *testing.T) {
		testCases := []string{
			`
scenarios:
    - type: lookup
      config:
        known: gb
        unknown: de
`,
			`
scenarios:
    - type: threshold
      config:
        limit: 100.0
`,
			`
scenarios:
    - type: parse
      config: {}
`,
			`
scenarios:
    - type: exclusive
      config: {}
`,
		}

		for _, content := range testCases {
			var cfg config.Config

			err := yaml.Unmarshal([]byte(content), &cfg)
			require.NoError(t, err)

			assert.Error(t, cfg.Validate())
		}
	})
}
