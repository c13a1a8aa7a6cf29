// Package scenario hosts runnable examples of the optional combinators.
package scenario

import "go.uber.org/zap"

// Scenario is a self-contained example exercising the library.
// Scenarios verify their own expectations and return an error on mismatch.
type Scenario interface {
	// Name identifies the scenario in logs and configuration.
	Name() string

	// Run executes the scenario, reporting progress on the logger.
	Run(logger *zap.Logger) error
}

// Defaults returns the built-in scenario set.
func Defaults() []Scenario {
	return []Scenario{
		NewLookup(map[string]string{"gb": "£16.10", "us": "$19.99"}, "gb", "de"),
		NewThreshold(100.0, []float64{50.0, 101.5}),
		NewParse([]string{"42", "not a number"}),
		NewExclusive("£16.10"),
	}
}
