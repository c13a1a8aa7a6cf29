package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/distribution-auth/optional"
)

// Threshold demonstrates Filter: values are kept only when they exceed a limit.
type Threshold struct {
	limit  float64
	values []float64
}

// NewThreshold returns a new Threshold scenario.
func NewThreshold(limit float64, values []float64) Threshold {
	return Threshold{
		limit:  limit,
		values: values,
	}
}

func (s Threshold) Name() string {
	return "threshold"
}

func (s Threshold) Run(logger *zap.Logger) error {
	aboveLimit := func(v float64) bool {
		return v > s.limit
	}

	for _, value := range s.values {
		kept := optional.Filter(optional.Some(value), aboveLimit)

		if optional.IsSome(kept) != aboveLimit(value) {
			return fmt.Errorf("filter disagreed with its predicate for %v", value)
		}

		logger.Info("value filtered",
			zap.Float64("value", value),
			zap.Float64("limit", s.limit),
			zap.Bool("kept", optional.IsSome(kept)),
		)
	}

	return nil
}
