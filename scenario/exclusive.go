package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/distribution-auth/optional"
)

// Exclusive demonstrates Xor over the four presence combinations of two Options.
type Exclusive struct {
	value string
}

// NewExclusive returns a new Exclusive scenario.
func NewExclusive(value string) Exclusive {
	return Exclusive{
		value: value,
	}
}

func (s Exclusive) Name() string {
	return "exclusive"
}

func (s Exclusive) Run(logger *zap.Logger) error {
	present := optional.Some(s.value)
	absent := optional.None[string]()

	combinations := []struct {
		first           optional.Option[string]
		second          optional.Option[string]
		expectedPresent bool
	}{
		{present, absent, true},
		{absent, present, true},
		{present, present, false},
		{absent, absent, false},
	}

	for _, c := range combinations {
		result := optional.Xor(c.first, c.second)

		if optional.IsSome(result) != c.expectedPresent {
			return fmt.Errorf("xor of (present=%v, present=%v) should yield present=%v",
				c.first.HasValue(), c.second.HasValue(), c.expectedPresent)
		}

		if c.expectedPresent && optional.Unwrap(result) != s.value {
			return fmt.Errorf("xor should have yielded %q, got %q", s.value, optional.Unwrap(result))
		}

		logger.Info("exclusive choice",
			zap.Bool("first", c.first.HasValue()),
			zap.Bool("second", c.second.HasValue()),
			zap.String("result", optional.GetOrElse(result, "<none>")),
		)
	}

	return nil
}
