package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/distribution-auth/optional"
)

// Lookup demonstrates producing Options from map lookups
// and recovering from absence with GetOrElse and OrElse.
type Lookup struct {
	prices  map[string]string
	known   string
	unknown string
}

// NewLookup returns a new Lookup scenario.
// The known key is expected to be in the price list, the unknown key is not.
func NewLookup(prices map[string]string, known string, unknown string) Lookup {
	return Lookup{
		prices:  prices,
		known:   known,
		unknown: unknown,
	}
}

func (s Lookup) Name() string {
	return "lookup"
}

func (s Lookup) Run(logger *zap.Logger) error {
	price := func(key string) optional.Option[string] {
		v, ok := s.prices[key]
		if !ok {
			return optional.None[string]()
		}

		return optional.Some(v)
	}

	if optional.IsNone(price(s.known)) {
		return fmt.Errorf("expected key %q to be in the price list", s.known)
	}

	if optional.IsSome(price(s.unknown)) {
		return fmt.Errorf("expected key %q to be missing from the price list", s.unknown)
	}

	logger.Info("price found",
		zap.String("key", s.known),
		zap.String("price", optional.GetOrElse(price(s.known), "n/a")),
	)

	fallback := optional.OrElse(price(s.unknown), func() optional.Option[string] {
		return optional.Some("£0.00")
	})

	logger.Info("price missing, fallback applied",
		zap.String("key", s.unknown),
		zap.String("price", optional.Unwrap(fallback)),
	)

	return nil
}
