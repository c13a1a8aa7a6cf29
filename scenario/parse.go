package scenario

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/distribution-auth/optional"
)

// Parse demonstrates Map and AndThen: inputs are normalized with Map,
// then chained into a parser that itself returns an Option.
type Parse struct {
	inputs []string
}

// NewParse returns a new Parse scenario.
func NewParse(inputs []string) Parse {
	return Parse{
		inputs: inputs,
	}
}

func (s Parse) Name() string {
	return "parse"
}

func (s Parse) Run(logger *zap.Logger) error {
	parse := func(v string) optional.Option[int] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return optional.None[int]()
		}

		return optional.Some(n)
	}

	for _, input := range s.inputs {
		normalized := optional.Map(optional.Some(input), strings.TrimSpace)
		parsed := optional.AndThen(normalized, parse)

		logger.Info("input parsed",
			zap.String("input", input),
			zap.Bool("numeric", optional.IsSome(parsed)),
			zap.Int("value", optional.GetOrElse(parsed, 0)),
		)
	}

	return nil
}
