package config

import "github.com/mitchellh/mapstructure"

// decode unmarshals a raw config map into a typed config struct.
func decode(input map[string]interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: output,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
