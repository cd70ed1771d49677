package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/iwvelando/nbfc-projection/pkg/constants"
	"gopkg.in/yaml.v3"
)

// WriteConfiguration serializes the configuration as YAML or TOML in a form
// LoadConfiguration reads back.
func WriteConfiguration(w io.Writer, conf Configuration, format string) error {
	switch format {
	case constants.ParamsFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(conf); err != nil {
			return fmt.Errorf("failed to encode configuration as yaml: %w", err)
		}
		return enc.Close()
	case constants.ParamsFormatTOML:
		if err := toml.NewEncoder(w).Encode(conf); err != nil {
			return fmt.Errorf("failed to encode configuration as toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported configuration format: %s", format)
	}
}
