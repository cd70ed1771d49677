// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/nbfc-projection/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range constants.OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(constants.OutputFormats, ", "), format)
}

// ValidateParamsFormat checks if a parameter file format is supported.
func ValidateParamsFormat(format string) error {
	if format != constants.ParamsFormatYAML && format != constants.ParamsFormatTOML {
		return fmt.Errorf("expected parameter format of %s or %s, got %s",
			constants.ParamsFormatYAML, constants.ParamsFormatTOML, format)
	}
	return nil
}
