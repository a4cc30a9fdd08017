package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
