package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
)

// Validate checks the source type against the source registry and the
// output mode against OutputModes.
func (c *Config) Validate() error {
	if c.Source.Type == "" {
		return source.ErrTypeRequired
	}
	c.Source.Type = strings.ToLower(c.Source.Type)
	if !source.IsRegistered(c.Source.Type) {
		return &source.UnknownSourceError{
			Type:      c.Source.Type,
			Available: source.List(),
		}
	}
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("unknown output mode %q (want one of %s)", c.Output, strings.Join(OutputModes, ", "))
	}
	return nil
}
