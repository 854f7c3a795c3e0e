package types

import (
	"errors"
	"fmt"
)

// Config holds the settings the pantry CLI resolves before running a command.
type Config struct {
	ConfigDir string `json:"config_dir" yaml:"config_dir"`
	Shape     string `json:"shape" yaml:"shape"`
}

// Default container shape when none is configured.
const DefaultShape = ShapeStack

// Config validation errors.
var (
	ErrConfigDirEmpty = errors.New("config directory must not be empty")
)

// knownShapes lists the shapes that Validate accepts.
var knownShapes = map[string]bool{
	ShapeBasket: true,
	ShapeStack:  true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.ConfigDir == "" {
		return ErrConfigDirEmpty
	}
	if !knownShapes[c.Shape] {
		return fmt.Errorf("%w: %q", ErrUnknownShape, c.Shape)
	}
	return nil
}
