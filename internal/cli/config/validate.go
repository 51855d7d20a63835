package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/leapstack-labs/dbdialect/pkg/database"
)

// ApplyTargetDefaults fills in the dialect type, access mode and, for access
// modes with a well-known port, the port.
func ApplyTargetDefaults(t *core.TargetConfig) {
	if t == nil {
		return
	}
	if t.Type == "" {
		t.Type = DefaultType
	}
	if t.Access == "" {
		t.Access = DefaultAccess
	}

	if t.Port != "" || t.DSN != "" {
		return
	}
	d, err := database.New(t.Type, nil)
	if err != nil {
		return
	}
	mode, err := t.AccessMode()
	if err != nil {
		return
	}
	if port := d.DefaultPort(mode); port != core.UnknownPort {
		t.Port = strconv.Itoa(port)
	}
}

// ValidateTarget checks that the target names a registered dialect and a
// known access mode.
func ValidateTarget(t *core.TargetConfig) error {
	if t == nil {
		return fmt.Errorf("target is required")
	}
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !database.IsRegistered(t.Type) {
		return &database.UnknownDialectError{Type: t.Type, Available: database.List()}
	}
	if _, err := t.AccessMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (expected one of %v)", c.OutputFormat, OutputFormats)
	}
	return ValidateTarget(c.Target)
}
