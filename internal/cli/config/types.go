// Package config provides configuration management for the dbdialect CLI.
//
// The connection target type lives in pkg/core so dialects and sessions can
// consume it; it is re-exported here for CLI code.
package config

import "github.com/leapstack-labs/dbdialect/pkg/core"

// TargetConfig is an alias for the shared target configuration.
type TargetConfig = core.TargetConfig

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	Environment  string               `koanf:"environment"`
	Target       *TargetConfig        `koanf:"target"`
	Environments map[string]EnvConfig `koanf:"environments"`
}

// EnvConfig holds environment-specific target overrides.
type EnvConfig struct {
	Target *TargetConfig `koanf:"target"`
}

// Default configuration values.
const (
	ConfigFileName    = "dbdialect.yaml"
	ConfigFileNameAlt = "dbdialect.yml"
	EnvPrefix         = "DBDIALECT_"

	DefaultType   = "dm"
	DefaultAccess = "native"
	DefaultOutput = "auto" // TTY=text, otherwise markdown
)

// Output formats accepted by --output.
var OutputFormats = []string{"auto", "text", "markdown", "json"}
