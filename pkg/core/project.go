package core

// TargetConfig holds the connection target for a dialect.
type TargetConfig struct {
	Type   string `koanf:"type"`   // registered dialect name, e.g. "dm"
	Access string `koanf:"access"` // native, odbc, oci, plugin, jndi

	Host     string `koanf:"host"`
	Port     string `koanf:"port"` // empty or "-1" means the driver default
	Database string `koanf:"database"`
	Schema   string `koanf:"schema"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Driver overrides the database/sql driver name the dialect reports.
	Driver string `koanf:"driver"`
	// DSN bypasses URL assembly entirely when set.
	DSN string `koanf:"dsn"`

	// Options is the string-keyed attribute bag shared with the dialect.
	Options map[string]string `koanf:"options"`

	// Params holds dialect-specific typed settings.
	Params map[string]any `koanf:"params"`
}

// AccessMode parses the configured access mode.
func (t *TargetConfig) AccessMode() (AccessMode, error) {
	return ParseAccessMode(t.Access)
}
