package dm

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/leapstack-labs/dbdialect/pkg/database"
)

// AccessModes lists the access modes DM can be configured with.
func (d *Dialect) AccessModes() []core.AccessMode {
	return []core.AccessMode{core.AccessNative, core.AccessJNDI}
}

// DefaultPort returns 5236 for native access and core.UnknownPort otherwise.
func (d *Dialect) DefaultPort(mode core.AccessMode) int {
	if mode == core.AccessNative {
		return DefaultPort
	}
	return core.UnknownPort
}

// DriverName returns the ODBC bridge driver for ODBC access and the DM driver
// for everything else.
func (d *Dialect) DriverName(mode core.AccessMode) string {
	if mode == core.AccessODBC {
		return odbcDriverName
	}
	return driverName
}

// BuildURL assembles the DM connection URL.
//
//	native: dm://host[:port]/database
//	odbc:   odbc:database
func (d *Dialect) BuildURL(host, port, databaseName string, mode core.AccessMode) (string, error) {
	switch mode {
	case core.AccessODBC:
		return "odbc:" + databaseName, nil
	case core.AccessNative:
		// handled below
	default:
		return "", &database.ConfigurationError{
			Op:  "url",
			Msg: fmt.Sprintf("unsupported access mode %s", mode),
		}
	}

	if host == "" {
		host = "localhost"
	}
	if port == "-1" {
		port = ""
	}
	if databaseName == "" {
		return "", &database.ConfigurationError{Op: "url", Msg: "database name must be specified"}
	}
	if !strings.HasPrefix(databaseName, "/") {
		databaseName = "/" + databaseName
	}

	var b strings.Builder
	b.WriteString("dm://")
	b.WriteString(host)
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	b.WriteString(databaseName)
	return b.String(), nil
}
